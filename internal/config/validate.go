package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTokens(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTokens() error {
	tokens := []struct {
		key   string
		value string
	}{
		{"tokens.pad", c.Tokens.Pad},
		{"tokens.go", c.Tokens.Go},
		{"tokens.eos", c.Tokens.EOS},
		{"tokens.unk", c.Tokens.UNK},
	}
	seen := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if tok.value == "" {
			return fmt.Errorf("%s must be set", tok.key)
		}
		if strings.IndexFunc(tok.value, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%s must not contain whitespace, got %q", tok.key, tok.value)
		}
		if other, ok := seen[tok.value]; ok {
			return fmt.Errorf("%s and %s must differ (both %q)", other, tok.key, tok.value)
		}
		seen[tok.value] = tok.key
	}
	return nil
}

func (c *Config) validateStore() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
