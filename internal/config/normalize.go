package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTokens()
	if err := c.normalizeStore(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTokens() {
	c.Tokens.Pad = strings.TrimSpace(c.Tokens.Pad)
	c.Tokens.Go = strings.TrimSpace(c.Tokens.Go)
	c.Tokens.EOS = strings.TrimSpace(c.Tokens.EOS)
	c.Tokens.UNK = strings.TrimSpace(c.Tokens.UNK)
}

func (c *Config) normalizeStore() error {
	c.Store.Path = strings.TrimSpace(c.Store.Path)
	if c.Store.Path == "" {
		if value, ok := os.LookupEnv("SEQTEXT_STORE_PATH"); ok && strings.TrimSpace(value) != "" {
			c.Store.Path = strings.TrimSpace(value)
		} else {
			c.Store.Path = defaultStorePath
		}
	}
	var err error
	if c.Store.Path, err = expandPath(c.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
