package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/fileutil"
	"seqtext/internal/logging"
	"seqtext/internal/vocab"
	"seqtext/internal/vocabstore"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	closeLog   func() error
	loggerErr  error

	runID string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		runID:        uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the invocation logger, writing console lines to stderr.
func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closeLog, err := logging.NewFromConfig(cfg, stderr)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
		c.closeLog = closeLog
	})
	return c.logger, c.loggerErr
}

// run executes fn with a command-scoped logger carrying the run id and logs
// the outcome.
func (c *commandContext) run(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	base, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = c.closeLog() }()

	ctx := logging.WithRunID(cmd.Context(), c.runID)
	logger := logging.NewComponentLogger(logging.WithContext(ctx, base), "cli").
		With(slog.String(logging.FieldCommand, cmd.CommandPath()))

	start := time.Now()
	logger.Debug("command started")
	if err := fn(ctx, cfg, logger); err != nil {
		logger.Error("command failed", logging.Error(err))
		return err
	}
	logger.Info("command finished", logging.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *commandContext) withStore(ctx context.Context, cfg *config.Config, fn func(*vocabstore.Store) error) error {
	store, err := vocabstore.Open(ctx, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func printer(cmd *cobra.Command) logging.Printer {
	return logging.Printer{Out: cmd.ErrOrStderr()}
}

func specialsFrom(cfg *config.Config) vocab.Specials {
	return vocab.Specials{
		Pad: cfg.Tokens.Pad,
		Go:  cfg.Tokens.Go,
		EOS: cfg.Tokens.EOS,
		UNK: cfg.Tokens.UNK,
	}
}

// loadOptions keeps the special tokens, plus any extra markers, out of case
// folding so EOS and UNK lookups still match.
func loadOptions(cfg *config.Config, extra ...string) corpus.LoadOptions {
	keep := append(specialsFrom(cfg).List(), extra...)
	return corpus.LoadOptions{FoldCase: cfg.Corpus.FoldCase, Keep: keep}
}

func writeOptions(cfg *config.Config) fileutil.WriteOptions {
	return fileutil.WriteOptions{Atomic: cfg.Output.Atomic, Lock: cfg.Output.Lock}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
