package testsupport

import (
	"path/filepath"
	"testing"

	"seqtext/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Store.Path = filepath.Join(base, "store", "vocab.db")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFoldCase enables case folding when loading corpora.
func WithFoldCase() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpus.FoldCase = true
	}
}

// WithAtomicOutput enables atomic and locked sentence writes.
func WithAtomicOutput() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Atomic = true
		b.cfg.Output.Lock = true
	}
}

// WithTokens overrides the special tokens.
func WithTokens(tokens config.Tokens) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tokens = tokens
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Store.Path))
}
