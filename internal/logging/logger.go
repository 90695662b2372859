package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seqtext/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	// Writer receives log lines. When nil, OutputPaths are opened instead.
	Writer      io.Writer
	OutputPaths []string
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "json" && format != "console" {
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	outputWriter := opts.Writer
	if outputWriter == nil {
		var err error
		outputWriter, err = openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}))
		if err != nil {
			return nil, err
		}
	}

	if format == "json" {
		return slog.New(newJSONHandler(outputWriter, levelVar, addSource)), nil
	}
	return slog.New(newConsoleHandler(outputWriter, levelVar, addSource)), nil
}

// NewFromConfig creates a logger using application config defaults. Log lines
// go to stderr (os.Stderr when nil) at logging.level so command output on
// stdout stays machine readable. When logging.dir is set, every record down to
// debug is also appended to seqtext.log there. The returned close function
// releases the log file and is safe to call more than once.
func NewFromConfig(cfg *config.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	noClose := func() error { return nil }
	if stderr == nil {
		stderr = os.Stderr
	}
	if cfg == nil {
		logger, err := New(Options{Level: "info", Format: "console", Writer: stderr})
		return logger, noClose, err
	}

	console, err := New(Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: stderr,
	})
	if err != nil {
		return nil, nil, err
	}
	if cfg.Logging.Dir == "" {
		return console, noClose, nil
	}

	if err := os.MkdirAll(cfg.Logging.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log directory: %w", err)
	}
	logPath := filepath.Join(cfg.Logging.Dir, "seqtext.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}
	fileLogger, err := New(Options{
		Level:  "debug",
		Format: cfg.Logging.Format,
		Writer: file,
	})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	var once sync.Once
	var closeErr error
	closeFile := func() error {
		once.Do(func() { closeErr = file.Close() })
		return closeErr
	}
	return slog.New(newFanoutHandler(console.Handler(), fileLogger.Handler())), closeFile, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		value = fallback
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openWriters(paths []string) (io.Writer, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("ensure log directory %s: %w", dir, err)
				}
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}
