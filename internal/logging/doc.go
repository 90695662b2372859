// Package logging assembles structured slog loggers and the timestamped line
// printer used across seqtext.
//
// Print is the minimal progress helper: it stamps a line with the local time
// ("2006-01-02-15:04:05] ") and writes it to standard output. New and
// NewFromConfig build the console/JSON slog handlers used by the CLI, sharing
// the same timestamp layout so both outputs line up in a terminal. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Library packages never log; callers decide what to report.
package logging
