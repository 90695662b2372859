package logging

import (
	"io"
	"os"
	"time"
)

// Printer writes timestamped lines. The zero value writes to os.Stdout using
// the wall clock.
type Printer struct {
	Out io.Writer
	Now func() time.Time
}

// Print writes line prefixed with the current local time, e.g.
// "2024-03-01-13:04:05] line". Write errors are ignored.
func (p Printer) Print(line string) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	buf := make([]byte, 0, len(logTimestampLayout)+len(line)+3)
	buf = now().In(time.Local).AppendFormat(buf, logTimestampLayout)
	buf = append(buf, "] "...)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	_, _ = out.Write(buf)
}

// Print writes a timestamped line to standard output.
func Print(line string) {
	Printer{}.Print(line)
}
