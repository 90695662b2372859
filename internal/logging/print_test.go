package logging

import (
	"bytes"
	"testing"
	"time"
)

func TestPrinterPrint(t *testing.T) {
	var buf bytes.Buffer
	fixed := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)
	p := Printer{Out: &buf, Now: func() time.Time { return fixed }}

	p.Print("epoch 1 done")
	p.Print("")

	want := "2024-03-01-13:04:05] epoch 1 done\n2024-03-01-13:04:05] \n"
	if got := buf.String(); got != want {
		t.Fatalf("Print() wrote %q, want %q", got, want)
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := formatTimestamp(time.Time{}); got != "" {
		t.Fatalf("formatTimestamp(zero) = %q, want empty", got)
	}
	ts := time.Date(1999, 12, 31, 23, 59, 58, 0, time.Local)
	if got := formatTimestamp(ts); got != "1999-12-31-23:59:58" {
		t.Fatalf("formatTimestamp() = %q", got)
	}
}
