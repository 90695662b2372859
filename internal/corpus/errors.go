package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess reports an open, read, or write failure on a corpus file.
	ErrFileAccess = errors.New("corpus file access")
	// ErrDomain reports arguments outside an operation's domain.
	ErrDomain = errors.New("corpus domain error")
)

// fileAccessError keeps both ErrFileAccess and the OS error reachable through errors.Is.
func fileAccessError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrFileAccess, err)
}
