package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"seqtext/internal/fileutil"
)

// Load reads a vocabulary file: one token per line, id = zero-based line number.
func Load(path string) (Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	defer f.Close()

	v, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Read parses the vocabulary file format from r.
func Read(r io.Reader) (Vocabulary, error) {
	v := make(Vocabulary)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" || strings.ContainsAny(tok, " \t") {
			return nil, fmt.Errorf("line %d: expected a single token, got %q", line+1, scanner.Text())
		}
		if prev, dup := v[tok]; dup {
			return nil, fmt.Errorf("line %d: token %q already defined on line %d", line+1, tok, prev+1)
		}
		v[tok] = line
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// Save writes v in id order. Ids must be contiguous from zero so that Load
// reproduces them.
func Save(path string, v Vocabulary, opts fileutil.WriteOptions) error {
	tokens := v.Tokens()
	for i, tok := range tokens {
		if v[tok] != i {
			return fmt.Errorf("save vocabulary: ids are not contiguous at %q (id %d, position %d)", tok, v[tok], i)
		}
	}
	err := fileutil.WriteFile(path, opts, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, tok := range tokens {
			if _, err := bw.WriteString(tok + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
	if err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	return nil
}
