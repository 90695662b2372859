package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"seqtext/internal/fileutil"
)

// maxLineBytes bounds a single corpus line.
const maxLineBytes = 16 << 20

// Sentence is an ordered sequence of tokens.
type Sentence = []string

// Corpus is an ordered sequence of sentences, one per source line.
type Corpus = []Sentence

// LoadOptions tunes how lines are tokenized.
type LoadOptions struct {
	// FoldCase applies Unicode case folding to every token.
	FoldCase bool
	// Keep lists tokens that are never folded, typically the special tokens.
	Keep []string
}

// Load reads the file at path and splits each line on whitespace runs.
// Empty lines yield empty sentences.
func Load(path string) (Corpus, error) {
	return LoadWith(path, LoadOptions{})
}

// LoadWith is Load with tokenization options.
func LoadWith(path string, opts LoadOptions) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileAccessError("load corpus", err)
	}
	defer f.Close()

	data, err := ReadWith(f, opts)
	if err != nil {
		return nil, fileAccessError("load corpus "+path, err)
	}
	return data, nil
}

// Read tokenizes every line of r.
func Read(r io.Reader) (Corpus, error) {
	return ReadWith(r, LoadOptions{})
}

// ReadWith tokenizes every line of r using opts.
func ReadWith(r io.Reader, opts LoadOptions) (Corpus, error) {
	var fold cases.Caser
	var keep map[string]struct{}
	if opts.FoldCase {
		fold = cases.Fold()
		keep = make(map[string]struct{}, len(opts.Keep))
		for _, tok := range opts.Keep {
			keep[tok] = struct{}{}
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	data := Corpus{}
	for scanner.Scan() {
		sent := strings.Fields(scanner.Text())
		if opts.FoldCase {
			for i, tok := range sent {
				if _, ok := keep[tok]; ok {
					continue
				}
				sent[i] = fold.String(tok)
			}
		}
		if sent == nil {
			sent = Sentence{}
		}
		data = append(data, sent)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}
	return data, nil
}

// Write truncates path and writes one space-joined sentence per line.
func Write(sents Corpus, path string) error {
	return WriteWith(sents, path, fileutil.WriteOptions{})
}

// WriteWith is Write with atomic-replace and locking options.
func WriteWith(sents Corpus, path string, opts fileutil.WriteOptions) error {
	err := fileutil.WriteFile(path, opts, func(w io.Writer) error {
		return WriteTo(w, sents)
	})
	if err != nil {
		return fileAccessError("write sentences", err)
	}
	return nil
}

// WriteTo writes sents to w in the sentence file format.
func WriteTo(w io.Writer, sents Corpus) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sents {
		for i, tok := range sent {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(tok); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
