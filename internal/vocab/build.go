package vocab

import (
	"fmt"
	"sort"
)

// BuildOptions bounds the size of a built vocabulary.
type BuildOptions struct {
	// MinCount drops words seen fewer times. Values below 1 keep everything.
	MinCount int
	// MaxSize caps the vocabulary including specials. Zero means unbounded.
	MaxSize int
}

// Build ranks the words of data by descending frequency (ties lexically)
// after the special tokens, which take ids 0..3.
func Build(data [][]string, specials Specials, opts BuildOptions) (Vocabulary, error) {
	reserved := specials.List()
	if opts.MaxSize > 0 && opts.MaxSize < len(reserved) {
		return nil, fmt.Errorf("build vocabulary: max size %d cannot hold %d special tokens", opts.MaxSize, len(reserved))
	}

	v := make(Vocabulary)
	for _, tok := range reserved {
		if tok == "" {
			return nil, fmt.Errorf("build vocabulary: empty special token in %+v", specials)
		}
		if _, dup := v[tok]; dup {
			return nil, fmt.Errorf("build vocabulary: special token %q listed twice", tok)
		}
		v[tok] = len(v)
	}

	counts := make(map[string]int)
	for _, sent := range data {
		for _, word := range sent {
			if _, special := v[word]; special {
				continue
			}
			counts[word]++
		}
	}

	words := make([]string, 0, len(counts))
	for word, n := range counts {
		if n >= opts.MinCount {
			words = append(words, word)
		}
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	for _, word := range words {
		if opts.MaxSize > 0 && len(v) >= opts.MaxSize {
			break
		}
		v[word] = len(v)
	}
	return v, nil
}
