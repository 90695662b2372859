package vocab

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingKey reports a lookup with no entry and no fallback.
var ErrMissingKey = errors.New("vocabulary key missing")

// Vocabulary maps words to ids.
type Vocabulary map[string]int

// Inverse maps ids to words.
type Inverse map[int]string

// Specials names the reserved tokens.
type Specials struct {
	Pad string
	Go  string
	EOS string
	UNK string
}

// DefaultSpecials returns the conventional _PAD/_GO/_EOS/_UNK tokens.
func DefaultSpecials() Specials {
	return Specials{Pad: "_PAD", Go: "_GO", EOS: "_EOS", UNK: "_UNK"}
}

// List returns the specials in id order.
func (s Specials) List() []string {
	return []string{s.Pad, s.Go, s.EOS, s.UNK}
}

// Encode maps every token of data through word2id, substituting the id bound
// to unk for unknown tokens. It fails with ErrMissingKey only when an unknown
// token appears and unk itself is absent.
func Encode(data [][]string, word2id Vocabulary, unk string) ([][]int, error) {
	unkID, hasUNK := word2id[unk]
	out := make([][]int, len(data))
	for i, sent := range data {
		ids := make([]int, len(sent))
		for j, word := range sent {
			id, ok := word2id[word]
			if !ok {
				if !hasUNK {
					return nil, fmt.Errorf("encode sentence %d token %q: %w: no %q entry", i, word, ErrMissingKey, unk)
				}
				id = unkID
			}
			ids[j] = id
		}
		out[i] = ids
	}
	return out, nil
}

// Decode maps ids back to words.
func Decode(ids [][]int, id2word Inverse) ([][]string, error) {
	out := make([][]string, len(ids))
	for i, sent := range ids {
		words := make([]string, len(sent))
		for j, id := range sent {
			word, ok := id2word[id]
			if !ok {
				return nil, fmt.Errorf("decode sentence %d position %d: %w: id %d", i, j, ErrMissingKey, id)
			}
			words[j] = word
		}
		out[i] = words
	}
	return out, nil
}

// Inverse returns the id to word mapping. When two words share an id the
// lexically smallest wins so the result is deterministic.
func (v Vocabulary) Inverse() Inverse {
	inv := make(Inverse, len(v))
	for word, id := range v {
		if prev, ok := inv[id]; ok && prev < word {
			continue
		}
		inv[id] = word
	}
	return inv
}

// Tokens returns the words ordered by id, then lexically.
func (v Vocabulary) Tokens() []string {
	words := make([]string, 0, len(v))
	for word := range v {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		a, b := v[words[i]], v[words[j]]
		if a != b {
			return a < b
		}
		return words[i] < words[j]
	})
	return words
}

// FromTokens assigns ids by position; a repeated token keeps its first id.
func FromTokens(tokens []string) Vocabulary {
	v := make(Vocabulary, len(tokens))
	for i, tok := range tokens {
		if _, ok := v[tok]; !ok {
			v[tok] = i
		}
	}
	return v
}

// OOV counts tokens of data absent from v.
func (v Vocabulary) OOV(data [][]string) int {
	n := 0
	for _, sent := range data {
		for _, word := range sent {
			if _, ok := v[word]; !ok {
				n++
			}
		}
	}
	return n
}
