package textutil

import (
	"math"

	"golang.org/x/text/cases"
)

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided tokens.
// Returns nil if tokens is empty.
func NewFingerprint(tokens []string) *Fingerprint {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		tokens: counts,
		norm:   math.Sqrt(norm),
	}
}

// Fold returns a case-folded copy of tokens.
func Fold(tokens []string) []string {
	caser := cases.Fold()
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = caser.String(token)
	}
	return out
}

// TokenCount returns the number of unique tokens in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// WithIDF returns a new Fingerprint with TF-IDF weights applied.
// Each term's count is multiplied by its IDF weight. The norm is recomputed.
// Terms absent from the IDF map retain their original weight.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	weighted := make(map[string]float64, len(f.tokens))
	var norm float64
	for token, count := range f.tokens {
		w := count
		if idfVal, ok := idf[token]; ok {
			w *= idfVal
		}
		if w == 0 {
			continue
		}
		weighted[token] = w
		norm += w * w
	}
	if len(weighted) == 0 {
		return nil
	}
	return &Fingerprint{
		tokens: weighted,
		norm:   math.Sqrt(norm),
	}
}

// DocFreq collects document frequency statistics for IDF computation.
// Each sentence counts as one document.
type DocFreq struct {
	docCount int
	docFreq  map[string]int
}

// NewDocFreq creates an empty document frequency table.
func NewDocFreq() *DocFreq {
	return &DocFreq{docFreq: make(map[string]int)}
}

// Add registers a fingerprint's unique terms.
func (d *DocFreq) Add(fp *Fingerprint) {
	if d == nil || fp == nil {
		return
	}
	d.docCount++
	for token := range fp.tokens {
		d.docFreq[token]++
	}
}

// IDF computes smoothed inverse document frequency weights:
// log((N+1)/(1+df)) + 1 for each term. Every weight is at least 1, so a term
// present in every sentence still counts.
func (d *DocFreq) IDF() map[string]float64 {
	if d == nil || d.docCount == 0 {
		return nil
	}
	idf := make(map[string]float64, len(d.docFreq))
	n := float64(d.docCount)
	for term, df := range d.docFreq {
		idf[term] = math.Log((n+1)/(1+float64(df))) + 1
	}
	return idf
}
