// Package logits decodes model output scores into words.
//
// A Tensor holds (batch, time, vocab) scores as one gonum matrix per batch
// entry with time rows and vocab columns. Decoding reduces the vocab axis to
// its arg-max, maps ids through an inverse vocabulary, and strips everything
// from the first end-of-sequence token.
package logits

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"seqtext/internal/corpus"
	"seqtext/internal/vocab"
)

// ErrShape reports inconsistent tensor dimensions.
var ErrShape = errors.New("logits shape")

// Tensor is a read-only (batch, time, vocab) score array.
type Tensor struct {
	batches []*mat.Dense
	time    int
	vocab   int
}

// New builds a tensor from row-major data of length batch*time*vocab.
func New(batch, time, vocabSize int, data []float64) (*Tensor, error) {
	if batch < 0 || time < 0 || vocabSize < 0 {
		return nil, fmt.Errorf("%w: negative dimension (%d, %d, %d)", ErrShape, batch, time, vocabSize)
	}
	if len(data) != batch*time*vocabSize {
		return nil, fmt.Errorf("%w: %d values for shape (%d, %d, %d)", ErrShape, len(data), batch, time, vocabSize)
	}
	t := &Tensor{time: time, vocab: vocabSize}
	if time == 0 || vocabSize == 0 {
		t.batches = make([]*mat.Dense, batch)
		return t, nil
	}
	stride := time * vocabSize
	for b := 0; b < batch; b++ {
		rows := make([]float64, stride)
		copy(rows, data[b*stride:(b+1)*stride])
		t.batches = append(t.batches, mat.NewDense(time, vocabSize, rows))
	}
	return t, nil
}

// FromNested builds a tensor from [batch][time][vocab] slices. Every inner
// slice must share the same length.
func FromNested(values [][][]float64) (*Tensor, error) {
	batch := len(values)
	if batch == 0 {
		return &Tensor{}, nil
	}
	time := len(values[0])
	vocabSize := 0
	if time > 0 {
		vocabSize = len(values[0][0])
	}
	data := make([]float64, 0, batch*time*vocabSize)
	for b, steps := range values {
		if len(steps) != time {
			return nil, fmt.Errorf("%w: batch %d has %d steps, want %d", ErrShape, b, len(steps), time)
		}
		for s, scores := range steps {
			if len(scores) != vocabSize {
				return nil, fmt.Errorf("%w: batch %d step %d has %d scores, want %d", ErrShape, b, s, len(scores), vocabSize)
			}
			data = append(data, scores...)
		}
	}
	return New(batch, time, vocabSize, data)
}

// LoadJSON reads a nested [batch][time][vocab] JSON array.
func LoadJSON(path string) (*Tensor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load logits: %w", err)
	}
	var values [][][]float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse logits %s: %w", path, err)
	}
	t, err := FromNested(values)
	if err != nil {
		return nil, fmt.Errorf("load logits %s: %w", path, err)
	}
	return t, nil
}

// Dims returns (batch, time, vocab).
func (t *Tensor) Dims() (int, int, int) {
	return len(t.batches), t.time, t.vocab
}

// At returns the score at (b, s, v). It panics when the index is out of
// range, including any index into a tensor with an empty time or vocab axis.
func (t *Tensor) At(b, s, v int) float64 {
	m := t.batches[b]
	if m == nil {
		panic(fmt.Sprintf("logits: index (%d, %d, %d) out of range for shape (%d, %d, %d)",
			b, s, v, len(t.batches), t.time, t.vocab))
	}
	return m.At(s, v)
}

// ArgMax reduces the vocab axis to the index of its largest score, with ties
// going to the lowest index. A NaN score wins over every number, and the first
// NaN in a row is chosen. The result has shape (batch, time). A tensor with an
// empty vocab axis yields empty rows.
func (t *Tensor) ArgMax() [][]int {
	out := make([][]int, len(t.batches))
	for b, m := range t.batches {
		if m == nil {
			out[b] = []int{}
			continue
		}
		ids := make([]int, t.time)
		for s := range ids {
			ids[s] = argMaxRow(m.RawRowView(s))
		}
		out[b] = ids
	}
	return out
}

func argMaxRow(row []float64) int {
	for i, v := range row {
		if math.IsNaN(v) {
			return i
		}
	}
	return floats.MaxIdx(row)
}

// Decode maps the arg-max of every (batch, time) position through id2word and
// cuts each sentence at its first eos token.
func Decode(t *Tensor, id2word vocab.Inverse, eos string) (corpus.Corpus, error) {
	words, err := vocab.Decode(t.ArgMax(), id2word)
	if err != nil {
		return nil, fmt.Errorf("decode logits: %w", err)
	}
	return corpus.StripEOS(words, eos), nil
}
