package corpus

import (
	"fmt"
	"slices"
)

// SortByLength returns the sentences ordered by ascending length (stable) and
// the original position of each sorted sentence. Reorder(order, sorted)
// restores the input order.
func SortByLength(c Corpus) (Corpus, []int) {
	order := make([]int, len(c))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len(c[a]) - len(c[b])
	})
	sorted := make(Corpus, len(c))
	for i, pos := range order {
		sorted[i] = c[pos]
	}
	return sorted, order
}

// Batches splits c into consecutive batches of exactly size sentences. A
// short final batch is filled by cycling through its own sentences, so the
// number of real sentences in the last batch is len(c) % size when non-zero.
func Batches(c Corpus, size int) ([]Corpus, error) {
	if size <= 0 {
		return nil, fmt.Errorf("batches: %w: size must be positive, got %d", ErrDomain, size)
	}
	out := make([]Corpus, 0, (len(c)+size-1)/size)
	for start := 0; start < len(c); start += size {
		end := min(start+size, len(c))
		batch, err := Makeup(c[start:end], size)
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}
	return out, nil
}
