package corpus

import "fmt"

// Reorder undoes a permutation: result[order[i]] = x[i]. order must be a
// permutation of [0, len(x)).
func Reorder[T any](order []int, x []T) ([]T, error) {
	if err := ValidatePermutation(order, len(x)); err != nil {
		return nil, err
	}
	out := make([]T, len(x))
	for i, pos := range order {
		out[pos] = x[i]
	}
	return out, nil
}

// ValidatePermutation reports whether order is a bijection on [0, n).
func ValidatePermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("reorder: %w: order has %d entries for %d values", ErrDomain, len(order), n)
	}
	seen := make([]bool, n)
	for i, pos := range order {
		if pos < 0 || pos >= n {
			return fmt.Errorf("reorder: %w: order[%d]=%d out of range [0,%d)", ErrDomain, i, pos, n)
		}
		if seen[pos] {
			return fmt.Errorf("reorder: %w: order[%d]=%d repeats an earlier position", ErrDomain, i, pos)
		}
		seen[pos] = true
	}
	return nil
}
