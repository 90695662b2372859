package corpus

import "fmt"

// Makeup returns n elements taken cyclically from x: result[i] = x[i%len(x)].
func Makeup[T any](x []T, n int) ([]T, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("makeup: %w: empty input", ErrDomain)
	}
	if n < 0 {
		return nil, fmt.Errorf("makeup: %w: negative length %d", ErrDomain, n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = x[i%len(x)]
	}
	return out, nil
}
