package utils

import "gonum.org/v1/gonum/floats"

// Distinct returns the items of slice in first-seen order without repeats.
func Distinct[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ArgMax returns the index of the first maximal score, or -1 if there are none.
func ArgMax(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}
	return floats.MaxIdx(scores)
}
