package epidemic

import "math"

// quantile returns the q-th quantile of sorted values using linear
// interpolation between adjacent order statistics at position q*(n-1). Tail
// values depend on the interpolation choice, so tests pin this definition;
// changing it silently would shift the band edges.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
