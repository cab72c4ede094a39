package epidemic

import (
	"math"
	"testing"
)

// These pins define the interpolation contract: position q*(n-1) with linear
// interpolation between adjacent order statistics.
func TestQuantileInterpolation(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		q      float64
		want   float64
	}{
		{"median even count", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median odd count", []float64{1, 2, 3}, 0.5, 2},
		{"lower tail", []float64{10, 20, 30}, 0.1, 12},
		{"upper tail", []float64{10, 20, 30}, 0.9, 28},
		{"first quartile", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"q=0 is the minimum", []float64{5, 7, 9}, 0, 5},
		{"q=1 is the maximum", []float64{5, 7, 9}, 1, 9},
		{"single sample", []float64{42}, 0.9, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantile(tt.sorted, tt.q); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("quantile(%v, %v) = %v, want %v", tt.sorted, tt.q, got, tt.want)
			}
		})
	}
}

func TestQuantileEmpty(t *testing.T) {
	if got := quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("quantile(nil) = %v, want NaN", got)
	}
}
