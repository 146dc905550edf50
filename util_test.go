package quiverbloom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// newBuffers returns an x/y pair of length n.
func newBuffers(n int) (xs, ys []float64) {
	return make([]float64, n), make([]float64, n)
}
