package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	xs := []float64{10, -2, 7, 3}
	ys := []float64{5, 9, -4, 0, 1000} // extra ys are ignored

	e := Bounds(xs, ys)
	assert.Equal(t, Extent{MinX: -2, MinY: -4, MaxX: 10, MaxY: 9}, e)
	assert.Equal(t, 12.0, e.Width())
	assert.Equal(t, 13.0, e.Height())
}

func TestBounds_Empty(t *testing.T) {
	assert.Equal(t, Extent{}, Bounds(nil, nil))
}

func TestCountInside(t *testing.T) {
	e := Extent{MinX: 0, MinY: 0, MaxX: 400, MaxY: 400}
	xs := []float64{0, 200, 401, -1, 400}
	ys := []float64{0, 200, 10, 10, 400}

	assert.Equal(t, 3, CountInside(e, xs, ys))
}

// Formula singularities produce infinite coordinates; they must not
// stretch the extent.
func TestBounds_SkipsNonFinite(t *testing.T) {
	xs := []float64{1, math.Inf(1), 3, math.NaN()}
	ys := []float64{2, 5, math.Inf(-1), 7}

	assert.Equal(t, Extent{MinX: 1, MinY: 2, MaxX: 1, MaxY: 2}, Bounds(xs, ys))
	assert.Equal(t, Extent{}, Bounds([]float64{math.NaN()}, []float64{0}))
}

func TestFiniteMean(t *testing.T) {
	xs := []float64{2, math.Inf(1), 4}
	ys := []float64{10, 0, 20}

	mx, my, n := FiniteMean(xs, ys)
	assert.Equal(t, 3.0, mx)
	assert.Equal(t, 15.0, my)
	assert.Equal(t, 2, n)

	mx, my, n = FiniteMean(nil, nil)
	assert.Zero(t, mx)
	assert.Zero(t, my)
	assert.Zero(t, n)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e308))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, AllFinite([]float64{1, 2}))
	assert.False(t, AllFinite([]float64{1, math.Inf(1)}))
}
