package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extent is the axis-aligned bounding box of a point set.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal size of the extent.
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height returns the vertical size of the extent.
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Contains reports whether (x, y) lies inside the extent, edges included.
func (e Extent) Contains(x, y float64) bool {
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Bounds computes the extent of the points (xs[i], ys[i]).
// Points with a NaN or infinite coordinate are skipped; when no finite point
// remains the zero Extent is returned. Only the first len(xs) values of ys
// are considered.
func Bounds(xs, ys []float64) Extent {
	if len(xs) == 0 {
		return Extent{}
	}
	ys = ys[:len(xs)]

	if AllFinite(xs) && AllFinite(ys) {
		return Extent{
			MinX: floats.Min(xs),
			MinY: floats.Min(ys),
			MaxX: floats.Max(xs),
			MaxY: floats.Max(ys),
		}
	}

	e := Extent{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	n := 0
	for i, x := range xs {
		y := ys[i]
		if !IsFinite(x) || !IsFinite(y) {
			continue
		}
		e.MinX = math.Min(e.MinX, x)
		e.MinY = math.Min(e.MinY, y)
		e.MaxX = math.Max(e.MaxX, x)
		e.MaxY = math.Max(e.MaxY, y)
		n++
	}
	if n == 0 {
		return Extent{}
	}
	return e
}

// FiniteMean returns the mean point over the points whose coordinates are
// both finite, and how many such points there were.
func FiniteMean(xs, ys []float64) (mx, my float64, n int) {
	for i, x := range xs {
		y := ys[i]
		if !IsFinite(x) || !IsFinite(y) {
			continue
		}
		mx += x
		my += y
		n++
	}
	if n == 0 {
		return 0, 0, 0
	}
	return mx / float64(n), my / float64(n), n
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every element of s is finite.
func AllFinite(s []float64) bool {
	for _, v := range s {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// CountInside returns how many points fall inside the extent.
func CountInside(e Extent, xs, ys []float64) int {
	n := 0
	for i, x := range xs {
		if e.Contains(x, ys[i]) {
			n++
		}
	}
	return n
}
