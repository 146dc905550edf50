// Package formula implements the eight per-point coordinate formulas.
//
// Each formula is an independent closed-form expression of a point index and a
// time phase. The constants are empirical artistic choices, so they are kept
// inline in the order they were authored; reordering the arithmetic changes the
// low bits of the output.
package formula

import (
	"github.com/tphakala/go-quiverbloom/internal/mathutil"
)

// Count is the number of formulas. Ids run from 1 to Count inclusive.
const Count = 8

// PointFunc computes one point from its index and a normalized phase.
type PointFunc func(i int, phase float64) (x, y float64)

// Formula pairs a point function with the factor applied to t before the
// phase is wrapped.
type Formula struct {
	// TimeScale is 1, 4 or 16. The phase is 2π·fmod(t·TimeScale, TimeScale).
	TimeScale float64

	// Point evaluates a single point.
	Point PointFunc
}

// table is indexed by id; slot 0 is reserved and left empty.
var table = [Count + 1]Formula{
	1: {TimeScale: timeScaleUnit, Point: algo1},
	2: {TimeScale: timeScaleUnit, Point: algo2},
	3: {TimeScale: timeScaleQuad, Point: algo3},
	4: {TimeScale: timeScaleUnit, Point: algo4},
	5: {TimeScale: timeScaleHex, Point: algo5},
	6: {TimeScale: timeScaleHex, Point: algo6},
	7: {TimeScale: timeScaleUnit, Point: algo7},
	8: {TimeScale: timeScaleUnit, Point: algo8},
}

// Lookup returns the formula for id. ok is false for ids outside 1..Count.
func Lookup(id int) (f Formula, ok bool) {
	if id < 1 || id > Count {
		return Formula{}, false
	}
	return table[id], true
}

// Phase normalizes a raw time value for this formula.
func (f Formula) Phase(t float64) float64 {
	return mathutil.Phase(t, f.TimeScale)
}

// Fill writes len(xs) points for time t into xs and ys.
// ys must be at least as long as xs. Prior contents are never read.
func (f Formula) Fill(t float64, xs, ys []float64) {
	f.FillPhase(f.Phase(t), xs, ys)
}

// FillPhase is like Fill but takes an already normalized phase.
func (f Formula) FillPhase(phase float64, xs, ys []float64) {
	ys = ys[:len(xs)]
	point := f.Point
	for i := range xs {
		xs[i], ys[i] = point(i, phase)
	}
}
