// Package mathutil provides the scalar helpers shared by the coordinate formulas
// and the frame utilities.
package mathutil

import "math"

// Phase maps a raw time value onto the bounded angle used by the formulas:
//
//	phase = 2π · fmod(t·scale, scale)
//
// The remainder truncates toward zero like C fmod, so negative t yields a
// negative phase. With scale 1 the product t·scale is exact, so Phase(t, 1)
// equals TwoPi * math.Mod(t, 1) bit for bit.
func Phase(t, scale float64) float64 {
	return TwoPi * math.Mod(t*scale, scale)
}

// Remap linearly maps v from [inLo, inHi] onto [outLo, outHi].
// A degenerate input range maps everything to the middle of the output range.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	span := inHi - inLo
	if span == 0 {
		return (outLo + outHi) / halfDivisor
	}
	return outLo + (v-inLo)/span*(outHi-outLo)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
