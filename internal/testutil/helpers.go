// Package testutil provides reusable test helper functions for coordinate tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	GoldenTolerance  = 1e-9
	PixelTolerance   = 0.5
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN %s", i, messageFrom(msgAndArgs))
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf %s", i, messageFrom(msgAndArgs))
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f] %s", i, v, minVal, maxVal, messageFrom(msgAndArgs))
		}
	}
	return true
}

// AssertSlicesInDelta verifies two slices have equal length and agree
// element-wise within tolerance. It reports only the first mismatch.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, "slices differ",
				"index %d: expected %v, got %v (tolerance %g) %s",
				i, expected[i], actual[i], tolerance, messageFrom(msgAndArgs))
		}
	}
	return true
}

// AssertAllEqual verifies every element of s equals want.
func AssertAllEqual(t *testing.T, s []float64, want float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != want {
			return assert.Fail(t, "unexpected value",
				"s[%d]=%v, want %v %s", i, v, want, messageFrom(msgAndArgs))
		}
	}
	return true
}

// Filled returns a slice of length n where every element is v.
func Filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func messageFrom(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return "(" + s + ")"
		}
		return fmt.Sprintf("(%+v)", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return "(" + fmt.Sprintf(format, msgAndArgs[1:]...) + ")"
		}
		return fmt.Sprintf("(%+v)", msgAndArgs)
	}
}
