package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPhase tests the time normalization against hand-computed values.
func TestPhase(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		scale    float64
		expected float64
	}{
		{"Zero", 0, 1, 0},
		{"Quarter", 0.25, 1, math.Pi / 2},
		{"Wraps at one", 1.25, 1, math.Pi / 2},
		{"Large t", 1000.5, 1, math.Pi},
		{"Scale four", 0.25, 4, TwoPi},
		{"Scale four wraps", 1.25, 4, TwoPi},
		{"Scale sixteen", 0.5, 16, 8 * TwoPi},
		{"Negative keeps sign", -0.25, 1, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Phase(tt.t, tt.scale), 1e-12)
		})
	}
}

// TestPhase_ExactForUnitScale checks that scale 1 is bit-identical to a plain fmod.
func TestPhase_ExactForUnitScale(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.3, 0.999, 12.345, 1e6 + 0.1} {
		assert.Equal(t, TwoPi*math.Mod(v, 1), Phase(v, 1), "t=%v", v)
	}
}

// TestPhase_Bounded checks that the phase stays within one scaled turn.
func TestPhase_Bounded(t *testing.T) {
	for _, scale := range []float64{1, 4, 16} {
		for v := 0.0; v < 50; v += 0.37 {
			p := Phase(v, scale)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.Less(t, p, TwoPi*scale)
		}
	}
}

func TestRemap(t *testing.T) {
	assert.InDelta(t, -1.0, Remap(0, 0, 400, -1, 1), 1e-15)
	assert.InDelta(t, 0.0, Remap(200, 0, 400, -1, 1), 1e-15)
	assert.InDelta(t, 1.0, Remap(400, 0, 400, -1, 1), 1e-15)
	assert.InDelta(t, 0.5, Remap(7, 3, 3, 0, 1), 1e-15, "degenerate range maps to the middle")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}
