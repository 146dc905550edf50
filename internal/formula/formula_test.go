package formula

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-quiverbloom/internal/testutil"
)

// TestGoldenTraces checks every formula against recorded reference points.
func TestGoldenTraces(t *testing.T) {
	for _, g := range goldenTraces {
		f, ok := Lookup(g.id)
		require.True(t, ok, "id %d", g.id)

		x, y := f.Point(g.i, f.Phase(g.t))
		assert.InDelta(t, g.x, x, testutil.GoldenTolerance, "algo%d t=%v i=%d x", g.id, g.t, g.i)
		assert.InDelta(t, g.y, y, testutil.GoldenTolerance, "algo%d t=%v i=%d y", g.id, g.t, g.i)
	}
}

// TestFill_MatchesPoint verifies Fill evaluates Point index by index.
func TestFill_MatchesPoint(t *testing.T) {
	const n = 500
	for id := 1; id <= Count; id++ {
		f, _ := Lookup(id)
		xs := make([]float64, n)
		ys := make([]float64, n)
		f.Fill(0.4, xs, ys)

		phase := f.Phase(0.4)
		for i := range n {
			x, y := f.Point(i, phase)
			require.Equal(t, x, xs[i], "algo%d i=%d", id, i)
			require.Equal(t, y, ys[i], "algo%d i=%d", id, i)
		}
	}
}

// TestFill_IgnoresPriorContents verifies that stale buffer data never leaks
// into the output.
func TestFill_IgnoresPriorContents(t *testing.T) {
	const n = 256
	for id := 1; id <= Count; id++ {
		f, _ := Lookup(id)

		clean := [2][]float64{make([]float64, n), make([]float64, n)}
		f.Fill(0.7, clean[0], clean[1])

		dirty := [2][]float64{make([]float64, n), make([]float64, n)}
		for i := range n {
			dirty[0][i] = math.NaN()
			dirty[1][i] = math.Inf(1)
		}
		f.Fill(0.7, dirty[0], dirty[1])

		assert.Equal(t, clean, dirty, "algo%d", id)
	}
}

// TestFill_LongerY verifies only the first len(xs) entries of ys are written.
func TestFill_LongerY(t *testing.T) {
	f, _ := Lookup(1)
	xs := make([]float64, 4)
	ys := []float64{0, 0, 0, 0, -7, -7}

	f.Fill(0, xs, ys)
	assert.Equal(t, []float64{-7, -7}, ys[4:])
}

// singular reports whether point i of formula id sits on a division by zero.
func singular(id, i int) bool {
	return id == 6 && i%100 == 50
}

// TestFill_OutputFinite checks a full recommended-size frame for NaN/Inf
// away from known singular points.
func TestFill_OutputFinite(t *testing.T) {
	sizes := map[int]int{1: 10000, 2: 10000, 3: 10000, 4: 10000, 5: 10000, 6: 20000, 7: 40000, 8: 40000}
	for id, n := range sizes {
		f, _ := Lookup(id)
		xs := make([]float64, n)
		ys := make([]float64, n)
		f.Fill(0.123, xs, ys)

		for i := range xs {
			if singular(id, i) {
				continue
			}
			if !assert.False(t, math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) ||
				math.IsNaN(ys[i]) || math.IsInf(ys[i], 0),
				"algo%d point %d = (%v, %v)", id, i, xs[i], ys[i]) {
				break
			}
		}
	}
}

func TestAlgo6_SingularColumn(t *testing.T) {
	for _, i := range []int{50, 150, 19950} {
		x, y := algo6(i, 0.7)
		assert.True(t, math.IsInf(x, 0) || math.IsNaN(x), "x at %d = %v", i, x)
		assert.True(t, math.IsInf(y, 0) || math.IsNaN(y), "y at %d = %v", i, y)
	}
}

// TestTimeScales pins the per-formula time scale.
func TestTimeScales(t *testing.T) {
	expected := []float64{1, 1, 4, 1, 16, 16, 1, 1}
	for id := 1; id <= Count; id++ {
		f, _ := Lookup(id)
		assert.Equal(t, expected[id-1], f.TimeScale, "algo%d", id)
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	for _, id := range []int{-1, 0, Count + 1, 1 << 20} {
		_, ok := Lookup(id)
		assert.False(t, ok, "id %d", id)
	}
}

// TestPeriodicity verifies that whole-number shifts of t reproduce the frame
// exactly. Dyadic t values keep t·scale exact so equality is bit-for-bit.
func TestPeriodicity(t *testing.T) {
	const n = 1000
	for id := 1; id <= Count; id++ {
		f, _ := Lookup(id)
		for _, base := range []float64{0, 0.125, 0.5, 0.8125} {
			want := [2][]float64{make([]float64, n), make([]float64, n)}
			f.Fill(base, want[0], want[1])

			for _, shift := range []float64{1, f.TimeScale, 3} {
				got := [2][]float64{make([]float64, n), make([]float64, n)}
				f.Fill(base+shift, got[0], got[1])
				assert.Equal(t, want, got, "algo%d t=%v shift=%v", id, base, shift)
			}
		}
	}
}

func BenchmarkFill(b *testing.B) {
	for id := 1; id <= Count; id++ {
		f, _ := Lookup(id)
		xs := make([]float64, 10000)
		ys := make([]float64, 10000)
		b.Run(fmt.Sprintf("algo%d", id), func(b *testing.B) {
			b.ReportAllocs()
			step := 0
			for b.Loop() {
				f.Fill(float64(step)/1000, xs, ys)
				step++
			}
		})
	}
}
