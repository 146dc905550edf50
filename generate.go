package quiverbloom

import (
	"fmt"

	"github.com/tphakala/go-quiverbloom/internal/formula"
)

// GenerateFrame computes the frame of algorithm a at time t into xs and ys.
// For every i in [0, len(xs)) it writes the i-th point to xs[i] and ys[i];
// ys must be at least as long as xs. Prior buffer contents are never read.
//
// An invalid algorithm panics. GenerateFrame keeps no state, so concurrent
// calls on disjoint buffers are safe.
func GenerateFrame(a Algorithm, t float64, xs, ys []float64) {
	f, ok := formula.Lookup(int(a))
	if !ok {
		panic(fmt.Errorf("quiverbloom: %w: %d", ErrUnknownAlgorithm, int(a)))
	}
	f.Fill(t, xs, ys)
}

// GenerateFrameID is the boundary form of GenerateFrame: it takes a raw id and
// an explicit point count. Both buffers must hold at least size values.
func GenerateFrameID(id int, t float64, xs, ys []float64, size int) {
	GenerateFrame(MustAlgorithm(id), t, xs[:size], ys[:size])
}
