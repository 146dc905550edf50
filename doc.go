// Package quiverbloom generates the point coordinates of animated generative
// art, one frame at a time.
//
// Given an [Algorithm] and a time value t, the package computes a set of 2D
// points on a 400×400 canvas. Drawing, color and frame pacing belong to the
// host; this package only does the coordinate math and manages the buffers
// that carry the results.
//
// # Quick Start
//
// For a host written in Go:
//
//	f, err := quiverbloom.NewFrame(quiverbloom.AlgorithmWisp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	for _, t := range quiverbloom.LoopTimes(quiverbloom.DefaultLoopSteps) {
//	    f.Generate(t)
//	    draw(f.X(), f.Y())
//	}
//
// For a host that cannot hold Go slices, the handle-based boundary mirrors
// manual memory management:
//
//	al := quiverbloom.NewAllocator()
//	n := quiverbloom.RecommendedPointCount(a)
//	xh, yh := al.Allocate(n), al.Allocate(n)
//	al.GenerateFrame(int(a), t, xh, yh, n)
//	...
//	al.Release(xh, n)
//	al.Release(yh, n)
//
// # Algorithms
//
// The catalog is a fixed set of eight formulas, ids 1 through 8:
//
//   - [AlgorithmWisp], [AlgorithmLotus], [AlgorithmFlame]: 10000 points.
//   - [AlgorithmSpiral] and [AlgorithmOrbit]: 10000 points, faster phase.
//   - [AlgorithmShell]: 20000 points.
//   - [AlgorithmCreature] and [AlgorithmMedusa]: 40000 points.
//
// Every formula treats t cyclically, so frames for t and t+1 are identical
// and a loop of [DefaultLoopSteps] frames at t = k/DefaultLoopSteps plays
// seamlessly.
//
// [AlgorithmShell] divides by zero on every hundredth point starting at
// index 50, so those coordinates are infinite. Hosts should skip points that
// are not finite; [Frame.Bounds] and [Frame.Centroid] already do.
//
// # Contract Violations
//
// The raw boundary ([GenerateFrame], [GenerateFrameID], [Allocator]) does not
// return errors. An unknown algorithm id, a short buffer, or a Release with
// the wrong size panics. The convenience layer ([NewFrame],
// [GenerateSequence], [ParseAlgorithm]) returns errors wrapping
// [ErrUnknownAlgorithm] or [ErrInvalidConfig] instead.
//
// # Thread Safety
//
// Frame generation is pure and keeps no state, so concurrent calls on
// disjoint buffers are safe. An [Allocator] may be shared between goroutines.
// A [Frame] must not be used from more than one goroutine at a time.
//
// # Attribution
//
// The formulas are transcriptions of generative pieces posted by yuruyurau
// (https://x.com/yuruyurau). Each formula's source post is noted next to its
// implementation.
package quiverbloom
