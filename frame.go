package quiverbloom

import (
	"fmt"

	"github.com/tphakala/go-quiverbloom/internal/mathutil"
	"github.com/tphakala/go-quiverbloom/internal/simdops"
)

// Rect is an axis-aligned bounding box in canvas coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Frame owns a pair of point buffers for one algorithm and regenerates them
// in place. A Frame is not safe for concurrent use; Close releases its
// buffers back to the allocator it came from.
type Frame struct {
	alg   Algorithm
	alloc *Allocator
	xh    Handle
	yh    Handle
	xs    []float64
	ys    []float64
	t     float64

	// float32 export scratch
	x32 []float32
	y32 []float32

	closed bool
}

// NewFrame allocates a frame sized to the algorithm's recommended point count.
func NewFrame(a Algorithm) (*Frame, error) {
	return defaultAllocator.NewFrame(a, a.Canvas().Points)
}

// NewFrameSize allocates a frame with an explicit point count.
func NewFrameSize(a Algorithm, points int) (*Frame, error) {
	return defaultAllocator.NewFrame(a, points)
}

// WithFrame allocates a frame for a, runs fn, and releases the frame on every
// exit path, including a panic in fn.
func WithFrame(a Algorithm, fn func(*Frame) error) error {
	f, err := NewFrame(a)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}

// NewFrame allocates a frame whose buffers come from al.
// The frame is not generated until Generate is called.
func (al *Allocator) NewFrame(a Algorithm, points int) (*Frame, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	if points < 0 {
		return nil, fmt.Errorf("%w: point count must not be negative, got %d", ErrInvalidConfig, points)
	}

	f := &Frame{
		alg:   a,
		alloc: al,
		xh:    al.Allocate(points),
		yh:    al.Allocate(points),
	}
	f.xs = al.Slice(f.xh)
	f.ys = al.Slice(f.yh)

	return f, nil
}

// Generate recomputes every point for time t.
func (f *Frame) Generate(t float64) {
	f.mustBeOpen()
	GenerateFrame(f.alg, t, f.xs, f.ys)
	f.t = t
}

// Algorithm returns the frame's algorithm.
func (f *Frame) Algorithm() Algorithm { return f.alg }

// Time returns the t of the last Generate call.
func (f *Frame) Time() float64 { return f.t }

// Len returns the number of points.
func (f *Frame) Len() int { return len(f.xs) }

// X returns the x coordinates. The slice aliases the frame's storage and is
// overwritten by the next Generate.
func (f *Frame) X() []float64 { return f.xs }

// Y returns the y coordinates, with the same aliasing as X.
func (f *Frame) Y() []float64 { return f.ys }

// Point returns the i-th point.
func (f *Frame) Point(i int) (x, y float64) {
	return f.xs[i], f.ys[i]
}

// Interleaved writes [x0, y0, x1, y1, ...] into dst, growing it if needed,
// and returns it.
func (f *Frame) Interleaved(dst []float64) []float64 {
	return simdops.Interleave(dst, f.xs, f.ys)
}

// Float32 is like Interleaved but converts to single precision, the layout a
// GPU vertex buffer expects.
func (f *Frame) Float32(dst []float32) []float32 {
	f.x32 = simdops.ToFloat32(f.x32, f.xs)
	f.y32 = simdops.ToFloat32(f.y32, f.ys)
	return simdops.Interleave(dst, f.x32, f.y32)
}

// Scale multiplies every coordinate by s in place, for drawing on a surface
// with a device pixel ratio other than one.
func (f *Frame) Scale(s float64) {
	ops := simdops.Float64Ops()
	ops.Scale(f.xs, f.xs, s)
	ops.Scale(f.ys, f.ys, s)
}

// Bounds returns the bounding box of the finite points. Some formulas hit a
// singularity at a few indices and yield infinite coordinates there; those
// points are left out. A frame with no finite point returns the zero Rect.
func (f *Frame) Bounds() Rect {
	return Rect(mathutil.Bounds(f.xs, f.ys))
}

// Centroid returns the mean of the finite points. An empty frame returns
// (0, 0).
func (f *Frame) Centroid() (x, y float64) {
	x, y = simdops.Mean(f.xs), simdops.Mean(f.ys)
	if mathutil.IsFinite(x) && mathutil.IsFinite(y) {
		return x, y
	}
	x, y, _ = mathutil.FiniteMean(f.xs, f.ys)
	return x, y
}

// Close releases the frame's buffers. Close is idempotent; the frame must not
// be used afterwards.
func (f *Frame) Close() {
	if f == nil || f.closed {
		return
	}
	n := len(f.xs)
	f.alloc.Release(f.xh, n)
	f.alloc.Release(f.yh, n)
	f.xs, f.ys = nil, nil
	f.closed = true
}

func (f *Frame) mustBeOpen() {
	if f.closed {
		panic("quiverbloom: use of closed frame")
	}
}
