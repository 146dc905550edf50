package quiverbloom

import (
	"github.com/tphakala/go-quiverbloom/internal/bufpool"
)

// Handle identifies a point buffer owned by a caller of an Allocator.
// The zero Handle is never issued.
type Handle = bufpool.Handle

// Allocator hands out point buffers behind opaque handles, for hosts that
// cannot hold Go slices directly (a JS page, a plugin boundary).
//
// The protocol is strict: every Allocate is paired with exactly one Release
// naming the same size, and a handle is not used after its Release. Breaking
// the protocol panics. An Allocator is safe for concurrent use.
type Allocator struct {
	pool *bufpool.Allocator
}

// defaultAllocator backs NewFrame, NewFrameSize and WithFrame.
var defaultAllocator = NewAllocator()

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{pool: bufpool.New()}
}

// DefaultAllocator returns the allocator used by the package-level frame
// constructors.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// Allocate reserves a buffer of exactly size float64 values and transfers its
// ownership to the caller. The initial contents are unspecified.
func (al *Allocator) Allocate(size int) Handle {
	return al.pool.Allocate(size)
}

// Release reclaims a buffer returned by Allocate. size must equal the size
// passed to Allocate.
func (al *Allocator) Release(h Handle, size int) {
	al.pool.Release(h, size)
}

// Slice returns the storage behind a live handle.
func (al *Allocator) Slice(h Handle) []float64 {
	return al.pool.Slice(h)
}

// Outstanding returns the number of handles allocated and not yet released.
func (al *Allocator) Outstanding() int {
	return al.pool.Outstanding()
}

// Bytes returns the memory held by outstanding handles.
func (al *Allocator) Bytes() int64 {
	return al.pool.Bytes()
}

// GenerateFrame is the handle form of GenerateFrameID: it fills the first
// size values of the buffers behind xh and yh with the frame of algorithm id
// at time t. It panics on an invalid id, an unknown handle, or a size larger
// than either buffer.
func (al *Allocator) GenerateFrame(id int, t float64, xh, yh Handle, size int) {
	GenerateFrameID(id, t, al.Slice(xh), al.Slice(yh), size)
}
