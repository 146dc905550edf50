// Package bufpool implements the handle-based point buffer allocator.
//
// An Allocator hands out float64 storage behind opaque handles so that callers
// on the far side of a module boundary (a JS host, a render loop) can hold a
// buffer without holding a Go slice. The contract mirrors manual memory
// management: every Allocate is paired with exactly one Release naming the same
// size. Breaking the contract panics.
package bufpool

import (
	"fmt"
	"sync"
)

// Handle identifies a live allocation. The zero Handle is never issued.
type Handle uint32

// Allocator tracks live point buffers and recycles released storage.
// It is safe for concurrent use.
type Allocator struct {
	mu      sync.Mutex
	next    Handle
	live    map[Handle][]float64
	free    map[int][][]float64
	maxFree int
	bytes   int64
}

// New creates an allocator that keeps up to defaultMaxFreePerSize released
// buffers of each size for reuse.
func New() *Allocator {
	return NewWithReuse(defaultMaxFreePerSize)
}

// NewWithReuse creates an allocator that keeps up to maxFree released buffers
// of each size. Zero disables reuse.
func NewWithReuse(maxFree int) *Allocator {
	if maxFree < 0 {
		maxFree = 0
	}

	return &Allocator{
		live:    make(map[Handle][]float64),
		free:    make(map[int][][]float64),
		maxFree: maxFree,
	}
}

// Allocate reserves storage for exactly size float64 values.
// The contents of the storage are unspecified. A negative size panics.
func (a *Allocator) Allocate(size int) Handle {
	if size < 0 {
		panic(fmt.Sprintf("bufpool: negative allocation size %d", size))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var buf []float64
	if list := a.free[size]; len(list) > 0 {
		buf = list[len(list)-1]
		list[len(list)-1] = nil
		a.free[size] = list[:len(list)-1]
	} else {
		buf = make([]float64, size)
	}

	h := a.nextHandle()
	a.live[h] = buf
	a.bytes += int64(size) * bytesPerFloat64

	return h
}

// Release returns the storage behind h. size must be the size h was allocated
// with. Releasing an unknown handle, releasing twice, or passing a different
// size panics. After Release the handle must not be used again.
func (a *Allocator) Release(h Handle, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.live[h]
	if !ok {
		panic(fmt.Sprintf("bufpool: release of unknown handle %d", h))
	}
	if len(buf) != size {
		panic(fmt.Sprintf("bufpool: release of handle %d with size %d, allocated with %d", h, size, len(buf)))
	}

	delete(a.live, h)
	a.bytes -= int64(size) * bytesPerFloat64

	if len(a.free[size]) < a.maxFree {
		a.free[size] = append(a.free[size], buf)
	}
}

// Slice returns the storage behind a live handle. The slice is valid until the
// handle is released. An unknown handle panics.
func (a *Allocator) Slice(h Handle) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.live[h]
	if !ok {
		panic(fmt.Sprintf("bufpool: access to unknown handle %d", h))
	}
	return buf
}

// Size reports the allocated size of h and whether h is live.
func (a *Allocator) Size(h Handle) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.live[h]
	return len(buf), ok
}

// Outstanding returns the number of live handles.
func (a *Allocator) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Bytes returns the number of bytes held by live handles.
func (a *Allocator) Bytes() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bytes
}

// Cached returns the number of released buffers held for reuse.
func (a *Allocator) Cached() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, list := range a.free {
		n += len(list)
	}
	return n
}

// Trim drops every buffer held for reuse.
func (a *Allocator) Trim() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.free)
}

// nextHandle returns an unused non-zero handle. Caller must hold a.mu.
func (a *Allocator) nextHandle() Handle {
	for {
		a.next++
		if a.next == 0 {
			continue
		}
		if _, used := a.live[a.next]; !used {
			return a.next
		}
	}
}
