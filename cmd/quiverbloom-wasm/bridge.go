package main

import (
	"encoding/binary"
	"math"

	"github.com/tphakala/go-quiverbloom"
)

// bridge is the boundary exported to the page, in the page's types: handles,
// ids and sizes are plain integers. Contract violations panic, which stops
// the Go program the way a trap stops a wasm instance.
type bridge struct {
	al      *quiverbloom.Allocator
	scratch []byte
}

func newBridge() *bridge {
	return &bridge{al: quiverbloom.NewAllocator()}
}

func (b *bridge) createArray(size int) int {
	return int(b.al.Allocate(size))
}

func (b *bridge) freeArray(h, size int) {
	b.al.Release(quiverbloom.Handle(h), size)
}

func (b *bridge) numAlgorithms() int {
	return quiverbloom.AlgorithmCount()
}

func (b *bridge) width(id int) int {
	return quiverbloom.CanvasWidth(quiverbloom.Algorithm(id))
}

func (b *bridge) height(id int) int {
	return quiverbloom.CanvasHeight(quiverbloom.Algorithm(id))
}

func (b *bridge) numPoints(id int) int {
	return quiverbloom.RecommendedPointCount(quiverbloom.Algorithm(id))
}

func (b *bridge) framePoints(id int, t float64, xh, yh, size int) {
	b.al.GenerateFrame(id, t, quiverbloom.Handle(xh), quiverbloom.Handle(yh), size)
}

// arrayBytes returns the contents of h as little-endian float64 bytes, the
// layout of a JS Float64Array. The result aliases a scratch buffer that is
// reused by the next call.
func (b *bridge) arrayBytes(h int) []byte {
	b.scratch = encodeFloat64s(b.scratch, b.al.Slice(quiverbloom.Handle(h)))
	return b.scratch
}

// encodeFloat64s writes src into dst as little-endian IEEE 754 doubles,
// growing dst when needed.
func encodeFloat64s(dst []byte, src []float64) []byte {
	n := len(src) * bytesPerFloat64
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range src {
		binary.LittleEndian.PutUint64(dst[i*bytesPerFloat64:], math.Float64bits(v))
	}
	return dst
}
