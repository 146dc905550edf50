package bufpool

// Buffer and memory constants
const (
	bytesPerFloat64       = 8 // Size of float64 in bytes
	defaultMaxFreePerSize = 4 // Released buffers kept per size
)
