package formula

// Time scales applied before the phase wraps.
const (
	timeScaleUnit = 1.0
	timeScaleQuad = 4.0
	timeScaleHex  = 16.0
)
