package mathutil

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
