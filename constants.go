package quiverbloom

// Catalog constants
const (
	numAlgorithms     = 8   // Number of formula variants
	defaultCanvasSize = 400 // Canvas width and height shared by every variant
)

// Recommended point counts
const (
	pointsStandard = 10000 // Variants 1-5
	pointsDense    = 20000 // Variant 6
	pointsDensest  = 40000 // Variants 7 and 8
)

// DefaultLoopSteps is the number of frames in one animation loop when t
// advances by 1/DefaultLoopSteps per frame.
const DefaultLoopSteps = 1000

// Sequence constants
const (
	loopPeriod = 1.0 // Every variant repeats when t advances by a whole number
)
