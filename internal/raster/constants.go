package raster

const (
	defaultScale  = 2.0
	defaultRadius = 1.0
	defaultAlpha  = 0.2

	// pixelCenter offsets a pixel index to the center of the pixel.
	pixelCenter = 0.5

	grayLevels = 256
)
