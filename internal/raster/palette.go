package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// GrayPalette holds 256 evenly spaced gray levels, enough to represent the
// default white-on-black output without dithering.
var GrayPalette = func() color.Palette {
	p := make(color.Palette, grayLevels)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// Paletted converts img to a paletted image for GIF encoding. Each pixel maps
// to the nearest palette entry.
func Paletted(img image.Image, p color.Palette) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, p)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
