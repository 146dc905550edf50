// Package raster draws point frames onto RGBA images the way the browser host
// paints its canvas: clear to a background, then stamp every point as a small
// translucent dot.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrInvalidOptions indicates options that cannot produce an image.
var ErrInvalidOptions = errors.New("invalid raster options")

// Options controls how points are stamped.
type Options struct {
	// Scale is the device pixel ratio: canvas coordinates are multiplied by
	// Scale and the image is Scale times larger than the canvas.
	Scale float64

	// Radius is the dot radius in canvas units.
	Radius float64

	// Alpha is the opacity of a single dot, in (0, 1].
	Alpha float64

	// Background fills the image before each frame.
	Background color.RGBA

	// Foreground is the dot color. Its alpha channel is ignored; Alpha is used
	// instead.
	Foreground color.RGBA

	// HalfDisc stamps only the lower half of each dot, as a canvas
	// arc(x, y, r, 0, π) does.
	HalfDisc bool
}

// DefaultOptions returns the browser host's look: white dots of radius 1 at
// 20% opacity on black, half discs, drawn at a pixel ratio of 2.
func DefaultOptions() Options {
	return Options{
		Scale:      defaultScale,
		Radius:     defaultRadius,
		Alpha:      defaultAlpha,
		Background: color.RGBA{A: 0xff},
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		HalfDisc:   true,
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidOptions, o.Scale)
	}
	if !(o.Radius > 0) || math.IsInf(o.Radius, 0) {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidOptions, o.Radius)
	}
	if !(o.Alpha > 0 && o.Alpha <= 1) {
		return fmt.Errorf("%w: alpha must be in (0, 1], got %v", ErrInvalidOptions, o.Alpha)
	}
	return nil
}

// Canvas is a reusable drawing surface for one canvas size.
type Canvas struct {
	img  *image.RGBA
	opts Options

	// Stamp offsets relative to the dot's pixel-space center, in whole
	// pixels, precomputed from Radius and Scale.
	reach int
	r2    float64
}

// New creates a canvas for a width×height coordinate space.
func New(width, height int, opts Options) (*Canvas, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas must be non-empty, got %dx%d", ErrInvalidOptions, width, height)
	}

	w := int(math.Ceil(float64(width) * opts.Scale))
	h := int(math.Ceil(float64(height) * opts.Scale))
	r := opts.Radius * opts.Scale

	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		opts:  opts,
		reach: int(math.Ceil(r)) + 1,
		r2:    r * r,
	}
	c.Clear()
	return c, nil
}

// Image returns the backing image. It is overwritten by the next Clear or
// Draw.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Options returns the canvas options.
func (c *Canvas) Options() Options { return c.opts }

// Clear fills the image with the background color.
func (c *Canvas) Clear() {
	bg := c.opts.Background
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
}

// Draw clears the canvas and stamps the points (xs[i], ys[i]). It returns the
// number of points that touched at least one pixel. Points that are not
// finite or fall entirely outside the image are skipped.
func (c *Canvas) Draw(xs, ys []float64) int {
	c.Clear()
	return c.Stamp(xs, ys)
}

// Stamp adds the points on top of the current image without clearing it.
func (c *Canvas) Stamp(xs, ys []float64) int {
	ys = ys[:len(xs)]
	drawn := 0
	for i, x := range xs {
		if c.stamp(x, ys[i]) {
			drawn++
		}
	}
	return drawn
}

// stamp blends one dot centered at canvas point (x, y).
func (c *Canvas) stamp(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	cx, cy := x*c.opts.Scale, y*c.opts.Scale
	b := c.img.Rect
	reach := float64(c.reach)
	if cx < float64(b.Min.X)-reach || cx > float64(b.Max.X)+reach ||
		cy < float64(b.Min.Y)-reach || cy > float64(b.Max.Y)+reach {
		return false
	}
	px0 := max(int(math.Floor(cx))-c.reach, b.Min.X)
	px1 := min(int(math.Floor(cx))+c.reach, b.Max.X-1)
	py0 := max(int(math.Floor(cy))-c.reach, b.Min.Y)
	py1 := min(int(math.Floor(cy))+c.reach, b.Max.Y-1)
	if c.opts.HalfDisc {
		py0 = max(py0, int(math.Floor(cy-pixelCenter)))
	}

	hit := false
	for py := py0; py <= py1; py++ {
		dy := float64(py) + pixelCenter - cy
		if c.opts.HalfDisc && dy < 0 {
			continue
		}
		for px := px0; px <= px1; px++ {
			dx := float64(px) + pixelCenter - cx
			if dx*dx+dy*dy > c.r2 {
				continue
			}
			c.blend(px, py)
			hit = true
		}
	}
	return hit
}

// blend composites the foreground over pixel (px, py) with source-over.
func (c *Canvas) blend(px, py int) {
	a := c.opts.Alpha
	fg := c.opts.Foreground
	i := c.img.PixOffset(px, py)
	p := c.img.Pix[i : i+4 : i+4]

	p[0] = over(p[0], fg.R, a)
	p[1] = over(p[1], fg.G, a)
	p[2] = over(p[2], fg.B, a)
	p[3] = over(p[3], 0xff, a)
}

func over(dst, src uint8, a float64) uint8 {
	v := float64(dst) + (float64(src)-float64(dst))*a
	return uint8(math.Round(v))
}
