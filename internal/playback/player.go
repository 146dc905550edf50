// Package playback steps an algorithm through its loop and rasterizes each
// frame, for interactive hosts.
package playback

import (
	"fmt"
	"image"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/raster"
)

// Player owns the point buffers and the canvas for a window. It drives the
// handle-based API the same way the browser page does: allocate buffers from
// the catalog size, regenerate them every tick, and release and reallocate
// when the algorithm changes.
type Player struct {
	al    *quiverbloom.Allocator
	opts  raster.Options
	steps int

	alg    quiverbloom.Algorithm
	n      int
	xh, yh quiverbloom.Handle
	canvas *raster.Canvas

	step   int
	paused bool
}

// New creates a player positioned at t=0 with frame 0 already rendered.
func New(a quiverbloom.Algorithm, steps int, opts raster.Options) (*Player, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", quiverbloom.ErrInvalidConfig, steps)
	}

	p := &Player{al: quiverbloom.NewAllocator(), opts: opts, steps: steps}
	if err := p.SelectAlgorithm(a); err != nil {
		return nil, err
	}
	return p, nil
}

// SelectAlgorithm switches to a. The time position is kept.
func (p *Player) SelectAlgorithm(a quiverbloom.Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", quiverbloom.ErrUnknownAlgorithm, int(a))
	}

	c := a.Canvas()
	canvas, err := raster.New(c.Width, c.Height, p.opts)
	if err != nil {
		return err
	}

	p.release()
	p.alg = a
	p.n = quiverbloom.RecommendedPointCount(a)
	p.xh = p.al.Allocate(p.n)
	p.yh = p.al.Allocate(p.n)
	p.canvas = canvas
	p.render()
	return nil
}

// Time returns the t of the current step.
func (p *Player) Time() float64 {
	return float64(p.step) / float64(p.steps)
}

// Tick renders the current step and advances to the next one, wrapping at the
// end of the loop. A paused Player only re-renders.
func (p *Player) Tick() {
	p.render()
	if p.paused {
		return
	}
	if p.step++; p.step >= p.steps {
		p.step = 0
	}
}

func (p *Player) render() {
	p.al.GenerateFrame(int(p.alg), p.Time(), p.xh, p.yh, p.n)
	p.canvas.Draw(p.al.Slice(p.xh), p.al.Slice(p.yh))
}

// TogglePause stops or resumes advancing.
func (p *Player) TogglePause() { p.paused = !p.paused }

// Paused reports whether the player is paused.
func (p *Player) Paused() bool { return p.paused }

// Algorithm returns the algorithm being played.
func (p *Player) Algorithm() quiverbloom.Algorithm { return p.alg }

// Step returns the current step within the loop.
func (p *Player) Step() int { return p.step }

// Image returns the last rendered frame. It is overwritten by the next Tick
// or SelectAlgorithm.
func (p *Player) Image() *image.RGBA { return p.canvas.Image() }

// Outstanding returns the number of buffer handles the player holds.
func (p *Player) Outstanding() int { return p.al.Outstanding() }

// release returns the current buffers, if any.
func (p *Player) release() {
	if p.xh == 0 {
		return
	}
	p.al.Release(p.xh, p.n)
	p.al.Release(p.yh, p.n)
	p.xh, p.yh = 0, 0
}

// Close releases everything the player holds.
func (p *Player) Close() {
	p.release()
}
