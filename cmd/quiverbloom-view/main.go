// Command quiverbloom-view plays an algorithm in a desktop window.
//
// Usage:
//
//	quiverbloom-view
//	quiverbloom-view -algo medusa -steps 600
//
// Keys 1-8 switch algorithm, space pauses and Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/playback"
	"github.com/tphakala/go-quiverbloom/internal/raster"
)

// algorithmKeys maps keys 1-8 to algorithm ids 1-8.
var algorithmKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	algo := flag.String("algo", defaultAlgorithm, "Algorithm id (1-8) or name")
	steps := flag.Int("steps", quiverbloom.DefaultLoopSteps, "Frames per loop")
	scale := flag.Float64("scale", defaultScale, "Pixel ratio of the window")
	tps := flag.Int("tps", defaultTPS, "Frames per second")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	a, err := quiverbloom.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}

	opts := raster.DefaultOptions()
	opts.Scale = *scale
	p, err := playback.New(a, *steps, opts)
	if err != nil {
		return err
	}
	defer p.Close()

	g := &viewGame{p: p, verbose: *verbose}
	size := p.Image().Bounds().Size()
	ebiten.SetWindowTitle(windowTitle(a))
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetTPS(*tps)

	if *verbose {
		log.Printf("Playing %s (%d points, %d steps per loop)", a, quiverbloom.RecommendedPointCount(a), *steps)
	}

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func windowTitle(a quiverbloom.Algorithm) string {
	return fmt.Sprintf("quiverbloom: %d %s", int(a), a)
}

// viewGame adapts a playback.Player to ebiten's game loop.
type viewGame struct {
	p       *playback.Player
	img     *ebiten.Image
	verbose bool
}

func (g *viewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.p.TogglePause()
	}
	for i, key := range algorithmKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		a := quiverbloom.Algorithm(i + 1)
		if err := g.p.SelectAlgorithm(a); err != nil {
			return err
		}
		ebiten.SetWindowTitle(windowTitle(a))
		if g.verbose {
			log.Printf("Selected %s at t=%.3f", a, g.p.Time())
		}
	}

	g.p.Tick()
	return nil
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	src := g.p.Image()
	b := src.Bounds()
	if g.img == nil || g.img.Bounds() != image.Rect(0, 0, b.Dx(), b.Dy()) {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}

	g.img.WritePixels(src.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.p.Image().Bounds().Size()
	return size.X, size.Y
}
