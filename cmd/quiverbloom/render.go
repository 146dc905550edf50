package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/raster"
)

// renderJob is a validated render request.
type renderJob struct {
	scene   Scene
	alg     quiverbloom.Algorithm
	opts    raster.Options
	out     string
	verbose bool
}

func runRender(args []string, stderr io.Writer) error {
	job, err := parseRenderFlags(args, stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if strings.EqualFold(filepath.Ext(job.out), extGIF) {
		err = renderGIF(ctx, job)
	} else {
		err = renderPNGs(ctx, job)
	}
	if err != nil {
		return err
	}

	if job.verbose {
		log.Printf("Rendered %d frames in %v", job.scene.Steps, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// parseRenderFlags merges defaults, the optional scene file and the flags
// that were set explicitly, in that order.
func parseRenderFlags(args []string, stderr io.Writer) (*renderJob, error) {
	def := defaultScene()

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.String("algo", def.Algorithm, "Algorithm id (1-8) or name")
	steps := fs.Int("steps", def.Steps, "Frames per loop")
	points := fs.Int("points", 0, "Points per frame (0 = recommended for the algorithm)")
	workers := fs.Int("workers", 0, "Concurrent frames (0 = GOMAXPROCS)")
	scale := fs.Float64("scale", def.Scale, "Pixel ratio; the image is scale times the canvas size")
	radius := fs.Float64("radius", def.Radius, "Dot radius in canvas units")
	alpha := fs.Float64("alpha", def.Alpha, "Dot opacity in (0, 1]")
	fullDisc := fs.Bool("full-disc", false, "Stamp full dots instead of half discs")
	delay := fs.Int("delay", def.Delay, "GIF frame delay in hundredths of a second")
	out := fs.String("out", "", "Output directory for PNG frames, or a .gif file")
	config := fs.String("config", "", "YAML scene file")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	if *out == "" {
		fmt.Fprintf(stderr, "render: -out is required\n\n")
		fs.PrintDefaults()
		return nil, errUsage
	}

	scene := def
	if *config != "" {
		loaded, err := loadScene(*config)
		if err != nil {
			return nil, err
		}
		scene = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algo":
			scene.Algorithm = *algo
		case "steps":
			scene.Steps = *steps
		case "points":
			scene.Points = *points
		case "workers":
			scene.Workers = *workers
		case "scale":
			scene.Scale = *scale
		case "radius":
			scene.Radius = *radius
		case "alpha":
			scene.Alpha = *alpha
		case "full-disc":
			scene.FullDisc = *fullDisc
		case "delay":
			scene.Delay = *delay
		}
	})

	if err := scene.Validate(); err != nil {
		return nil, err
	}

	a, _ := quiverbloom.ParseAlgorithm(scene.Algorithm)
	opts, _ := scene.rasterOptions()

	if *verbose {
		log.Printf("Scene: %s", scene)
		log.Printf("Output: %s", *out)
	}

	return &renderJob{scene: scene, alg: a, opts: opts, out: *out, verbose: *verbose}, nil
}

// canvasPool hands each ForEachFrame worker its own canvas.
type canvasPool struct {
	pool sync.Pool
}

func newCanvasPool(a quiverbloom.Algorithm, opts raster.Options) (*canvasPool, error) {
	c := a.Canvas()
	// Validate once so New below cannot fail.
	if _, err := raster.New(c.Width, c.Height, opts); err != nil {
		return nil, err
	}

	p := &canvasPool{}
	p.pool.New = func() any {
		cv, _ := raster.New(c.Width, c.Height, opts)
		return cv
	}
	return p, nil
}

func (p *canvasPool) Get() *raster.Canvas  { return p.pool.Get().(*raster.Canvas) }
func (p *canvasPool) Put(c *raster.Canvas) { p.pool.Put(c) }

func (j *renderJob) sequenceOptions() quiverbloom.SequenceOptions {
	return quiverbloom.SequenceOptions{Points: j.scene.Points, Workers: j.scene.Workers}
}

// renderPNGs writes one PNG per step into the output directory.
func renderPNGs(ctx context.Context, j *renderJob) error {
	if err := os.MkdirAll(j.out, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	canvases, err := newCanvasPool(j.alg, j.opts)
	if err != nil {
		return err
	}

	progress := newProgressTracker(j.scene.Steps, j.verbose)
	times := quiverbloom.LoopTimes(j.scene.Steps)

	return quiverbloom.ForEachFrame(ctx, j.alg, times, j.sequenceOptions(),
		func(i int, f *quiverbloom.Frame) error {
			cv := canvases.Get()
			defer canvases.Put(cv)

			cv.Draw(f.X(), f.Y())
			path := filepath.Join(j.out, fmt.Sprintf(frameFileFormat, i))
			if err := writePNG(path, cv.Image()); err != nil {
				return err
			}
			progress.done()
			return nil
		})
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// renderGIF renders the loop into a single animated GIF. Every frame is kept
// in memory as a paletted image until encoding.
func renderGIF(ctx context.Context, j *renderJob) error {
	canvases, err := newCanvasPool(j.alg, j.opts)
	if err != nil {
		return err
	}

	progress := newProgressTracker(j.scene.Steps, j.verbose)
	times := quiverbloom.LoopTimes(j.scene.Steps)
	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(times)),
		Delay: make([]int, len(times)),
	}

	err = quiverbloom.ForEachFrame(ctx, j.alg, times, j.sequenceOptions(),
		func(i int, f *quiverbloom.Frame) error {
			cv := canvases.Get()
			defer canvases.Put(cv)

			cv.Draw(f.X(), f.Y())
			anim.Image[i] = raster.Paletted(cv.Image(), raster.GrayPalette)
			anim.Delay[i] = j.scene.Delay
			progress.done()
			return nil
		})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(j.out); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	file, err := os.Create(j.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := gif.EncodeAll(file, anim); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode GIF: %w", err)
	}
	return file.Close()
}

// progressTracker logs completion every progressInterval percent. It is
// safe for concurrent use.
type progressTracker struct {
	mu           sync.Mutex
	total        int
	completed    int
	lastProgress int
	verbose      bool
}

func newProgressTracker(total int, verbose bool) *progressTracker {
	return &progressTracker{total: total, verbose: verbose}
}

// done records one finished frame.
func (p *progressTracker) done() {
	if !p.verbose || p.total == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	progress := p.completed * percentScale / p.total
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
