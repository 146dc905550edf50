// Command quiverbloom-scope writes an animation as a stereo WAV file for an
// oscilloscope in XY mode: x drives the left channel and y the right.
//
// Usage:
//
//	quiverbloom-scope -algo 3 out.wav
//	quiverbloom-scope -algo medusa -frames 50 -points 4000 -bits 24 out.wav
//
// Each frame's points are played back to back, so one frame lasts
// points/rate seconds. Points are normalized from the canvas to [-1, 1]; the
// y axis is flipped because canvas y grows downwards.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tphakala/go-quiverbloom"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	algo := flag.String("algo", defaultAlgorithm, "Algorithm id (1-8) or name")
	rate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz")
	bits := flag.Int("bits", bitsPerSample16, "Bits per sample: 16 or 24")
	frames := flag.Int("frames", defaultFrames, "Number of frames to write")
	steps := flag.Int("steps", quiverbloom.DefaultLoopSteps, "Frames per loop; t advances by 1/steps per frame")
	points := flag.Int("points", defaultPoints, "Points per frame (0 = recommended for the algorithm)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	a, err := quiverbloom.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}

	cfg := scopeConfig{
		Algorithm:  a,
		SampleRate: *rate,
		BitDepth:   *bits,
		Frames:     *frames,
		Steps:      *steps,
		Points:     *points,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *verbose {
		n := cfg.pointsPerFrame()
		log.Printf("Algorithm: %s (%d)", a, int(a))
		log.Printf("Output: %s, %d Hz, %d-bit stereo", args[0], cfg.SampleRate, cfg.BitDepth)
		log.Printf("Frames: %d x %d points (%.1f ms per frame)",
			cfg.Frames, n, float64(n)/float64(cfg.SampleRate)*msPerSecond)
	}

	start := time.Now()
	written, err := writeScopeFile(args[0], cfg)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %d sample frames (%.2fs of audio) in %v",
			written, float64(written)/float64(cfg.SampleRate), time.Since(start).Round(time.Millisecond))
	}
	return nil
}
