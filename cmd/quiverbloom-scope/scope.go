package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/mathutil"
)

// scopeConfig describes one oscilloscope render.
type scopeConfig struct {
	Algorithm  quiverbloom.Algorithm
	SampleRate int
	BitDepth   int
	Frames     int
	Steps      int
	Points     int // 0 selects the recommended count
}

// Validate checks the configuration.
func (c *scopeConfig) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %d", quiverbloom.ErrUnknownAlgorithm, int(c.Algorithm))
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", quiverbloom.ErrInvalidConfig, c.SampleRate)
	}
	if c.BitDepth != bitsPerSample16 && c.BitDepth != bitsPerSample24 {
		return fmt.Errorf("%w: unsupported bit depth %d (want 16 or 24)", quiverbloom.ErrInvalidConfig, c.BitDepth)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", quiverbloom.ErrInvalidConfig, c.Frames)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", quiverbloom.ErrInvalidConfig, c.Steps)
	}
	if c.Points < 0 {
		return fmt.Errorf("%w: points must not be negative, got %d", quiverbloom.ErrInvalidConfig, c.Points)
	}
	return nil
}

func (c *scopeConfig) pointsPerFrame() int {
	if c.Points == 0 {
		return c.Algorithm.Canvas().Points
	}
	return c.Points
}

// frameTimes returns the t of every frame, wrapping around the loop.
func (c *scopeConfig) frameTimes() []float64 {
	times := make([]float64, c.Frames)
	for k := range times {
		times[k] = float64(k%c.Steps) / float64(c.Steps)
	}
	return times
}

// writeScopeFile renders cfg into a WAV file at path and returns the number
// of stereo sample frames written.
func writeScopeFile(path string, cfg scopeConfig) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	n, err := writeScope(file, cfg)
	if err != nil {
		_ = file.Close()
		return n, err
	}
	return n, file.Close()
}

// writeScope encodes cfg as WAV into w. Frames are generated concurrently in
// batches and encoded strictly in order.
func writeScope(w io.WriteSeeker, cfg scopeConfig) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	enc := wav.NewEncoder(w, cfg.SampleRate, cfg.BitDepth, stereoChannels, wavFormatPCM)
	q := newQuantizer(cfg.Algorithm.Canvas(), cfg.BitDepth)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: stereoChannels, SampleRate: cfg.SampleRate},
		SourceBitDepth: cfg.BitDepth,
	}

	opts := quiverbloom.SequenceOptions{Points: cfg.pointsPerFrame()}
	times := cfg.frameTimes()
	written := 0
	for len(times) > 0 {
		batch := times[:min(len(times), framesPerBatch)]
		times = times[len(batch):]

		n, err := encodeBatch(enc, buf, q, cfg.Algorithm, batch, opts)
		written += n
		if err != nil {
			return written, err
		}
	}

	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return written, nil
}

// encodeBatch generates the frames for times and writes them in order.
func encodeBatch(enc *wav.Encoder, buf *audio.IntBuffer, q quantizer,
	a quiverbloom.Algorithm, times []float64, opts quiverbloom.SequenceOptions,
) (int, error) {
	frames, err := quiverbloom.GenerateSequence(context.Background(), a, times, opts)
	if err != nil {
		return 0, err
	}
	defer func() {
		for _, f := range frames {
			f.Close()
		}
	}()

	written := 0
	for _, f := range frames {
		buf.Data = q.appendFrame(buf.Data[:0], f.X(), f.Y())
		if err := enc.Write(buf); err != nil {
			return written, fmt.Errorf("failed to write samples: %w", err)
		}
		written += len(buf.Data) / stereoChannels
	}
	return written, nil
}

// quantizer maps canvas coordinates to integer PCM samples.
type quantizer struct {
	width, height float64
	maxVal        float64
}

func newQuantizer(c quiverbloom.Canvas, bitDepth int) quantizer {
	maxVal := maxInt16
	if bitDepth == bitsPerSample24 {
		maxVal = maxInt24
	}
	return quantizer{width: float64(c.Width), height: float64(c.Height), maxVal: maxVal}
}

// sample converts one point. ok is false for points that are not finite.
func (q quantizer) sample(x, y float64) (l, r int, ok bool) {
	if !mathutil.IsFinite(x) || !mathutil.IsFinite(y) {
		return 0, 0, false
	}
	nx := mathutil.Clamp(mathutil.Remap(x, 0, q.width, -1, 1), -1, 1)
	ny := mathutil.Clamp(mathutil.Remap(y, 0, q.height, 1, -1), -1, 1)
	return int(math.Round(nx * q.maxVal)), int(math.Round(ny * q.maxVal)), true
}

// appendFrame appends interleaved L/R samples for every finite point.
func (q quantizer) appendFrame(dst []int, xs, ys []float64) []int {
	for i, x := range xs {
		l, r, ok := q.sample(x, ys[i])
		if !ok {
			continue
		}
		dst = append(dst, l, r)
	}
	return dst
}
