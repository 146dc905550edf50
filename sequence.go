package quiverbloom

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SequenceOptions configures GenerateSequence and ForEachFrame.
type SequenceOptions struct {
	// Points is the number of points per frame.
	// Set to 0 to use the algorithm's recommended count.
	Points int

	// Workers bounds the number of frames generated concurrently.
	// Set to 0 to use runtime.GOMAXPROCS(0).
	Workers int

	// Allocator supplies frame buffers. Nil selects DefaultAllocator().
	Allocator *Allocator
}

// Validate checks the options.
func (o *SequenceOptions) Validate() error {
	if o.Points < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidConfig)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// resolve fills in defaults for a.
func (o SequenceOptions) resolve(a Algorithm) SequenceOptions {
	if o.Points == 0 {
		o.Points = a.Canvas().Points
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Allocator == nil {
		o.Allocator = defaultAllocator
	}
	return o
}

// LoopTimes returns steps evenly spaced times covering one loop: k/steps for
// k in [0, steps). Zero or negative steps return nil.
func LoopTimes(steps int) []float64 {
	if steps <= 0 {
		return nil
	}

	times := make([]float64, steps)
	for k := range times {
		times[k] = float64(k) / float64(steps)
	}
	return times
}

// GenerateSequence generates one frame per entry of times, concurrently, and
// returns them in the same order. The caller owns the frames and must Close
// them. On error or cancellation every frame already created is closed.
//
// Each frame holds its own buffers, so memory grows with len(times); use
// ForEachFrame to stream long sequences.
func GenerateSequence(ctx context.Context, a Algorithm, times []float64, opts SequenceOptions) ([]*Frame, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.resolve(a)

	frames := make([]*Frame, len(times))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, t := range times {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := opts.Allocator.NewFrame(a, opts.Points)
			if err != nil {
				return err
			}
			f.Generate(t)
			frames[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, f := range frames {
			f.Close()
		}
		return nil, err
	}

	return frames, nil
}

// ForEachFrame generates the frames for times on opts.Workers goroutines and
// calls fn with each one. Every worker reuses a single frame, so fn must not
// retain f after it returns. fn may be called concurrently from different
// workers, in any order; i is the index into times.
//
// The first error returned by fn, or the context's error, stops the remaining
// work and is returned.
func ForEachFrame(ctx context.Context, a Algorithm, times []float64, opts SequenceOptions, fn func(i int, f *Frame) error) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	opts = opts.resolve(a)

	workers := min(opts.Workers, len(times))
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range times {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			f, err := opts.Allocator.NewFrame(a, opts.Points)
			if err != nil {
				return err
			}
			defer f.Close()

			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				f.Generate(times[i])
				if err := fn(i, f); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
