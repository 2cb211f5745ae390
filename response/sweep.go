package response

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Point is one evaluated grid sample.
type Point struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Value     float64 `json:"value" yaml:"value"`
}

// SweepOption configures Sweep.
type SweepOption func(*sweepOptions)

type sweepOptions struct {
	workers int
}

// WithWorkers bounds the number of concurrent evaluations. Panics if n < 1.
func WithWorkers(n int) SweepOption {
	if n < 1 {
		panic(fmt.Sprintf("response: WithWorkers(%d): must be >= 1", n))
	}

	return func(o *sweepOptions) { o.workers = n }
}

// Sweep evaluates r at every frequency of freqs and returns the points in
// input order. The first evaluation error or a cancelled ctx stops the
// sweep; the returned error names the failing frequency.
func Sweep(ctx context.Context, r Response, freqs []float64, opts ...SweepOption) ([]Point, error) {
	o := sweepOptions{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	out := make([]Point, len(freqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, f := range freqs {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := r.Evaluate(f)
			if err != nil {
				return fmt.Errorf("%s at %v Hz: %w", r.Kind(), f, err)
			}
			out[i] = Point{Frequency: f, Value: v}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
