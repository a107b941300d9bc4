package convert

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/machine"
)

// BatchError reports the first failed input of a batch.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("input %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Batch converts independent inputs on up to workers goroutines. Each
// worker owns its machine encoder. Outputs are in input order. The first
// failure cancels the rest and is returned as a *BatchError.
func (c *Converter) Batch(ctx context.Context, inputs [][]byte, from, to format.Format, workers int) ([][]byte, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(inputs))
	out := make([][]byte, len(inputs))
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range inputs {
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
			enc := machine.NewEncoder(c.MachineOpts...)
			for i := range jobs {
				res, err := c.convert(inputs[i], from, to, enc)
				if err != nil {
					return &BatchError{Index: i, Err: err}
				}
				out[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Batch runs Converter.Batch with default settings.
func Batch(ctx context.Context, inputs [][]byte, from, to format.Format, workers int) ([][]byte, error) {
	return std.Batch(ctx, inputs, from, to, workers)
}
