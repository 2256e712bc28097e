package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"saltcrackr/source"
	"saltcrackr/target"
)

// RunBatch runs every target against src, re-opened from the start for each one. Results keep
// the order of targets and there is always one per target. With more than one worker the
// targets are searched concurrently, each search still walking src in order.
func (e *Engine) RunBatch(ctx context.Context, targets []target.Descriptor, src source.Source) ([]Result, error) {
	var errs []error
	for _, t := range targets {
		if err := e.check(t); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	results := make([]Result, len(targets))

	if e.workers == 1 || len(targets) < 2 {
		for i, t := range targets {
			results[i] = e.run(ctx, t, src)
		}
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			results[i] = e.run(ctx, t, src)
			return nil
		})
	}

	// Workers never return errors, every outcome lives in its Result
	_ = g.Wait()

	return results, nil
}
