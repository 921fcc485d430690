package render

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunOptions controls how RenderAll walks a list of sizes.
type RunOptions struct {
	// KeepGoing renders every size even after one fails; all failures are
	// joined into the returned error. Otherwise the first failure stops the
	// run.
	KeepGoing bool

	// Parallel is the number of sizes rendered at once. Zero or one renders
	// them in order, one after another.
	Parallel int
}

// RenderAll renders each size in turn and returns the results of the sizes
// that succeeded, in the order given.
func (r *Renderer) RenderAll(
	ctx context.Context,
	sizes []int,
	opts RunOptions,
) (
	[]Result, error,
) {

	if opts.Parallel > 1 {
		return r.renderParallel(ctx, sizes, opts)
	}

	var results []Result
	var errs []error

	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(append(errs, err)...)
		}

		res, err := r.Render(size)
		if err != nil {
			r.logger.Error("render failed", zap.Int("size", size), zap.Error(err))
			if !opts.KeepGoing {
				return results, err
			}
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func (r *Renderer) renderParallel(
	ctx context.Context,
	sizes []int,
	opts RunOptions,
) (
	[]Result, error,
) {

	results := make([]Result, len(sizes))
	errs := make([]error, len(sizes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)

	for i, size := range sizes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			res, err := r.Render(size)
			if err != nil {
				r.logger.Error("render failed", zap.Int("size", size), zap.Error(err))
				errs[i] = err
				if opts.KeepGoing {
					return nil
				}
				return err
			}
			results[i] = res
			return nil
		})
	}

	first := g.Wait()

	var done []Result
	for i := range sizes {
		if errs[i] == nil {
			done = append(done, results[i])
		}
	}

	if first != nil {
		return done, first
	}
	return done, errors.Join(errs...)
}
