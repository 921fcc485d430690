// Package estimate estimates π from a set of sample points by counting the
// points that fall inside the unit circle, and keeps CSV ledgers of the
// errors and timings of successive runs.
package estimate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HamletTheHamster/unit-circle-plots/internal/points"
)

const MaxWorkers = 8

var (
	ErrNoPoints    = errors.New("estimate: no points")
	ErrWorkers     = fmt.Errorf("estimate: workers must be between 1 and %d", MaxWorkers)
	ErrIndivisible = errors.New("estimate: number of points must be divisible by workers")
)

// Result is the outcome of one estimate.
type Result struct {
	Points  int
	Inside  int
	Pi      float64
	Error   float64
	Elapsed time.Duration
}

// CheckWorkers validates a worker count against a number of points.
func CheckWorkers(
	numPoints, workers int,
) error {

	switch {
	case numPoints <= 0:
		return ErrNoPoints
	case workers <= 0 || workers > MaxWorkers:
		return fmt.Errorf("%w, got %d", ErrWorkers, workers)
	case numPoints%workers != 0:
		return fmt.Errorf("%w (%d points, %d workers)", ErrIndivisible, numPoints, workers)
	}
	return nil
}

// CountInCircle counts the points with x²+y² ≤ 1, splitting the set into
// equal contiguous chunks, one per worker.
func CountInCircle(
	ctx context.Context,
	pts points.Set,
	workers int,
) (
	int, error,
) {

	if err := CheckWorkers(len(pts), workers); err != nil {
		return 0, err
	}

	var inside atomic.Int64
	perWorker := len(pts) / workers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		chunk := pts[i*perWorker : (i+1)*perWorker]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inside.Add(int64(countInside(chunk)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(inside.Load()), nil
}

func countInside(
	pts points.Set,
) int {

	n := 0
	for _, p := range pts {
		if math.Sqrt(p.X*p.X+p.Y*p.Y) <= 1 {
			n++
		}
	}
	return n
}

// Estimate computes π ≈ 4·inside/total over pts.
func Estimate(
	ctx context.Context,
	pts points.Set,
	workers int,
) (
	Result, error,
) {

	start := time.Now()

	inside, err := CountInCircle(ctx, pts, workers)
	if err != nil {
		return Result{}, err
	}

	pi := 4 * float64(inside) / float64(len(pts))

	return Result{
		Points:  len(pts),
		Inside:  inside,
		Pi:      pi,
		Error:   pi - math.Pi,
		Elapsed: time.Since(start),
	}, nil
}
