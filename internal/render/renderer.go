// Package render turns point tables into unit-circle scatter charts, one
// image per dataset size.
package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/points"
)

// Drawing is a chart ready to be written to an image file.
type Drawing interface {
	Save(path string) error
}

// Backend draws a point set.
type Backend interface {
	Draw(pts points.Set) (Drawing, error)
}

// Plotter draws with gonum/plot.
type Plotter struct {
	Style chart.Style
}

func (p Plotter) Draw(
	pts points.Set,
) (
	Drawing, error,
) {

	c, err := chart.New(pts, p.Style)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Result describes one rendered dataset.
type Result struct {
	Size   int
	Points int
	Input  string
	Output string
}

// Renderer loads the table for a dataset size, draws it and writes the
// image. It holds no state between calls.
type Renderer struct {
	input   Naming
	output  Naming
	backend Backend
	strict  bool
	logger  *zap.Logger
}

type Option func(*Renderer)

func WithInput(n Naming) Option {
	return func(r *Renderer) { r.input = n }
}

func WithOutput(n Naming) Option {
	return func(r *Renderer) { r.output = n }
}

func WithBackend(b Backend) Option {
	return func(r *Renderer) { r.backend = b }
}

// WithStrict makes a row count that differs from the dataset size a
// LoadError instead of a warning.
func WithStrict(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		input:   DefaultInput,
		output:  DefaultOutput,
		backend: Plotter{Style: chart.DefaultStyle()},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the chart for one dataset size. The output file is named
// after the number of rows actually loaded.
func (r *Renderer) Render(
	size int,
) (
	Result, error,
) {

	in := r.input.Path(size)

	pts, err := points.Load(in)
	if err != nil {
		return Result{}, &LoadError{Size: size, Path: in, Err: err}
	}

	if len(pts) != size {
		if r.strict {
			return Result{}, &LoadError{
				Size: size,
				Path: in,
				Err:  fmt.Errorf("%w: %d rows", ErrSizeMismatch, len(pts)),
			}
		}
		r.logger.Warn("row count differs from dataset size",
			zap.Int("size", size),
			zap.Int("rows", len(pts)),
			zap.String("input", in),
		)
	}

	d, err := r.backend.Draw(pts)
	if err != nil {
		return Result{}, &RenderError{Size: size, Err: err}
	}

	out := r.output.Path(len(pts))
	if err := d.Save(out); err != nil {
		return Result{}, &WriteError{Size: size, Path: out, Err: err}
	}

	r.logger.Info("rendered",
		zap.Int("size", size),
		zap.Int("points", len(pts)),
		zap.String("output", out),
	)

	return Result{Size: size, Points: len(pts), Input: in, Output: out}, nil
}
