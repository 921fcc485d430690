//go:build gnuplot

package gnuplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/points"
	"github.com/HamletTheHamster/unit-circle-plots/internal/render"
)

// Backend is a render.Backend drawing with the same Style as the gonum
// charts.
type Backend struct {
	Style chart.Style
	Debug bool
}

func (b Backend) Draw(
	pts points.Set,
) (
	render.Drawing, error,
) {

	if err := b.Style.Validate(); err != nil {
		return nil, err
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	circle := chart.UnitCircle(b.Style.CircleSegments)
	cx := make([]float64, len(circle))
	cy := make([]float64, len(circle))
	for i, p := range circle {
		cx[i], cy[i] = p.X, p.Y
	}

	dimensions := 2
	persist := false
	plot, err := glot.NewPlot(dimensions, persist, b.Debug)
	if err != nil {
		return nil, err
	}

	fail := func(err error) (render.Drawing, error) {
		plot.Close()
		return nil, err
	}

	for _, c := range setupCmds(b.Style, len(pts) > 0) {
		if err := plot.Cmd(c); err != nil {
			return fail(err)
		}
	}
	if err := plot.SetTitle(chart.Title(len(pts))); err != nil {
		return fail(err)
	}
	if err := plot.SetLabels("x", "y"); err != nil {
		return fail(err)
	}

	if len(pts) > 0 {
		if err := plot.AddPointGroup("sample points", "points", [][]float64{xs, ys}); err != nil {
			return fail(err)
		}
	}
	if err := plot.AddPointGroup(chart.CircleLabel, "lines", [][]float64{cx, cy}); err != nil {
		return fail(err)
	}

	return &drawing{plot: plot, style: b.Style}, nil
}

type drawing struct {
	plot  *glot.Plot
	style chart.Style
}

// Save writes the image and stops the gnuplot process. gnuplot reports
// output errors only on its own stderr, so the file is checked afterwards.
func (d *drawing) Save(
	path string,
) error {

	cmds, err := saveCmds(d.style, path)
	if err != nil {
		d.plot.Close()
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		d.plot.Close()
		return err
	}

	for _, c := range cmds {
		if err := d.plot.Cmd(c); err != nil {
			d.plot.Close()
			return err
		}
	}
	if err := d.plot.Close(); err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("gnuplot: no output written: %w", err)
	}
	return nil
}
