package chart

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrNoSamples = errors.New("chart: no positive error samples")

// NewConvergence plots |error| against the number of points on log-log
// axes. Zero errors cannot be shown on a log axis and are dropped. When
// fit is non-nil it is drawn over the samples and labelled fitLabel.
func NewConvergence(
	errs plotter.XYs,
	fit func(float64) float64,
	fitLabel string,
	style Style,
) (
	*Chart, error,
) {

	if err := style.Validate(); err != nil {
		return nil, err
	}

	var abs plotter.XYs
	for _, e := range errs {
		if e.X > 0 && e.Y != 0 {
			abs = append(abs, plotter.XY{X: e.X, Y: math.Abs(e.Y)})
		}
	}
	if len(abs) == 0 {
		return nil, ErrNoSamples
	}

	p := prepPlot("π estimate error")
	p.X.Label.Text = "sample points"
	p.Y.Label.Text = "|error|"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	samples, err := plotter.NewScatter(abs)
	if err != nil {
		return nil, err
	}
	samples.GlyphStyle.Color = style.ScatterColor
	samples.GlyphStyle.Radius = vg.Points(3)
	samples.Shape = draw.CircleGlyph{}
	p.Add(samples)
	p.Legend.Add("runs", samples)

	c := &Chart{
		Plot:    p,
		Scatter: samples,
		Count:   len(abs),
		style:   style,
	}

	if fit != nil {
		xmin, xmax, _, _ := plotter.XYRange(abs)

		// Sample the fit geometrically so it is smooth on the log axis.
		const n = 100
		var curve plotter.XYs
		for i := 0; i < n; i++ {
			x := xmin * math.Pow(xmax/xmin, float64(i)/(n-1))
			y := fit(x)
			if y > 0 && !math.IsInf(y, 0) {
				curve = append(curve, plotter.XY{X: x, Y: y})
			}
		}
		if len(curve) == 0 {
			return c, nil
		}

		line, err := plotter.NewLine(curve)
		if err != nil {
			return nil, err
		}
		line.Color = style.CircleColor
		line.Width = style.CircleWidth
		p.Add(line)
		p.Legend.Add(fitLabel, line)
		c.Fit = line
	}

	return c, nil
}
