// Package chart draws sample-point scatter charts with a reference unit
// circle using gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const CircleLabel = "unit circle"

var ErrBadStyle = errors.New("chart: invalid style")

// Style holds the fixed drawing parameters of a chart.
type Style struct {
	Width, Height vg.Length

	// Alpha is the opacity of the scatter markers, 0 to 1.
	Alpha float64
	// MarkerArea is the marker area in points², as matplotlib's s.
	MarkerArea float64

	ScatterColor color.RGBA
	CircleColor  color.RGBA
	CircleWidth  vg.Length

	// CircleSegments is the number of line segments approximating the circle.
	CircleSegments int
}

func DefaultStyle() Style {
	return Style{
		Width:          6 * vg.Inch,
		Height:         6 * vg.Inch,
		Alpha:          0.3,
		MarkerArea:     10,
		ScatterColor:   palette(0),
		CircleColor:    palette(1),
		CircleWidth:    vg.Points(1.5),
		CircleSegments: 360,
	}
}

// Validate reports ErrBadStyle when s cannot be drawn.
func (s Style) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: size %vx%v", ErrBadStyle, s.Width, s.Height)
	case s.Alpha < 0 || s.Alpha > 1:
		return fmt.Errorf("%w: alpha %v", ErrBadStyle, s.Alpha)
	case s.MarkerArea <= 0:
		return fmt.Errorf("%w: marker area %v", ErrBadStyle, s.MarkerArea)
	case s.CircleSegments < 3:
		return fmt.Errorf("%w: %d circle segments", ErrBadStyle, s.CircleSegments)
	}
	return nil
}

// Chart is one rendered point set: the scatter layer, the reference circle
// and the plot that holds them.
type Chart struct {
	Plot    *plot.Plot
	Scatter *plotter.Scatter
	Circle  *plotter.Line
	Count   int

	// Fit is the fitted curve of a convergence chart.
	Fit *plotter.Line

	style Style
}

// Title formats the chart title for n points, e.g. "8,000 sample points".
func Title(
	n int,
) string {
	return message.NewPrinter(language.English).Sprintf("%d sample points", n)
}

// New builds the chart for pts.
func New(
	pts plotter.XYer,
	style Style,
) (
	*Chart, error,
) {

	if err := style.Validate(); err != nil {
		return nil, err
	}

	p := prepPlot(Title(pts.Len()))

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = fade(style.ScatterColor, style.Alpha)
	scatter.GlyphStyle.Radius = vg.Points(math.Sqrt(style.MarkerArea) / 2)
	scatter.Shape = draw.CircleGlyph{}

	circle, err := plotter.NewLine(UnitCircle(style.CircleSegments))
	if err != nil {
		return nil, err
	}
	circle.Color = style.CircleColor
	circle.Width = style.CircleWidth

	p.Add(scatter, circle)
	p.Legend.Add(CircleLabel, circle)

	return &Chart{
		Plot:    p,
		Scatter: scatter,
		Circle:  circle,
		Count:   pts.Len(),
		style:   style,
	}, nil
}

// UnitCircle returns a closed polyline of radius 1 centred on the origin.
func UnitCircle(
	segments int,
) plotter.XYs {

	xy := make(plotter.XYs, segments+1)
	for i := range xy {
		θ := 2 * math.Pi * float64(i) / float64(segments)
		xy[i].X = math.Cos(θ)
		xy[i].Y = math.Sin(θ)
	}

	// Close exactly; cos/sin of 2π are off by an ulp.
	xy[segments] = xy[0]

	return xy
}

func prepPlot(
	title string,
) *plot.Plot {

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Variant = "Sans"

	p.X.Label.Text = "x"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"

	p.Y.Label.Text = "y"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.Top = true

	return p
}

func fade(
	c color.RGBA,
	alpha float64,
) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

// Save writes the chart to path. The image format follows the file
// extension (png, jpg, svg, pdf, ...). Nothing is created when the
// format is unknown.
func (c *Chart) Save(
	path string,
) error {

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	wt, err := c.Plot.WriterTo(c.style.Width, c.style.Height, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}

// WriteTo renders the chart as PNG to w.
func (c *Chart) WriteTo(
	w io.Writer,
) (
	int64, error,
) {

	wt, err := c.Plot.WriterTo(c.style.Width, c.style.Height, "png")
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}
