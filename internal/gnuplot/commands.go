// Package gnuplot draws unit-circle charts through a gnuplot process.
//
// The backend is only compiled with the gnuplot build tag: the glot package
// it drives panics at init when the gnuplot binary is not on PATH.
package gnuplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
)

// DPI is the resolution of raster output.
const DPI = 96

// pointDiameter is the width in points of a pointsize 1 filled circle
// (pointtype 7) in the cairo terminals.
const pointDiameter = 6.0

// lineWidthUnit is the width in points of linewidth 1 in the cairo terminals.
const lineWidthUnit = 0.5

var ErrFormat = errors.New("gnuplot: unsupported output format")

// rgb formats c as a gnuplot "#AARRGGBB" color. gnuplot's leading byte is
// transparency, not opacity.
func rgb(
	c color.RGBA,
	alpha float64,
) string {

	t := 255 - uint8(math.Round(alpha*255))
	return fmt.Sprintf("#%02x%02x%02x%02x", t, c.R, c.G, c.B)
}

// setupCmds must be sent before any data is plotted. Series take linetypes
// in the order they are added, so the scatter is linetype 1 unless there
// are no points to draw.
func setupCmds(
	style chart.Style,
	scatter bool,
) []string {

	circleType := 2
	if !scatter {
		circleType = 1
	}

	return []string{
		"set terminal unknown",
		"set size square",
		"set key top right",
		fmt.Sprintf(
			`set linetype 1 lc rgb "%s" pointtype 7 pointsize %.4g`,
			rgb(style.ScatterColor, style.Alpha),
			math.Sqrt(style.MarkerArea)/pointDiameter,
		),
		fmt.Sprintf(
			`set linetype %d lc rgb "%s" linewidth %.4g`,
			circleType,
			rgb(style.CircleColor, 1),
			style.CircleWidth.Points()/lineWidthUnit,
		),
	}
}

// saveCmds writes the current plot to path and closes the output. The
// terminal follows the file extension.
func saveCmds(
	style chart.Style,
	path string,
) (
	[]string, error,
) {

	var terminal string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		terminal = fmt.Sprintf("set terminal pngcairo size %d,%d",
			dots(style.Width), dots(style.Height))
	case ".svg":
		terminal = fmt.Sprintf("set terminal svg size %d,%d",
			dots(style.Width), dots(style.Height))
	case ".pdf":
		terminal = fmt.Sprintf("set terminal pdfcairo size %.4gin,%.4gin",
			float64(style.Width/vg.Inch), float64(style.Height/vg.Inch))
	default:
		return nil, fmt.Errorf("%w %q", ErrFormat, ext)
	}

	return []string{
		terminal,
		"set output " + quote(path),
		"replot",
		"set output",
	}, nil
}

func dots(
	l vg.Length,
) int {
	return int(math.Round(l.Dots(DPI)))
}

// quote makes s a single-quoted gnuplot string.
func quote(
	s string,
) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
