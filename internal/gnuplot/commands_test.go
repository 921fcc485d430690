package gnuplot

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
)

func TestRGB(t *testing.T) {
	c := color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}

	assert.Equal(t, "#001f77b4", rgb(c, 1))
	assert.Equal(t, "#ff1f77b4", rgb(c, 0))
	assert.Equal(t, "#7f1f77b4", rgb(c, 0.5))
}

func TestSetupCmdsCarryStyle(t *testing.T) {
	style := chart.DefaultStyle()
	style.Alpha = 0.5

	cmds := setupCmds(style, true)
	joined := strings.Join(cmds, "\n")

	assert.Equal(t, "set terminal unknown", cmds[0])
	assert.Contains(t, joined, `set linetype 1 lc rgb "#7f1f77b4" pointtype 7 pointsize 0.527`)
	assert.Contains(t, joined, `set linetype 2 lc rgb "#00d62728" linewidth 3`)
}

func TestSetupCmdsNoPoints(t *testing.T) {
	joined := strings.Join(setupCmds(chart.DefaultStyle(), false), "\n")
	assert.Contains(t, joined, `set linetype 1 lc rgb "#00d62728" linewidth 3`)
}

func TestSaveCmds(t *testing.T) {
	style := chart.DefaultStyle()
	style.Width = 2 * vg.Inch
	style.Height = 2 * vg.Inch

	cmds, err := saveCmds(style, "out/plot_1000.png")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"set terminal pngcairo size 192,192",
		"set output 'out/plot_1000.png'",
		"replot",
		"set output",
	}, cmds)

	cmds, err = saveCmds(style, "plot.PDF")
	require.NoError(t, err)
	assert.Equal(t, "set terminal pdfcairo size 2in,2in", cmds[0])
}

func TestSaveCmdsUnknownFormat(t *testing.T) {
	_, err := saveCmds(chart.DefaultStyle(), "plot_1000.bmp")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'it''s/plot.png'", quote("it's/plot.png"))
}
