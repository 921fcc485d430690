//go:build gnuplot

package main

import (
	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/gnuplot"
	"github.com/HamletTheHamster/unit-circle-plots/internal/render"
)

func gnuplotBackend(
	style chart.Style,
	debug bool,
) (
	render.Backend, error,
) {
	return gnuplot.Backend{Style: style, Debug: debug}, nil
}
