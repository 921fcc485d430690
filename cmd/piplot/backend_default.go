//go:build !gnuplot

package main

import (
	"errors"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/render"
)

var errNoGnuplot = errors.New("gnuplot backend not built in; rebuild with -tags gnuplot")

func gnuplotBackend(
	chart.Style,
	bool,
) (
	render.Backend, error,
) {
	return nil, errNoGnuplot
}
