// Package points reads, writes and generates sets of 2D sample points
// stored as CSV tables with an x and a y column.
package points

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Column names looked up in the header row.
const (
	XColumn = "x"
	YColumn = "y"
)

// Significant digits used when writing coordinates.
const Precision = 15

var (
	ErrNoHeader      = errors.New("points: missing header row")
	ErrMissingColumn = errors.New("points: missing column")
	ErrNotFinite     = errors.New("points: coordinate is not finite")
)

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// Set is an ordered sequence of points. It satisfies plotter.XYer so it
// can be handed to gonum/plot directly.
type Set []Point

func (s Set) Len() int {
	return len(s)
}

func (s Set) XY(i int) (float64, float64) {
	return s[i].X, s[i].Y
}

// Load opens csvName and reads the point set it holds.
func Load(
	csvName string,
) (
	Set, error,
) {

	f, err := os.Open(csvName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses a CSV table whose header names an x and a y column. Other
// columns are ignored and column order does not matter.
func Read(
	r io.Reader,
) (
	Set, error,
) {

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	head, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	xCol, yCol, err := header(head)
	if err != nil {
		return nil, err
	}

	var set Set
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)

		x, err := parseCoord(row[xCol])
		if err != nil {
			return nil, fmt.Errorf("points: line %d column %q: %w", line, XColumn, err)
		}
		y, err := parseCoord(row[yCol])
		if err != nil {
			return nil, fmt.Errorf("points: line %d column %q: %w", line, YColumn, err)
		}

		set = append(set, Point{X: x, Y: y})
	}

	return set, nil
}

func header(
	row []string,
) (
	int, int, error,
) {

	xCol, yCol := -1, -1
	for i, name := range row {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case XColumn:
			if xCol < 0 {
				xCol = i
			}
		case YColumn:
			if yCol < 0 {
				yCol = i
			}
		}
	}

	if xCol < 0 {
		return 0, 0, fmt.Errorf("%w %q", ErrMissingColumn, XColumn)
	}
	if yCol < 0 {
		return 0, 0, fmt.Errorf("%w %q", ErrMissingColumn, YColumn)
	}

	return xCol, yCol, nil
}

func parseCoord(
	s string,
) (
	float64, error,
) {

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, " ", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}
	return v, nil
}

// Save writes set to csvName, replacing any existing file.
func Save(
	csvName string,
	set Set,
) error {

	f, err := os.Create(csvName)
	if err != nil {
		return err
	}

	if err := Write(f, set); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write emits an "x,y" header followed by one row per point.
func Write(
	w io.Writer,
	set Set,
) error {

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{XColumn, YColumn}); err != nil {
		return err
	}

	row := make([]string, 2)
	for _, p := range set {
		row[0] = strconv.FormatFloat(p.X, 'g', Precision, 64)
		row[1] = strconv.FormatFloat(p.Y, 'g', Precision, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Generate draws n points uniformly from the square [-1, 1) x [-1, 1).
// The same seed always yields the same set.
func Generate(
	n int,
	seed uint64,
) Set {

	uniform := distuv.Uniform{
		Min: -1,
		Max: 1,
		Src: rand.NewPCG(seed, seed),
	}

	set := make(Set, n)
	for i := range set {
		set[i].X = uniform.Rand()
		set[i].Y = uniform.Rand()
	}

	return set
}
