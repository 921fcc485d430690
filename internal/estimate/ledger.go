package estimate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Default ledger file names.
const (
	ErrorsFile  = "errors.csv"
	TimingsFile = "timings.csv"
)

var (
	errorsHeader  = []string{"num_points", "error"}
	timingsHeader = []string{"num_points", "main_seconds"}
)

// Sample is one row of the errors ledger.
type Sample struct {
	Points int
	Error  float64
}

// AppendError appends the error of r to the errors ledger at path.
func AppendError(
	path string,
	r Result,
) error {
	return appendRow(path, errorsHeader, []string{
		strconv.Itoa(r.Points),
		strconv.FormatFloat(r.Error, 'g', 15, 64),
	})
}

// AppendTiming appends the elapsed time of r, in seconds, to the timings
// ledger at path.
func AppendTiming(
	path string,
	r Result,
) error {
	return appendRow(path, timingsHeader, []string{
		strconv.Itoa(r.Points),
		strconv.FormatFloat(r.Elapsed.Seconds(), 'g', 15, 64),
	})
}

// appendRow appends row to the CSV file at path, creating it with header
// first when it is new or empty.
func appendRow(
	path string,
	header, row []string,
) error {

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		w.Write(header)
	}
	w.Write(row)
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadErrors loads the errors ledger at path.
func ReadErrors(
	path string,
) (
	[]Sample, error,
) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(errorsHeader)

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var samples []Sample
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		n, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("estimate: %s: num_points %q: %w", path, row[0], err)
		}
		e, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("estimate: %s: error %q: %w", path, row[1], err)
		}

		samples = append(samples, Sample{Points: n, Error: e})
	}

	return samples, nil
}
