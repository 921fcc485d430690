package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitPowerLawExact(t *testing.T) {
	want := PowerLaw{A: 1.6, B: 0.5}

	ns := []float64{1000, 2000, 4000, 8000, 16000}
	errs := make([]float64, len(ns))
	for i, n := range ns {
		errs[i] = want.At(n)
		if i%2 == 1 {
			errs[i] = -errs[i]
		}
	}

	got, err := FitPowerLaw(ns, errs)
	require.NoError(t, err)
	assert.InDelta(t, want.A, got.A, 1e-4)
	assert.InDelta(t, want.B, got.B, 1e-5)
}

func TestFitPowerLawSkipsZeros(t *testing.T) {
	ns := []float64{0, 100, 400, 1600}
	errs := []float64{1, 0.3, 0, 0.075}

	got, err := FitPowerLaw(ns, errs)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.B, 1e-5)
	assert.InDelta(t, 3, got.A, 1e-3)
}

func TestFitPowerLawTooFew(t *testing.T) {
	_, err := FitPowerLaw([]float64{1000}, []float64{0.01})
	assert.True(t, errors.Is(err, ErrTooFewSamples))

	_, err = FitPowerLaw([]float64{1000, 2000}, []float64{0, 0})
	assert.True(t, errors.Is(err, ErrTooFewSamples))
}

func TestFitPowerLawLengthMismatch(t *testing.T) {
	_, err := FitPowerLaw([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestPowerLawAt(t *testing.T) {
	p := PowerLaw{A: 2, B: 0.5}
	assert.InDelta(t, 0.02, p.At(10000), 1e-12)
	assert.False(t, math.IsNaN(p.At(1)))
	assert.Equal(t, "2·N^-0.500", p.String())
}
