// Package fit fits the error of Monte Carlo π estimates to a power law
// in the number of samples.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
)

var ErrTooFewSamples = errors.New("fit: need at least two usable samples")

// PowerLaw is |error| = A·N^(-B).
type PowerLaw struct {
	A, B float64
}

func (p PowerLaw) At(
	n float64,
) float64 {
	return p.A * math.Pow(n, -p.B)
}

func (p PowerLaw) String() string {
	return fmt.Sprintf("%.3g·N^-%.3f", p.A, p.B)
}

// FitPowerLaw fits |errs[i]| = A·ns[i]^(-B) by least squares in log space.
// Samples with a non-positive N or a zero error are skipped. The fit
// starts from the Monte Carlo expectation B = 1/2.
func FitPowerLaw(
	ns, errs []float64,
) (
	PowerLaw, error,
) {

	if len(ns) != len(errs) {
		return PowerLaw{}, fmt.Errorf("fit: %d sample sizes but %d errors", len(ns), len(errs))
	}

	var logN, logE []float64
	for i := range ns {
		if ns[i] <= 0 || errs[i] == 0 {
			continue
		}
		logN = append(logN, math.Log(ns[i]))
		logE = append(logE, math.Log(math.Abs(errs[i])))
	}
	if len(logN) < 2 {
		return PowerLaw{}, ErrTooFewSamples
	}

	// params: ln A, B
	resFunc := func(dst, params []float64) {
		for i := range logN {
			dst[i] = params[0] - params[1]*logN[i] - logE[i]
		}
	}

	nj := &lm.NumJac{Func: resFunc}

	problem := lm.LMProblem{
		Dim:        2,
		Size:       len(logN),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: []float64{0, 0.5},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	settings := &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16}

	result, err := lm.LM(problem, settings)
	if err != nil {
		return PowerLaw{}, fmt.Errorf("fit: optimization failed: %w", err)
	}

	return PowerLaw{A: math.Exp(result.X[0]), B: result.X[1]}, nil
}
