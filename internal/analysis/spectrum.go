package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |c_k| of the mean-removed sequence for
// k = 0 .. len(data)/2.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}
	coeff := fourier.NewFFT(len(data)).Coefficients(nil, centred)
	ps := make([]float64, len(coeff))
	for i, c := range coeff {
		ps[i] = cmplx.Abs(c)
	}
	return ps
}

// DominantPeriod estimates the period of y sampled every h from the
// strongest non-zero frequency. It returns 0 for series that do not
// oscillate or are not finite.
func DominantPeriod(y []float64, h float64) float64 {
	if len(y) < 4 || !(h > 0) {
		return 0
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
	}
	ps := PowerSpectrum(y)
	best, k := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, k = ps[i], i
		}
	}
	if k == 0 || best < 1e-12 {
		return 0
	}
	return h * float64(len(y)) / float64(k)
}
