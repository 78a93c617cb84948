package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooFewSamples = errors.New("analysis: need at least two samples")
	ErrExact         = errors.New("analysis: zero error, order undefined")
	ErrNoReference   = errors.New("analysis: no exact solution or reference")
)

// MaxError returns max_i |traj[i] - exact(t[i])| over the common length.
// NaN in the trajectory yields NaN.
func MaxError(traj, t []float64, exact func(float64) float64) float64 {
	n := min(len(traj), len(t))
	if n == 0 {
		return 0
	}
	diff := make([]float64, n)
	for i := range diff {
		diff[i] = traj[i] - exact(t[i])
		if math.IsNaN(diff[i]) {
			return math.NaN()
		}
	}
	return floats.Norm(diff, math.Inf(1))
}

// MaxDeviation is MaxError against a sampled reference instead of a
// closed form: ref[i*stride] is compared with traj[i].
func MaxDeviation(traj, ref []float64, stride int) float64 {
	stride = max(stride, 1)
	n := min(len(traj), (len(ref)+stride-1)/stride)
	if n == 0 {
		return 0
	}
	diff := make([]float64, n)
	for i := range diff {
		diff[i] = traj[i] - ref[i*stride]
		if math.IsNaN(diff[i]) {
			return math.NaN()
		}
	}
	return floats.Norm(diff, math.Inf(1))
}
