package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrorStats summarises how far a reconstruction lies from the samples it
// was computed from. Distances are measured at the sample angles
// θ_k = 2πk/N.
type ErrorStats struct {
	// RMS is the root mean square distance. For frequency-order
	// truncation it never grows as more terms are kept.
	RMS float64

	// Mean is the mean distance.
	Mean float64

	// Max is the largest distance.
	Max float64
}

// ReconstructionDistances returns |path[k] - Position(coef, θ_k)| for
// every sample.
func ReconstructionDistances(path DrawPath, coef *Coefficients) []float64 {
	n := path.Len()
	out := make([]float64, n)
	for k := range n {
		theta := 2 * math.Pi * float64(k) / float64(n)
		out[k] = path.At(k).Dist(Position(coef, theta))
	}
	return out
}

// MeasureReconstruction computes ErrorStats for coef against path.
// An empty path yields zero stats.
func MeasureReconstruction(path DrawPath, coef *Coefficients) ErrorStats {
	d := ReconstructionDistances(path, coef)
	if len(d) == 0 {
		return ErrorStats{}
	}
	return ErrorStats{
		RMS:  math.Sqrt(floats.Dot(d, d) / float64(len(d))),
		Mean: stat.Mean(d, nil),
		Max:  floats.Max(d),
	}
}
