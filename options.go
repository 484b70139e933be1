package fourier

// Transform selects the kernel used to compute coefficients.
type Transform int

const (
	// TransformDirect evaluates each retained frequency directly, O(N·M).
	TransformDirect Transform = iota

	// TransformFFT computes the whole spectrum with an FFT, O(N log N),
	// and reads the retained frequencies out of it.
	TransformFFT
)

// String returns the flag name of the transform.
func (t Transform) String() string {
	switch t {
	case TransformDirect:
		return "direct"
	case TransformFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// Ranking selects which frequency pairs survive truncation.
type Ranking int

const (
	// RankByFrequency keeps the M lowest frequency pairs.
	RankByFrequency Ranking = iota

	// RankByMagnitude keeps the M pairs with the largest combined
	// magnitude |c_n| + |c_-n|. Dropped pairs inside the retained range
	// are zeroed so Positive[i-1] still weighs frequency i. This changes
	// how the animation looks compared to frequency order.
	RankByMagnitude
)

// String returns the flag name of the ranking.
func (r Ranking) String() string {
	switch r {
	case RankByFrequency:
		return "frequency"
	case RankByMagnitude:
		return "magnitude"
	default:
		return "unknown"
	}
}

// Option configures a coefficient computation.
//
// Example:
//
//	// Default: direct transform, frequency-order truncation
//	coef, err := fourier.ComputeCoefficients(path, 0.8)
//
//	// Resample each segment 20 times and use an FFT
//	coef, err := fourier.ComputeCoefficients(path, 0.8,
//	    fourier.WithInterpolation(20),
//	    fourier.WithTransform(fourier.TransformFFT))
type Option func(*engineOptions)

// engineOptions holds optional configuration for ComputeCoefficients.
type engineOptions struct {
	transform     Transform
	ranking       Ranking
	interpolation int
	maxTerms      int
	workers       int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		transform:     TransformDirect,
		ranking:       RankByFrequency,
		interpolation: 1,
	}
}

// WithTransform selects the kernel. Both kernels produce the same
// coefficients within floating-point tolerance.
func WithTransform(t Transform) Option {
	return func(o *engineOptions) {
		o.transform = t
	}
}

// WithRanking selects the truncation policy.
func WithRanking(r Ranking) Option {
	return func(o *engineOptions) {
		o.ranking = r
	}
}

// WithInterpolation resamples every segment of the closed path, including
// the one from the last point back to the first, into k evenly spaced
// samples before transforming. k ≤ 1 disables resampling. Paths with fewer
// than two points are never resampled.
func WithInterpolation(k int) Option {
	return func(o *engineOptions) {
		o.interpolation = max(k, 1)
	}
}

// WithMaxTerms caps the number of frequency pairs the accuracy control can
// reach. m ≤ 0 removes the cap.
func WithMaxTerms(m int) Option {
	return func(o *engineOptions) {
		o.maxTerms = m
	}
}

// WithWorkers splits large direct transforms into frequency bands computed
// by n goroutines. n ≤ 1 computes serially. The result does not depend on n.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}
