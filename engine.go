package fourier

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/fourier/internal/parallel"
	"github.com/gogpu/fourier/internal/transform"
)

const (
	// bandSize is the number of frequency pairs per parallel work item.
	bandSize = 32

	// minParallelWork is the N·M product below which a direct transform
	// always runs serially.
	minParallelWork = 1 << 14
)

// ComputeCoefficients derives a truncated Fourier series from a closed
// path. See ComputeCoefficientsContext.
func ComputeCoefficients(path DrawPath, accuracy float64, opts ...Option) (*Coefficients, error) {
	return ComputeCoefficientsContext(context.Background(), path, accuracy, opts...)
}

// ComputeCoefficientsContext derives a truncated Fourier series from a
// closed path.
//
// The N samples are treated as one period sampled at θ_k = 2πk/N and
//
//	c_n = (1/N) Σ_k path[k] e^{-i n θ_k}
//
// is computed for n in [-M, M], where M = TermCount(accuracy, ⌊(N-1)/2⌋).
// Accuracy outside [0, 1] is clamped.
//
// It returns an error wrapping ErrInvalidInput when the path is empty or
// holds a NaN or infinite sample, and the context error when ctx is done
// before the computation finishes.
func ComputeCoefficientsContext(ctx context.Context, path DrawPath, accuracy float64, opts ...Option) (*Coefficients, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if path.Len() == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	for i, p := range path.points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: sample %d is not finite", ErrInvalidInput, i)
		}
	}

	samples := resample(path.points, o.interpolation)
	maxM := (len(samples) - 1) / 2
	if o.maxTerms > 0 {
		maxM = min(maxM, o.maxTerms)
	}
	m := TermCount(accuracy, maxM)

	// Magnitude ranking has to look at every candidate pair.
	span := m
	if o.ranking == RankByMagnitude {
		span = maxM
	}

	coefficient, err := kernelFor(ctx, samples, o.transform)
	if err != nil {
		return nil, err
	}

	coef := &Coefficients{
		Zero:     FromC128(coefficient(0)),
		Positive: make([]Complex, span),
		Negative: make([]Complex, span),
	}
	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			coef.Positive[i] = FromC128(coefficient(i + 1))
			coef.Negative[i] = FromC128(coefficient(-(i + 1)))
		}
	}

	if err := fillTerms(ctx, o, len(samples), span, fill); err != nil {
		return nil, err
	}

	if o.ranking == RankByMagnitude {
		keepStrongest(coef, m)
	}

	Logger().Debug("fourier: coefficients computed",
		"samples", len(samples),
		"terms", coef.Terms(),
		"max_terms", maxM,
		"transform", o.transform.String(),
		"ranking", o.ranking.String())
	return coef, nil
}

// TermCount maps an accuracy control onto a number of frequency pairs:
// 0 when maxTerms ≤ 0, otherwise max(1, round(accuracy·maxTerms)) with
// accuracy clamped to [0, 1]. NaN counts as 0.
func TermCount(accuracy float64, maxTerms int) int {
	if maxTerms <= 0 {
		return 0
	}
	return max(1, int(math.Round(ClampAccuracy(accuracy)*float64(maxTerms))))
}

// ClampAccuracy restricts accuracy to [0, 1], mapping NaN to 0.
func ClampAccuracy(accuracy float64) float64 {
	if math.IsNaN(accuracy) {
		return 0
	}
	return math.Min(1, math.Max(0, accuracy))
}

// kernelFor returns a function producing c_n for the selected transform.
func kernelFor(ctx context.Context, samples []complex128, t Transform) (func(int) complex128, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fourier: coefficient computation: %w", err)
	}
	if t == TransformFFT {
		return transform.FFT(samples).Coefficient, nil
	}
	return transform.NewKernel(samples).Coefficient, nil
}

// fillTerms calls fill over [0, span), serially with a cancellation check
// per frequency or in bands on a worker pool.
func fillTerms(ctx context.Context, o engineOptions, n, span int, fill func(lo, hi int)) error {
	if o.transform == TransformDirect && o.workers > 1 && n*span >= minParallelWork {
		pool := parallel.NewPool(o.workers)
		defer pool.Close()

		bands := (span + bandSize - 1) / bandSize
		err := pool.Range(ctx, bands, func(b int) {
			fill(b*bandSize, min((b+1)*bandSize, span))
		})
		if err != nil {
			return fmt.Errorf("fourier: coefficient computation: %w", err)
		}
		return nil
	}

	for i := range span {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("fourier: coefficient computation: %w", err)
		}
		fill(i, i+1)
	}
	return nil
}

// resample converts points to complex128, optionally inserting k-1
// evenly spaced samples along each closed segment.
func resample(points []Complex, k int) []complex128 {
	if k <= 1 || len(points) < 2 {
		out := make([]complex128, len(points))
		for i, p := range points {
			out[i] = p.C128()
		}
		return out
	}

	out := make([]complex128, 0, len(points)*k)
	for i, a := range points {
		b := points[(i+1)%len(points)]
		for j := range k {
			out = append(out, a.Lerp(b, float64(j)/float64(k)).C128())
		}
	}
	return out
}

// keepStrongest zeroes every pair except the m strongest and trims
// trailing zero pairs.
func keepStrongest(coef *Coefficients, m int) {
	order := make([]int, len(coef.Positive))
	for i := range order {
		order[i] = i
	}
	strength := func(i int) float64 {
		return coef.Positive[i].Abs() + coef.Negative[i].Abs()
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(strength(b), strength(a))
	})

	keep := make([]bool, len(order))
	for _, i := range order[:min(m, len(order))] {
		keep[i] = true
	}

	last := -1
	for i, k := range keep {
		if k {
			last = i
			continue
		}
		coef.Positive[i] = Complex{}
		coef.Negative[i] = Complex{}
	}
	coef.Positive = coef.Positive[:last+1]
	coef.Negative = coef.Negative[:last+1]
}
