package fourier

import "slices"

// DefaultMinDistance is the spacing a new pointer sample must exceed,
// measured from the last accepted sample, to be recorded.
const DefaultMinDistance = 7.5

// DrawPath is an immutable closed polyline captured from pointer input.
// The last point implicitly connects back to the first.
type DrawPath struct {
	points []Complex
}

// NewDrawPath creates a DrawPath from a copy of points.
// No deduplication is applied; use a Recorder for raw pointer input.
func NewDrawPath(points ...Complex) DrawPath {
	return DrawPath{points: slices.Clone(points)}
}

// Len returns the number of samples.
func (p DrawPath) Len() int {
	return len(p.points)
}

// At returns the i-th sample.
func (p DrawPath) At(i int) Complex {
	return p.points[i]
}

// Points returns a copy of the samples.
func (p DrawPath) Points() []Complex {
	return slices.Clone(p.points)
}

// Centroid returns the mean of the samples, or zero for an empty path.
func (p DrawPath) Centroid() Complex {
	if len(p.points) == 0 {
		return Complex{}
	}
	var sum Complex
	for _, pt := range p.points {
		sum = sum.Add(pt)
	}
	return sum.Scale(1 / float64(len(p.points)))
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithMinDistance overrides DefaultMinDistance. Non-positive values accept
// every distinct sample.
func WithMinDistance(d float64) RecorderOption {
	return func(r *Recorder) {
		r.minDist = d
	}
}

// Recorder accumulates a deduplicated polyline from pointer samples.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	points    []Complex
	minDist   float64
	recording bool
}

// NewRecorder creates an idle Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		points:  make([]Complex, 0, 256),
		minDist: DefaultMinDistance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin discards the current path and starts a new recording.
func (r *Recorder) Begin() {
	// A finished DrawPath may still share the old backing array.
	r.points = make([]Complex, 0, max(cap(r.points), 16))
	r.recording = true
}

// Add appends p when the recorder is recording and p lies farther than the
// minimum distance from the last accepted sample. It reports whether p was
// accepted.
func (r *Recorder) Add(p Complex) bool {
	if !r.recording {
		return false
	}
	if !p.IsFinite() {
		Logger().Debug("fourier: rejected non-finite sample", "re", p.Re, "im", p.Im)
		return false
	}
	if n := len(r.points); n > 0 && p.Dist(r.points[n-1]) <= r.minDist {
		return false
	}
	r.points = append(r.points, p)
	return true
}

// Finish stops recording and returns the captured path, which may be
// empty or hold a single sample. Later calls to Add are ignored until the
// next Begin.
func (r *Recorder) Finish() DrawPath {
	r.recording = false
	return DrawPath{points: r.points[:len(r.points):len(r.points)]}
}

// Recording reports whether samples are being accepted.
func (r *Recorder) Recording() bool {
	return r.recording
}

// Len returns the number of accepted samples.
func (r *Recorder) Len() int {
	return len(r.points)
}

// Points returns a copy of the accepted samples.
func (r *Recorder) Points() []Complex {
	return slices.Clone(r.points)
}
