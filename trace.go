package fourier

const (
	// DefaultTraceCapacity is the number of positions a trace keeps.
	DefaultTraceCapacity = 200

	// DefaultTraceSpacing is the distance a position must exceed, measured
	// from the newest entry, to be appended.
	DefaultTraceSpacing = 2.0
)

// TraceBuffer is a bounded FIFO history of reconstructed positions.
// Consecutive entries are always farther apart than the spacing; once full,
// each append evicts the oldest entry.
//
// A TraceBuffer is not safe for concurrent use.
type TraceBuffer struct {
	data    []Complex
	head    int // index of the oldest entry
	size    int
	spacing float64
}

// NewTraceBuffer creates an empty trace holding at most capacity entries.
// A capacity below 1 is raised to 1.
func NewTraceBuffer(capacity int, spacing float64) *TraceBuffer {
	return &TraceBuffer{
		data:    make([]Complex, max(capacity, 1)),
		spacing: spacing,
	}
}

// NewDefaultTraceBuffer creates a trace with DefaultTraceCapacity and
// DefaultTraceSpacing.
func NewDefaultTraceBuffer() *TraceBuffer {
	return NewTraceBuffer(DefaultTraceCapacity, DefaultTraceSpacing)
}

// Push appends p unless it is non-finite or within the spacing of the
// newest entry. It reports whether p was appended.
func (b *TraceBuffer) Push(p Complex) bool {
	if !p.IsFinite() {
		return false
	}
	if last, ok := b.Last(); ok && p.Dist(last) <= b.spacing {
		return false
	}

	tail := (b.head + b.size) % len(b.data)
	b.data[tail] = p
	if b.size < len(b.data) {
		b.size++
	} else {
		b.head = (b.head + 1) % len(b.data)
	}
	return true
}

// Clear removes every entry.
func (b *TraceBuffer) Clear() {
	b.head = 0
	b.size = 0
}

// Len returns the number of entries.
func (b *TraceBuffer) Len() int {
	return b.size
}

// Cap returns the maximum number of entries.
func (b *TraceBuffer) Cap() int {
	return len(b.data)
}

// At returns the i-th entry, oldest first.
func (b *TraceBuffer) At(i int) Complex {
	return b.data[(b.head+i)%len(b.data)]
}

// Last returns the newest entry.
func (b *TraceBuffer) Last() (Complex, bool) {
	if b.size == 0 {
		return Complex{}, false
	}
	return b.At(b.size - 1), true
}

// Points returns the entries in order, oldest to newest.
func (b *TraceBuffer) Points() []Complex {
	out := make([]Complex, b.size)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Fade returns the age weight of the i-th entry, 1 - i/Len: close to 1 for
// the oldest entries and approaching 0 for the newest.
func (b *TraceBuffer) Fade(i int) float64 {
	return FadeWeight(i, b.size)
}

// FadeWeight is the age weight 1 - i/n of entry i in a trace of n entries.
func FadeWeight(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return 1 - float64(i)/float64(n)
}
