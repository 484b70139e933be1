package fourier

// VisibleRadius is the radius a segment must exceed to be worth drawing.
const VisibleRadius = 3.0

// Segment is one rotating vector of the epicycle chain.
type Segment struct {
	// Center is the running sum before this vector is added.
	Center Complex

	// End is the running sum after this vector is added.
	End Complex

	// Radius is the vector's length.
	Radius float64

	// Frequency is the signed angular velocity n of the term.
	Frequency int

	// Visible is a drawing hint: false for vectors too short to see.
	// Invisible segments still contribute to the position.
	Visible bool
}

// Evaluate reconstructs the position at time t and returns the 2M+1
// vectors that sum to it, ordered zero term first, then
// (c_1, c_-1), (c_2, c_-2), and so on.
//
// Every frequency is an integer, so the result is 2π-periodic in t.
// A nil coefficient set evaluates to the origin with an empty chain.
func Evaluate(coef *Coefficients, t float64) (Complex, []Segment) {
	return EvaluateInto(nil, coef, t)
}

// EvaluateInto is like Evaluate but appends the chain to dst[:0], reusing
// its storage.
func EvaluateInto(dst []Segment, coef *Coefficients, t float64) (Complex, []Segment) {
	chain := dst[:0]
	if coef == nil {
		return Complex{}, chain
	}

	var pos Complex
	step := func(c Complex, n int) {
		v := c
		if n != 0 {
			v = c.Mul(Rot(t * float64(n)))
		}
		r := v.Abs()
		next := pos.Add(v)
		chain = append(chain, Segment{
			Center:    pos,
			End:       next,
			Radius:    r,
			Frequency: n,
			Visible:   r > VisibleRadius,
		})
		pos = next
	}

	step(coef.Zero, 0)
	for i := range coef.Positive {
		step(coef.Positive[i], i+1)
		step(coef.Negative[i], -(i + 1))
	}
	return pos, chain
}

// Position reconstructs the position at time t without building the chain.
func Position(coef *Coefficients, t float64) Complex {
	if coef == nil {
		return Complex{}
	}
	pos := coef.Zero
	for i := range coef.Positive {
		n := float64(i + 1)
		pos = pos.Add(coef.Positive[i].Mul(Rot(t * n)))
		pos = pos.Add(coef.Negative[i].Mul(Rot(-t * n)))
	}
	return pos
}
