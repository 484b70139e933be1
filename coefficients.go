package fourier

import "slices"

// Coefficients is a truncated complex Fourier series.
//
// Positive[i-1] weighs frequency i and Negative[i-1] weighs frequency -i,
// so both slices always have the same length. Values returned by the
// engine are never modified afterwards; treat them as read-only.
type Coefficients struct {
	Zero     Complex
	Positive []Complex
	Negative []Complex
}

// Terms returns the number of frequency pairs M.
func (c *Coefficients) Terms() int {
	if c == nil {
		return 0
	}
	return len(c.Positive)
}

// At returns the coefficient for signed frequency n, or zero when n lies
// outside [-M, M].
func (c *Coefficients) At(n int) Complex {
	switch {
	case c == nil:
		return Complex{}
	case n == 0:
		return c.Zero
	case n > 0 && n <= len(c.Positive):
		return c.Positive[n-1]
	case n < 0 && -n <= len(c.Negative):
		return c.Negative[-n-1]
	}
	return Complex{}
}

// Clone returns a deep copy.
func (c *Coefficients) Clone() *Coefficients {
	if c == nil {
		return nil
	}
	return &Coefficients{
		Zero:     c.Zero,
		Positive: slices.Clone(c.Positive),
		Negative: slices.Clone(c.Negative),
	}
}

// Energy returns Σ|c_n|² over all retained terms.
func (c *Coefficients) Energy() float64 {
	if c == nil {
		return 0
	}
	e := sq(c.Zero.Abs())
	for i := range c.Positive {
		e += sq(c.Positive[i].Abs()) + sq(c.Negative[i].Abs())
	}
	return e
}

func sq(x float64) float64 { return x * x }
