package fourier

import "math"

// Complex is a complex number stored as a real/imaginary pair.
//
// It doubles as a 2D point in the drawing surface: Re is the horizontal
// coordinate and Im the vertical one. Complex is a plain value; methods
// never modify the receiver.
type Complex struct {
	Re, Im float64
}

// C is a convenience function to create a Complex.
func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromC128 converts a builtin complex128 to a Complex.
func FromC128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// C128 converts the value to the builtin complex128.
func (z Complex) C128() complex128 {
	return complex(z.Re, z.Im)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns the complex product z * w.
//
//	(a,b) * (c,d) = (ac - bd, ad + bc)
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Scale returns z multiplied by the real scalar s.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Abs returns the magnitude |z|.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Dist returns the Euclidean distance between z and w.
func (z Complex) Dist(w Complex) float64 {
	return z.Sub(w).Abs()
}

// Lerp performs linear interpolation between two values.
// t=0 returns z, t=1 returns w.
func (z Complex) Lerp(w Complex, t float64) Complex {
	return Complex{
		Re: z.Re + (w.Re-z.Re)*t,
		Im: z.Im + (w.Im-z.Im)*t,
	}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) &&
		!math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}

// Approx reports whether z and w differ by at most eps in each component.
func (z Complex) Approx(w Complex, eps float64) bool {
	return math.Abs(z.Re-w.Re) <= eps && math.Abs(z.Im-w.Im) <= eps
}

// Rot returns the unit vector (cos θ, sin θ). Multiplying by it rotates a
// value by θ radians counter-clockwise.
func Rot(theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Re: cos, Im: sin}
}
