package fourier

import (
	"math"
	"testing"
)

func TestComplex_Mul(t *testing.T) {
	tests := []struct {
		name   string
		z, w   Complex
		expect Complex
	}{
		{"zero", C(0, 0), C(3, 4), C(0, 0)},
		{"real", C(2, 0), C(3, 0), C(6, 0)},
		{"i squared", C(0, 1), C(0, 1), C(-1, 0)},
		{"general", C(1, 2), C(3, 4), C(-5, 10)},
		{"conjugates", C(3, 4), C(3, -4), C(25, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.Mul(tt.w); !got.Approx(tt.expect, 1e-12) {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.z, tt.w, got, tt.expect)
			}
			if got := tt.w.Mul(tt.z); !got.Approx(tt.expect, 1e-12) {
				t.Errorf("%v.Mul(%v) = %v, want %v (commutativity)", tt.w, tt.z, got, tt.expect)
			}
		})
	}
}

func TestComplex_MatchesBuiltin(t *testing.T) {
	values := []Complex{C(1, 2), C(-3.5, 0.25), C(0, -7), C(1e3, -1e-3)}
	for _, a := range values {
		for _, b := range values {
			want := FromC128(a.C128() * b.C128())
			if got := a.Mul(b); !got.Approx(want, 1e-9) {
				t.Errorf("%v.Mul(%v) = %v, builtin = %v", a, b, got, want)
			}
			want = FromC128(a.C128() + b.C128())
			if got := a.Add(b); got != want {
				t.Errorf("%v.Add(%v) = %v, builtin = %v", a, b, got, want)
			}
		}
	}
}

func TestComplex_AbsDist(t *testing.T) {
	if got := C(3, 4).Abs(); got != 5 {
		t.Errorf("Abs(3,4) = %v, want 5", got)
	}
	if got := C(1, 1).Dist(C(4, 5)); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := C(2, -3).Conj(); got != C(2, 3) {
		t.Errorf("Conj = %v, want (2,3)", got)
	}
}

func TestComplex_Lerp(t *testing.T) {
	a, b := C(0, 0), C(10, -20)
	tests := []struct {
		t      float64
		expect Complex
	}{
		{0, a},
		{1, b},
		{0.5, C(5, -10)},
		{0.25, C(2.5, -5)},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); !got.Approx(tt.expect, 1e-12) {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.expect)
		}
	}
}

func TestComplex_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		z    Complex
		want bool
	}{
		{"finite", C(1, -1), true},
		{"nan re", C(math.NaN(), 0), false},
		{"nan im", C(0, math.NaN()), false},
		{"inf re", C(math.Inf(1), 0), false},
		{"-inf im", C(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestRot(t *testing.T) {
	tests := []struct {
		theta  float64
		expect Complex
	}{
		{0, C(1, 0)},
		{math.Pi / 2, C(0, 1)},
		{math.Pi, C(-1, 0)},
		{-math.Pi / 2, C(0, -1)},
	}
	for _, tt := range tests {
		got := Rot(tt.theta)
		if !got.Approx(tt.expect, 1e-12) {
			t.Errorf("Rot(%v) = %v, want %v", tt.theta, got, tt.expect)
		}
		if math.Abs(got.Abs()-1) > 1e-12 {
			t.Errorf("|Rot(%v)| = %v, want 1", tt.theta, got.Abs())
		}
	}

	// Multiplying by Rot rotates counter-clockwise.
	if got := C(2, 0).Mul(Rot(math.Pi / 2)); !got.Approx(C(0, 2), 1e-12) {
		t.Errorf("(2,0) rotated by π/2 = %v, want (0,2)", got)
	}
}
