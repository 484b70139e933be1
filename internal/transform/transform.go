// Package transform holds the discrete Fourier kernels behind the
// coefficient engine. Both kernels treat their input as one period of a
// periodic signal and return coefficients normalised by 1/N:
//
//	c_n = (1/N) Σ_k x[k] e^{-2πi n k / N}
package transform

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Kernel evaluates single coefficients directly in O(N) each.
//
// The twiddle factors are precomputed once and indexed by (n·k mod N),
// which keeps every angle inside one period regardless of n.
type Kernel struct {
	samples []complex128
	twiddle []complex128
}

// NewKernel prepares a direct kernel over samples. The slice is retained
// and must not be modified while the kernel is in use.
func NewKernel(samples []complex128) *Kernel {
	n := len(samples)
	tw := make([]complex128, n)
	for j := range tw {
		s, c := math.Sincos(-2 * math.Pi * float64(j) / float64(n))
		tw[j] = complex(c, s)
	}
	return &Kernel{samples: samples, twiddle: tw}
}

// Len returns the number of samples N.
func (k *Kernel) Len() int {
	return len(k.samples)
}

// Coefficient returns c_n for any signed integer frequency n.
func (k *Kernel) Coefficient(n int) complex128 {
	size := len(k.samples)
	if size == 0 {
		return 0
	}
	step := mod(n, size)
	var sum complex128
	idx := 0
	for _, x := range k.samples {
		sum += x * k.twiddle[idx]
		idx += step
		if idx >= size {
			idx -= size
		}
	}
	return sum / complex(float64(size), 0)
}

// Spectrum is the full normalised DFT of a signal, computed with an FFT.
type Spectrum []complex128

// FFT computes the normalised spectrum of samples.
func FFT(samples []complex128) Spectrum {
	if len(samples) == 0 {
		return nil
	}
	out := fft.FFT(samples)
	inv := complex(1/float64(len(samples)), 0)
	for i := range out {
		out[i] *= inv
	}
	return Spectrum(out)
}

// Coefficient returns c_n, reading negative frequencies from the upper
// half of the spectrum.
func (s Spectrum) Coefficient(n int) complex128 {
	if len(s) == 0 {
		return 0
	}
	return s[mod(n, len(s))]
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
