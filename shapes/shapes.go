// Package shapes provides deterministic closed paths for demos and tests,
// and a parser for textual point lists.
//
// All shapes are centred on the origin in the drawing surface's
// coordinate space, with y growing downwards as on screen.
package shapes

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/fourier"
)

// Names lists the shapes accepted by ByName.
var Names = []string{"circle", "heart", "lissajous", "square", "star"}

// ByName returns the named shape sampled with n points and the given
// overall radius.
func ByName(name string, n int, radius float64) ([]fourier.Complex, error) {
	switch strings.ToLower(name) {
	case "circle":
		return Circle(n, radius), nil
	case "heart":
		return Heart(n, radius), nil
	case "lissajous":
		return Lissajous(n, radius, 3, 2), nil
	case "square":
		return Square(n, radius), nil
	case "star":
		return Star(n, radius, 5), nil
	}
	return nil, fmt.Errorf("shapes: unknown shape %q (want one of %s)", name, strings.Join(Names, ", "))
}

// sample evaluates f at n evenly spaced parameters in [0, 1).
func sample(n int, f func(u float64) fourier.Complex) []fourier.Complex {
	n = max(n, 1)
	out := make([]fourier.Complex, n)
	for i := range out {
		out[i] = f(float64(i) / float64(n))
	}
	return out
}

// Circle samples a circle of radius r.
func Circle(n int, r float64) []fourier.Complex {
	return sample(n, func(u float64) fourier.Complex {
		return fourier.Rot(2 * math.Pi * u).Scale(r)
	})
}

// Square samples the outline of an axis-aligned square with half-side r,
// starting at the corner (r, r) and walking the perimeter at constant
// speed.
func Square(n int, r float64) []fourier.Complex {
	corners := []fourier.Complex{
		fourier.C(r, r), fourier.C(-r, r), fourier.C(-r, -r), fourier.C(r, -r),
	}
	return sample(n, func(u float64) fourier.Complex {
		s := u * 4
		i := int(s)
		return corners[i].Lerp(corners[(i+1)%4], s-float64(i))
	})
}

// Star samples a star polygon with the given number of spikes.
func Star(n int, r float64, spikes int) []fourier.Complex {
	spikes = max(spikes, 2)
	vertices := make([]fourier.Complex, 2*spikes)
	for i := range vertices {
		radius := r
		if i%2 == 1 {
			radius = r * 0.45
		}
		vertices[i] = fourier.Rot(math.Pi*float64(i)/float64(spikes) - math.Pi/2).Scale(radius)
	}
	m := len(vertices)
	return sample(n, func(u float64) fourier.Complex {
		s := u * float64(m)
		i := int(s)
		return vertices[i].Lerp(vertices[(i+1)%m], s-float64(i))
	})
}

// Heart samples the classic parametric heart curve scaled to radius r.
func Heart(n int, r float64) []fourier.Complex {
	return sample(n, func(u float64) fourier.Complex {
		t := 2 * math.Pi * u
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		return fourier.C(x, -y).Scale(r / 17)
	})
}

// Lissajous samples the closed curve (sin(a·t + π/2), sin(b·t)).
func Lissajous(n int, r float64, a, b int) []fourier.Complex {
	return sample(n, func(u float64) fourier.Complex {
		t := 2 * math.Pi * u
		return fourier.C(math.Sin(float64(a)*t+math.Pi/2), math.Sin(float64(b)*t)).Scale(r)
	})
}

// Parse reads points written as "x,y" pairs separated by semicolons or
// whitespace, for example "1,1; -1,1; -1,-1; 1,-1".
func Parse(s string) ([]fourier.Complex, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]fourier.Complex, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("shapes: point %q: missing comma", f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("shapes: point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("shapes: point %q: %w", f, err)
		}
		p := fourier.C(x, y)
		if !p.IsFinite() {
			return nil, fmt.Errorf("shapes: point %q is not finite", f)
		}
		out = append(out, p)
	}
	return slices.Clip(out), nil
}
