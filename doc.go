// Package fourier reconstructs a hand-drawn closed path as a chain of
// rotating circles (epicycles).
//
// # Overview
//
// A drawing is recorded as a sequence of points, treated as one period of a
// complex-valued signal and decomposed into its discrete Fourier
// coefficients. Replaying the truncated series draws an approximation of
// the path with the tip of an arm built from one vector per frequency.
// An accuracy in [0, 1] chooses how many frequency pairs are kept.
//
// # Quick Start
//
//	import "github.com/gogpu/fourier"
//
//	path := fourier.NewDrawPath(fourier.C(1, 1), fourier.C(-1, 1),
//	    fourier.C(-1, -1), fourier.C(1, -1))
//
//	coef, err := fourier.ComputeCoefficients(path, 0.8)
//	if err != nil {
//	    return err
//	}
//	pen, chain := fourier.Evaluate(coef, t)
//
// Interactive front-ends drive a Controller instead: Begin on pointer
// down, AddSample on every move, Finish on release and Tick once per
// frame. Frame returns everything a renderer needs.
//
// # Coordinate System
//
// Points are complex numbers with the origin at the centre of the canvas
// and the real part increasing right. The package fixes no vertical
// orientation; the bundled front-ends pass y growing downwards, as on
// screen.
//
// # Time
//
// The animation parameter t is in radians; one full period of the series
// is 2π. Each Tick advances t by 1/framerate.
//
// # Sub-packages
//
//   - shapes: built-in closed test paths and a point-list parser
//   - render: rasterizes a Frame with gogpu/gg
package fourier
