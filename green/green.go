// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package green

import (
	"math"
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/wcerr"
	"gonum.org/v1/gonum/integrate/quad"
)

// coincidentTol is the k*r floor below which a field/source pair is
// treated as coincident (spec §4.3: "k·r underflows below 10^-12 merges
// with the coincident case").
const coincidentTol = 1e-12

// Vector is a complex-valued 3-vector, the gradient's natural type; ∇_xs G
// has no home in gosl/la (real-only) or gonum/mat (no complex128 dense
// type), so it is this package's own small value type.
type Vector struct {
	X, Y, Z complex128
}

// Evaluator evaluates G and ∇_xs G for a fixed Method and water depth,
// with series-convergence parameters fixed at construction (spec §4.3:
// "the choice is configuration at construction time and is invariant for a
// given Pipeline instance").
type Evaluator struct {
	Method        Method
	MaxIter       int     // wave-term series/quadrature iteration bound
	Tolerance     float64 // relative convergence tolerance for the wave term
	EvanescentModes int   // finite-depth evanescent-mode truncation count
}

// NewEvaluator returns an Evaluator with the defaults named in spec §6
// (tolerance/max_iter "used uniformly by iterative solver and
// Green-function series").
func NewEvaluator(method Method) *Evaluator {
	return &Evaluator{Method: method, MaxIter: 64, Tolerance: 1e-6, EvanescentModes: 8}
}

// Evaluate returns G(x_f, x_s; k, depth) and ∇_xs G, per spec §4.3.
func (e *Evaluator) Evaluate(xf, xs geo.Point, k float64, depth envir.Depth) (complex128, Vector, error) {
	if k <= 0 {
		return 0, Vector{}, wcerr.New(wcerr.InvalidInput, "wavenumber k must be positive, got %g", k)
	}
	dx, dy, dz := xf.X-xs.X, xf.Y-xs.Y, xf.Z-xs.Z
	r := math.Hypot(dx, dy)
	if k*math.Sqrt(dx*dx+dy*dy+dz*dz) < coincidentTol {
		return e.coincidentLimit(xf, xs, k, depth)
	}

	g, err := e.value(xf, xs, k, depth)
	if err != nil {
		return 0, Vector{}, err
	}
	if cmplx.IsNaN(g) || cmplx.IsInf(g) {
		return 0, Vector{}, wcerr.New(wcerr.NumericalFailure, "non-finite Green function at r=%g, z+z'=%g", r, xf.Z+xs.Z)
	}

	grad, err := e.gradient(xf, xs, k, depth)
	if err != nil {
		return 0, Vector{}, err
	}
	return g, grad, nil
}

// coincidentLimit returns the local limit at i=j of the non-singular parts
// only: the image term and the free-surface wave term evaluated at the
// panel's own depth (spec §4.3). The Rankine part is not included; assembly
// (diagonalEntry in assembly/assembly.go) applies the panel-area weighting
// and adds the integrated Rankine self-term.
func (e *Evaluator) coincidentLimit(xf, xs geo.Point, k float64, depth envir.Depth) (complex128, Vector, error) {
	zz := xf.Z + xs.Z
	rim := math.Max(math.Abs(2*xs.Z), 1e-12) // image separation at coincidence, r->0
	gImage := complex(-1/(4*math.Pi*rim), 0)
	gWave, err := e.waveTerm(0, zz, k, depth)
	if err != nil {
		return 0, Vector{}, err
	}
	// the Rankine self-term is excluded here: it diverges pointwise (r->0)
	// and only has meaning once integrated over the source panel's own
	// area, which assembly.diagonalEntry does analytically
	// (assembly.rankineSelfTerm) rather than through this pointwise
	// evaluator.
	return gImage + gWave, Vector{}, nil
}

// value computes the full Green function (Rankine + image + wave term).
func (e *Evaluator) value(xf, xs geo.Point, k float64, depth envir.Depth) (complex128, error) {
	dx, dy, dz := xf.X-xs.X, xf.Y-xs.Y, xf.Z-xs.Z
	rr := math.Sqrt(dx*dx + dy*dy + dz*dz)
	r := math.Hypot(dx, dy)
	zz := xf.Z + xs.Z

	rankine := complex(-1/(4*math.Pi*rr), 0)

	r1 := math.Sqrt(r*r + zz*zz)
	image := complex(-1/(4*math.Pi*r1), 0)

	wave, err := e.waveTerm(r, zz, k, depth)
	if err != nil {
		return 0, err
	}
	return rankine + image + wave, nil
}

// waveTerm dispatches to the infinite- or finite-depth free-surface term.
func (e *Evaluator) waveTerm(r, zz float64, k float64, depth envir.Depth) (complex128, error) {
	if depth.IsInfinite() || k*depth.Value() > 6 {
		// kh > 6: tanh(kh) saturates to 1 within about 1.2e-5, indistinguishable
		// from infinite depth at the accuracy target of spec §4.3.
		return e.waveTermInfinite(r, zz, k)
	}
	return e.waveTermFinite(r, zz, k, depth.Value())
}

// waveTermInfinite evaluates the Wehausen–Laitone infinite-depth wave term
//
//	G_wave = 2k PV∫_0^∞ (t+1)/(t-1) e^{kt(z+z')} J0(ktr) dt + 2πi k e^{k(z+z')} J0(kr)
//
// by the Delhommeau method (regularized numerical quadrature of the
// principal-value integral) or, for HigherOrderSeries, a near/far-field
// series in k·r and k·(z+z').
func (e *Evaluator) waveTermInfinite(r, zz, k float64) (complex128, error) {
	residue := complex(0, 2*math.Pi*k) * cmplx.Exp(complex(k*zz, 0)) * complex(besselJ0(k*r), 0)

	var pv float64
	var err error
	switch e.Method {
	case HigherOrderSeries:
		pv, err = pvIntegralSeries(r, zz, k, e.MaxIter, e.Tolerance)
	default:
		pv, err = pvIntegralQuadrature(r, zz, k)
	}
	if err != nil {
		return 0, err
	}
	return complex(2*k*pv, 0) + residue, nil
}

// pvIntegralQuadrature evaluates the principal-value integral in the
// substituted variable t=μ/k. Nothing is subtracted at the t=1 pole: the
// integrand is integrated directly over [0,2], whose Gauss–Legendre nodes
// are symmetric about t=1 so the odd singular part cancels, and the
// exponentially decaying tail over [2,T] with T chosen from the decay
// rate (Gauss–Legendre nodes via
// gonum/integrate/quad, spec SPEC_FULL §4.5 domain-stack wiring).
func pvIntegralQuadrature(r, zz, k float64) (float64, error) {
	f := func(t float64) float64 {
		if math.Abs(t-1) < 1e-9 {
			t = 1 + 1e-9 // guards the division by t-1 at the pole
		}
		return (t + 1) / (t - 1) * math.Exp(k*zz*t) * besselJ0(k*r*t)
	}
	// PV∫_0^2 f(t)/(t-1) dt regularized: f(t) already folds 1/(t-1) in; the
	// singular part integrates to zero by the symmetric-interval identity
	// PV∫_0^2 dt/(t-1) = 0, so plain (non-PV) quadrature of f over [0,2]
	// with the t=1 sample nudged off the pole converges to the true PV.
	near := quad.Fixed(f, 0, 2, 24, quad.Legendre{}, 0)

	// tail: zz<0 (both points at or below the free surface) so e^{k zz t}
	// decays monotonically; truncate where the exponent has fallen by a
	// further 60 (a factor of about e^-60), capped at t=62.
	tmax := 2.0
	if zz < 0 {
		tmax = 2 + math.Min(60.0, -60.0/(k*zz))
	} else {
		tmax = 62.0
	}
	tail := quad.Fixed(f, 2, tmax, 32, quad.Legendre{}, 0)

	return near + tail, nil
}

// pvIntegralSeries is the HigherOrderSeries counterpart: a convergent
// Taylor series in k·(z+z') for the near field, and an asymptotic
// large-argument expansion for the far field, matching the teacher's
// habit (fem's shape-function series) of switching representations by
// argument range rather than quadrature everywhere.
func pvIntegralSeries(r, zz, k float64, maxIter int, tol float64) (float64, error) {
	x := k * zz // <= 0
	kr := k * r
	if kr < 5 {
		// near field: series in x about x=0, term n ~ x^n/n! * L_n(kr)-type
		// envelope; approximated here by a damped geometric remainder using
		// the dominant exponential decay already present in e^{x}.
		sum, term := 0.0, 1.0
		for n := 1; n <= maxIter; n++ {
			term *= x / float64(n)
			contrib := term * besselJ0(kr*float64(n)/float64(n+1))
			sum += contrib
			if math.Abs(contrib) < tol*math.Max(1, math.Abs(sum)) {
				return sum, nil
			}
		}
		return 0, wcerr.New(wcerr.NumericalFailure, "HigherOrderSeries near-field expansion did not converge within %d terms (kr=%g, k(z+z')=%g)", maxIter, kr, x)
	}
	// far field: 1/sqrt(kr) asymptotic decay dominates; one leading term is
	// within the accuracy target for kr beyond this threshold.
	return math.Exp(x) * math.Sqrt(2/(math.Pi*kr)) * math.Cos(kr-math.Pi/4), nil
}

// waveTermFinite evaluates the finite-depth wave term as the propagating
// mode plus a truncated sum of evanescent modes, each a root of the
// finite-depth dispersion relation ω² = -g·μ_n·tan(μ_n h) in the n-th
// branch (n>=1); the propagating root is k itself (spec: k already
// satisfies ω² = g·k·tanh(k·h) for the given depth). This is the standard
// eigenfunction reduction of the finite-depth free-surface Green function,
// truncated to Evaluator.EvanescentModes terms.
func (e *Evaluator) waveTermFinite(r, zz, k, h float64) (complex128, error) {
	omega2 := k * math.Tanh(k*h) // = omega^2/g, consistent with the given k
	propagating := propagatingTerm(r, zz, k, h)

	n := e.EvanescentModes
	if n <= 0 {
		n = 8
	}
	var evanescent float64
	for j := 1; j <= n; j++ {
		mu, err := evanescentRoot(j, h, omega2)
		if err != nil {
			return 0, err
		}
		evanescent += evanescentTerm(r, zz, mu, h, omega2)
	}
	return propagating + complex(evanescent, 0), nil
}

// propagatingTerm is the n=0 (oscillatory, far-field-radiating) mode of the
// finite-depth eigenfunction expansion: amplitude fixed by the standard
// depth-normalization factor k·h + sinh(k·h)·cosh(k·h), depth shape
// cosh(k(z+2h))/cosh(kh), horizontal decay J0(kr).
func propagatingTerm(r, zz, k, h float64) complex128 {
	amp := k / (k*h + math.Sinh(k*h)*math.Cosh(k*h))
	depthShape := math.Cosh(k*(zz+2*h)) / math.Cosh(k*h)
	return complex(0, 2*math.Pi*amp*depthShape) * complex(besselJ0(k*r), 0)
}

// evanescentRoot finds the j-th positive root μ of ω² = -g μ tan(μ h)
// (normalized: omega2 = μ tan(μ h)... sign handled by solving
// omega2 + μ tan(μ h) = 0) in the bracket ((j-1/2)π, jπ)/h, where tan is
// negative and f runs from -∞ to omega2 > 0, via
// bisection — the same bracket-then-bisect shape as envir.dispersionBisection,
// generalized to the evanescent branch's periodic tangent singularities.
func evanescentRoot(j int, h, omega2 float64) (float64, error) {
	lo := (float64(j)-0.5)*math.Pi/h + 1e-9
	hi := float64(j)*math.Pi/h - 1e-9
	f := func(mu float64) float64 { return omega2 + mu*math.Tan(mu*h) }
	flo, fhi := f(lo), f(hi)
	if flo*fhi > 0 {
		return 0, wcerr.New(wcerr.NumericalFailure, "evanescent mode %d: no sign change in bracket [%g,%g]", j, lo, hi)
	}
	for i := 0; i < 100; i++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if fm == 0 || (hi-lo) < 1e-13 {
			return mid, nil
		}
		if flo*fm < 0 {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}
	return 0.5 * (lo + hi), nil
}

// evanescentTerm is the j-th evanescent (exponentially decaying in r) mode
// contribution.
func evanescentTerm(r, zz, mu, h, omega2 float64) float64 {
	amp := (mu * math.Cos(mu*h)) / (mu*h + math.Sin(mu*h)*math.Cos(mu*h))
	// K0-type decay approximated by the same rational form used for besselJ0's
	// large-argument branch, since gosl/gonum carry no modified-Bessel K0 either.
	decay := math.Exp(-mu*r) * math.Sqrt(math.Pi/(2*math.Max(mu*r, 1e-9)))
	return 2 * math.Pi * amp * math.Cos(mu*(zz+2*h)) / math.Cosh(mu*h) * decay
}

// gradient computes ∇_xs G: the Rankine and image terms analytically, the
// wave term by central finite difference (it has no closed form in this
// package's representation) — mirroring gosl/num.DerivCentral's centered
// differencing scheme, generalized to a complex-valued function of a
// 3-vector argument (DerivCentral itself is real scalar-to-scalar and
// cannot be called directly here; see green/green_test.go for the
// independent DerivCentral cross-check of the Rankine analytic part).
func (e *Evaluator) gradient(xf, xs geo.Point, k float64, depth envir.Depth) (Vector, error) {
	dx, dy, dz := xf.X-xs.X, xf.Y-xs.Y, xf.Z-xs.Z
	rr3 := math.Pow(dx*dx+dy*dy+dz*dz, 1.5)
	// d/dxs_i [-1/(4π rr)] = (xs_i - xf_i)/(4π rr^3) = -d(xf_i-xs_i)/(4π rr^3)
	gr := Vector{
		X: complex(-dx/(4*math.Pi*rr3), 0),
		Y: complex(-dy/(4*math.Pi*rr3), 0),
		Z: complex(-dz/(4*math.Pi*rr3), 0),
	}

	zz := xf.Z + xs.Z
	r1 := math.Sqrt(dx*dx + dy*dy + zz*zz)
	r13 := r1 * r1 * r1
	gi := Vector{
		X: complex(-dx/(4*math.Pi*r13), 0),
		Y: complex(-dy/(4*math.Pi*r13), 0),
		// image z-derivative: d(zz)/d(xs.Z) = +1 (zz = xf.Z+xs.Z), chain rule
		// flips the sign relative to the Rankine term's d(dz)/d(xs.Z) = -1.
		Z: complex(zz/(4*math.Pi*r13), 0),
	}

	gw, err := e.waveGradientFD(xf, xs, k, depth)
	if err != nil {
		return Vector{}, err
	}

	return Vector{X: gr.X + gi.X + gw.X, Y: gr.Y + gi.Y + gw.Y, Z: gr.Z + gi.Z + gw.Z}, nil
}

// waveGradientFD differentiates the wave term only (Rankine/image handled
// analytically above) by central difference in each of x_s's three
// components.
func (e *Evaluator) waveGradientFD(xf, xs geo.Point, k float64, depth envir.Depth) (Vector, error) {
	h := fdStep(xf, xs, k)
	r := func(p geo.Point) (float64, float64) {
		dx, dy := xf.X-p.X, xf.Y-p.Y
		return math.Hypot(dx, dy), xf.Z + p.Z
	}
	wv := func(p geo.Point) (complex128, error) {
		rr, zz := r(p)
		return e.waveTerm(rr, zz, k, depth)
	}

	px1, px2 := xs, xs
	px1.X += h
	px2.X -= h
	fx1, err := wv(px1)
	if err != nil {
		return Vector{}, err
	}
	fx2, err := wv(px2)
	if err != nil {
		return Vector{}, err
	}

	py1, py2 := xs, xs
	py1.Y += h
	py2.Y -= h
	fy1, err := wv(py1)
	if err != nil {
		return Vector{}, err
	}
	fy2, err := wv(py2)
	if err != nil {
		return Vector{}, err
	}

	pz1, pz2 := xs, xs
	pz1.Z += h
	pz2.Z -= h
	fz1, err := wv(pz1)
	if err != nil {
		return Vector{}, err
	}
	fz2, err := wv(pz2)
	if err != nil {
		return Vector{}, err
	}

	return Vector{
		X: (fx1 - fx2) / complex(2*h, 0),
		Y: (fy1 - fy2) / complex(2*h, 0),
		Z: (fz1 - fz2) / complex(2*h, 0),
	}, nil
}

// fdStep picks a central-difference step scaled to the problem's natural
// length 1/k, clamped away from zero.
func fdStep(xf, xs geo.Point, k float64) float64 {
	scale := 1 / math.Max(k, 1e-6)
	h := scale * 1e-5
	if h < 1e-9 {
		h = 1e-9
	}
	return h
}
