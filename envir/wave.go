// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envir

import (
	"math"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// Wave is one (frequency, direction) pair together with its derived
// wavenumber, satisfying the dispersion relation ω² = g·k·tanh(k·h) (spec §3).
type Wave struct {
	Omega float64 // rad/s, > 0
	Beta  float64 // incident direction, radians, in [0, 2π)
	K     float64 // wavenumber satisfying dispersion
}

// NewWave validates ω and β and solves the dispersion relation for k.
func NewWave(env *Environment, omega, beta float64) (Wave, error) {
	if omega <= 0 {
		return Wave{}, wcerr.New(wcerr.InvalidInput, "wave frequency must be > 0, got %g", omega)
	}
	if beta < 0 || beta >= 2*math.Pi {
		return Wave{}, wcerr.New(wcerr.InvalidInput, "wave direction must be in [0,2π), got %g", beta)
	}
	k, err := Dispersion(env.G, env.Depth, omega)
	if err != nil {
		return Wave{}, err
	}
	return Wave{Omega: omega, Beta: beta, K: k}, nil
}

// dispersionMaxIter bounds the Newton iteration; exceeding it without
// converging hands the root search to bisection, and only a failed
// bisection is NumericalFailure.
const dispersionMaxIter = 100
const dispersionTol = 1e-14

// Dispersion solves ω² = g·k·tanh(k·h) for k, given g, the depth, and ω.
// For infinite depth the closed form k = ω²/g applies directly. For finite
// depth, Newton iteration seeded at ω²/g is used (spec §4.6 step 1); if
// Newton fails to contract within dispersionMaxIter steps, bisection over
// (0, a generous upper bound] is used as a fallback (SPEC_FULL §4.3:
// "falling back to bisection if Newton does not contract").
func Dispersion(g float64, depth Depth, omega float64) (float64, error) {
	if depth.IsInfinite() {
		return omega * omega / g, nil
	}
	h := depth.Value()
	f := func(k float64) float64 { return g*k*math.Tanh(k*h) - omega*omega }
	df := func(k float64) float64 {
		t := math.Tanh(k * h)
		sech2 := 1 - t*t
		return g*t + g*k*h*sech2
	}
	k := omega * omega / g
	if k <= 0 {
		k = 1e-6
	}
	converged := false
	for i := 0; i < dispersionMaxIter; i++ {
		fk := f(k)
		if math.Abs(fk) <= dispersionTol*omega*omega {
			converged = true
			break
		}
		dfk := df(k)
		if dfk == 0 || math.IsNaN(dfk) || math.IsInf(dfk, 0) {
			break
		}
		next := k - fk/dfk
		if next <= 0 || math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		k = next
	}
	if !converged || math.IsNaN(k) || math.IsInf(k, 0) {
		var err error
		k, err = dispersionBisection(g, h, omega)
		if err != nil {
			return 0, err
		}
	}
	return k, nil
}

// dispersionBisection brackets the unique positive root of f(k)=0 on
// (0, kHi] and bisects, used only when Newton fails to converge.
func dispersionBisection(g, h, omega float64) (float64, error) {
	f := func(k float64) float64 { return g*k*math.Tanh(k*h) - omega*omega }
	lo, hi := 1e-12, omega*omega/g+10.0/h+1.0
	flo, fhi := f(lo), f(hi)
	for i := 0; i < 200 && flo*fhi > 0; i++ {
		hi *= 2
		fhi = f(hi)
	}
	if flo*fhi > 0 {
		return 0, wcerr.New(wcerr.NumericalFailure, "dispersion relation: could not bracket a root for omega=%g depth=%g", omega, h)
	}
	for i := 0; i < dispersionMaxIter*4; i++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if math.Abs(fm) <= dispersionTol*omega*omega {
			return mid, nil
		}
		if flo*fm <= 0 {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}
	return 0, wcerr.New(wcerr.NumericalFailure, "dispersion relation: bisection did not converge for omega=%g depth=%g", omega, h)
}
