// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/linalg"
)

// radiationRHS builds q^R_m, the panel-normal velocity for unit motion in
// mode m about the body's center of gravity: n̂·e_m for translations and
// n̂·(e_m×(r_panel − r_G)) for rotations, the same weight pressure.go uses.
func radiationRHS(panels []geo.Panel, cg geo.Point, mode envir.Mode) linalg.Vector {
	q := make(linalg.Vector, len(panels))
	e := modeAxis(mode)
	rotation := mode >= envir.Roll
	for i, p := range panels {
		var v geo.Point
		if rotation {
			v = geo.Cross(e, geo.Sub(p.Centroid, cg))
		} else {
			v = e
		}
		q[i] = complex(geo.Dot(p.Normal, v), 0)
	}
	return q
}

func modeAxis(mode envir.Mode) geo.Point {
	switch mode {
	case envir.Surge, envir.Roll:
		return geo.Point{X: 1}
	case envir.Sway, envir.Pitch:
		return geo.Point{Y: 1}
	case envir.Heave, envir.Yaw:
		return geo.Point{Z: 1}
	default:
		return geo.Point{}
	}
}

// incidentPotential returns φ^I at point p for unit-amplitude incident
// wave of wavenumber k, direction beta, and frequency omega, under the
// exp(i(k·x − ωt)) convention fixed by spec §8. The vertical structure is
// depth-aware (depthShape), matching the same depth envir.Dispersion
// solved k against and the same eigenfunction shape
// green.Evaluator.waveTermFinite uses for the free-surface Green function.
func incidentPotential(p geo.Point, env *envir.Environment, k, omega, beta float64) complex128 {
	phase := k * (p.X*math.Cos(beta) + p.Y*math.Sin(beta))
	amp := env.G / omega // unit wave amplitude, potential scaling
	return complex(0, amp) * complex(depthShape(k, p.Z, env.Depth), 0) * cmplx.Exp(complex(0, phase))
}

// depthShape is the incident potential's vertical profile: e^{kz} in
// infinite depth, cosh(k(z+h))/cosh(kh) in finite depth (spec §4.6); the
// latter reduces to the former as kh->infinity.
func depthShape(k, z float64, depth envir.Depth) float64 {
	if depth.IsInfinite() {
		return math.Exp(k * z)
	}
	h := depth.Value()
	return math.Cosh(k*(z+h)) / math.Cosh(k*h)
}

// depthShapeDerivRatio is depthShape's d/dz divided by itself (so it can
// scale phi directly): k in infinite depth, k*tanh(k(z+h)) in finite depth.
func depthShapeDerivRatio(k, z float64, depth envir.Depth) float64 {
	if depth.IsInfinite() {
		return k
	}
	h := depth.Value()
	return k * math.Tanh(k*(z+h))
}

// diffractionRHS builds q^D(β): the panel-normal velocity of the incident
// wave potential (spec §4.6), q^D_i = n̂_i·∇φ^I(c_i).
func diffractionRHS(panels []geo.Panel, env *envir.Environment, k, omega, beta float64) linalg.Vector {
	q := make(linalg.Vector, len(panels))
	for i, p := range panels {
		phi := incidentPotential(p.Centroid, env, k, omega, beta)
		horiz := complex(0, 1) * phi * complex(k, 0) // horizontal phase gradient shares phi's i*k*(...) structure regardless of depth
		gx := horiz * complex(math.Cos(beta), 0)
		gy := horiz * complex(math.Sin(beta), 0)
		gz := phi * complex(depthShapeDerivRatio(k, p.Centroid.Z, env.Depth), 0)
		q[i] = complex(p.Normal.X, 0)*gx + complex(p.Normal.Y, 0)*gy + complex(p.Normal.Z, 0)*gz
	}
	return q
}

// incidentPotentials returns φ^I evaluated at every panel centroid, needed
// by pressure integration's exciting-force formula F^X_i = ρ∫iω(φ^I+φ^D)n̂_i dS.
func incidentPotentials(panels []geo.Panel, env *envir.Environment, k, omega, beta float64) linalg.Vector {
	out := make(linalg.Vector, len(panels))
	for i, p := range panels {
		out[i] = incidentPotential(p.Centroid, env, k, omega, beta)
	}
	return out
}
