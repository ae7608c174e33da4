// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/linalg"
)

// radiationForce integrates f^R_{ij}(ω) = ρ∫iω φ^R_j·n̂_i dS, returning the
// complex generalized-force coefficient coupling mode j's radiated
// potential to mode i's pressure integral (spec §4.6).
func radiationForce(panels []geo.Panel, phi linalg.Vector, modeI envir.Mode, cg geo.Point, env *envir.Environment, omega float64) complex128 {
	e := modeAxis(modeI)
	rotation := modeI >= envir.Roll
	var sum complex128
	for idx, p := range panels {
		var v geo.Point
		if rotation {
			v = geo.Cross(e, geo.Sub(p.Centroid, cg))
		} else {
			v = e
		}
		weight := geo.Dot(p.Normal, v) * p.Area
		sum += phi[idx] * complex(weight, 0)
	}
	return complex(0, env.Rho*omega) * sum
}

// addedMassDamping derives A_ij(ω), B_ij(ω) from the complex force
// coefficient per spec §4.6's sign convention.
func addedMassDamping(f complex128, omega float64) (a, b float64) {
	a = -real(f) / (omega * omega)
	b = -imag(f) / omega
	return
}

// excitingForce integrates F^X_i(ω,β) = ρ∫iω(φ^I+φ^D)·n̂_i dS for mode i.
func excitingForce(panels []geo.Panel, phiI, phiD linalg.Vector, modeI envir.Mode, cg geo.Point, env *envir.Environment, omega float64) complex128 {
	e := modeAxis(modeI)
	rotation := modeI >= envir.Roll
	var sum complex128
	for idx, p := range panels {
		var v geo.Point
		if rotation {
			v = geo.Cross(e, geo.Sub(p.Centroid, cg))
		} else {
			v = e
		}
		weight := geo.Dot(p.Normal, v) * p.Area
		sum += (phiI[idx] + phiD[idx]) * complex(weight, 0)
	}
	return complex(0, env.Rho*omega) * sum
}
