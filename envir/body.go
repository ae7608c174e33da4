// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envir holds the rigid body, fluid environment, and wave entities
// that parametrize a BEM problem, plus the dispersion relation linking
// frequency, wavenumber and depth.
package envir

import (
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/wcerr"
)

// Mode indexes the six rigid-body modes, in the fixed order spec.md §3
// requires: surge, sway, heave, roll, pitch, yaw.
type Mode int

const (
	Surge Mode = iota
	Sway
	Heave
	Roll
	Pitch
	Yaw
	NumModes = 6
)

func (m Mode) String() string {
	return [NumModes]string{"surge", "sway", "heave", "roll", "pitch", "yaw"}[m]
}

// Body is a rigid body: mass, center of gravity, inertia tensor about the
// center of gravity, and which of the six modes are active.
type Body struct {
	Mass     float64
	Cg       geo.Point
	Inertia  [3][3]float64 // symmetric positive definite about Cg
	DofMask  [NumModes]bool
}

// NewBody validates and constructs a Body (spec §3: "mass m>0 ... I
// symmetric positive definite about r_G").
func NewBody(mass float64, cg geo.Point, inertia [3][3]float64, dofMask [NumModes]bool) (*Body, error) {
	if mass <= 0 {
		return nil, wcerr.New(wcerr.InvalidInput, "body mass must be > 0, got %g", mass)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if inertia[i][j] != inertia[j][i] {
				return nil, wcerr.New(wcerr.InvalidInput, "inertia tensor is not symmetric: I[%d][%d]=%g I[%d][%d]=%g",
					i, j, inertia[i][j], j, i, inertia[j][i])
			}
		}
	}
	if !positiveDefinite3x3(inertia) {
		return nil, wcerr.New(wcerr.InvalidInput, "inertia tensor is not positive definite")
	}
	return &Body{Mass: mass, Cg: cg, Inertia: inertia, DofMask: dofMask}, nil
}

// positiveDefinite3x3 checks positive-definiteness via Sylvester's
// criterion (leading principal minors > 0), sufficient for the small fixed
// 3x3 inertia tensor and cheaper than a general eigen decomposition.
func positiveDefinite3x3(a [3][3]float64) bool {
	if a[0][0] <= 0 {
		return false
	}
	m2 := a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if m2 <= 0 {
		return false
	}
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	return det > 0
}

// ActiveModes returns the indices of the modes with DofMask set, in
// surge..yaw order.
func (b *Body) ActiveModes() []Mode {
	var out []Mode
	for m := Mode(0); m < NumModes; m++ {
		if b.DofMask[m] {
			out = append(out, m)
		}
	}
	return out
}

// MassMatrix returns the body's 6x6 generalized mass matrix: m on the
// translational diagonal, I on the rotational block, and the mass-center
// offset coupling terms are assumed already folded into r_G-referenced
// rotational equations (radiation/hydrostatic moments are all taken about
// r_G in this formulation, per spec §4.7's M built from (m, r_G, I)).
func (b *Body) MassMatrix() [6][6]float64 {
	var m [6][6]float64
	for i := 0; i < 3; i++ {
		m[i][i] = b.Mass
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3+i][3+j] = b.Inertia[i][j]
		}
	}
	return m
}
