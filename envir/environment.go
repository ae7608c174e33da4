// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envir

import "github.com/LexxSaa28/wavecore/wcerr"

// Depth is the water-depth enum: Infinite, or Finite(h>0). spec §3 fixes
// this as the internal representation, with h<=0 denoting infinite depth
// only at the external interface boundary (spec §6).
type Depth struct {
	finite bool
	h      float64
}

// InfiniteDepth is the Infinite depth variant.
func InfiniteDepth() Depth { return Depth{finite: false} }

// FiniteDepth constructs the Finite(h) variant; h must be > 0.
func FiniteDepth(h float64) (Depth, error) {
	if h <= 0 {
		return Depth{}, wcerr.New(wcerr.InvalidInput, "finite depth must be > 0, got %g", h)
	}
	return Depth{finite: true, h: h}, nil
}

// DepthFromInterface maps the external-interface convention (h<=0 means
// infinite depth) to the internal enum (spec §3).
func DepthFromInterface(h float64) Depth {
	if h <= 0 {
		return InfiniteDepth()
	}
	return Depth{finite: true, h: h}
}

// IsInfinite reports whether this is the Infinite variant.
func (d Depth) IsInfinite() bool { return !d.finite }

// Value returns h for Finite(h); it panics on the Infinite variant since
// callers must branch on IsInfinite first (mirrors the teacher's tagged
// enum discipline, e.g. ele.Connector's type-asserted dispatch).
func (d Depth) Value() float64 {
	if !d.finite {
		panic("envir: Depth.Value called on Infinite depth")
	}
	return d.h
}

// Environment is the fluid environment: density, gravity, and water depth.
type Environment struct {
	Rho   float64 // fluid density, kg/m^3
	G     float64 // gravitational acceleration, m/s^2
	Depth Depth
}

// NewEnvironment validates and constructs an Environment (spec §3: ρ>0, g>0).
func NewEnvironment(rho, g float64, depth Depth) (*Environment, error) {
	if rho <= 0 {
		return nil, wcerr.New(wcerr.InvalidInput, "fluid density must be > 0, got %g", rho)
	}
	if g <= 0 {
		return nil, wcerr.New(wcerr.InvalidInput, "gravitational acceleration must be > 0, got %g", g)
	}
	return &Environment{Rho: rho, G: g, Depth: depth}, nil
}

// StandardSeawater returns the conventional ρ=1025 kg/m³, g=9.80665 m/s²
// environment at infinite depth, a common default for self-tests.
func StandardSeawater() *Environment {
	env, _ := NewEnvironment(1025, 9.80665, InfiniteDepth())
	return env
}

// FreshWater returns the ρ=1000 kg/m³, g=9.80665 m/s² environment at
// infinite depth, matching spec §8's end-to-end sphere scenarios.
func FreshWater() *Environment {
	env, _ := NewEnvironment(1000, 9.80665, InfiniteDepth())
	return env
}
