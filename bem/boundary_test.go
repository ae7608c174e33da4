// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
)

func Test_depthShape01_finiteApproachesInfiniteAsDepthGrows(tst *testing.T) {
	chk.PrintTitle("depthShape01: cosh(k(z+h))/cosh(kh) converges to e^{kz} as kh grows")
	k, z := 0.5, -0.8
	deep, err := envir.FiniteDepth(500.0) // kh = 250, well past the waveTerm dispatch's kh>6 cutoff
	if err != nil {
		tst.Fatalf("FiniteDepth: %v", err)
	}
	got := depthShape(k, z, deep)
	want := math.Exp(k * z)
	chk.Scalar(tst, "finite-depth shape ~ e^{kz} for large kh", 1e-6, got, want)
}

func Test_depthShape02_shallowDiffersFromInfinite(tst *testing.T) {
	chk.PrintTitle("depthShape02: shallow finite-depth shape is distinct from the deep-water shape")
	k, z := 0.5, -0.8
	shallow, err := envir.FiniteDepth(1.0) // kh = 0.5
	if err != nil {
		tst.Fatalf("FiniteDepth: %v", err)
	}
	got := depthShape(k, z, shallow)
	infinite := math.Exp(k * z)
	if math.Abs(got-infinite) < 1e-3 {
		tst.Fatalf("shallow-depth shape (%g) should differ materially from deep-water shape (%g)", got, infinite)
	}
}

func Test_depthShape03_seaBedNoFlowConsistentWithGradient(tst *testing.T) {
	chk.PrintTitle("depthShape03: depthShapeDerivRatio vanishes at the sea bed (no-flow condition)")
	k := 0.6
	h := 3.0
	finite, err := envir.FiniteDepth(h)
	if err != nil {
		tst.Fatalf("FiniteDepth: %v", err)
	}
	ratio := depthShapeDerivRatio(k, -h, finite)
	chk.Scalar(tst, "d(shape)/dz at z=-h", 1e-9, ratio, 0)
}

func Test_incidentPotential01_finiteDepthUsesOwnDispersionWavenumber(tst *testing.T) {
	chk.PrintTitle("incidentPotential01: finite-depth incident potential is built from the finite-depth wavenumber, not the deep-water one")
	env, err := envir.NewEnvironment(1025.0, 9.80665, mustFiniteDepth(tst, 5.0))
	if err != nil {
		tst.Fatalf("NewEnvironment: %v", err)
	}
	omega := 1.0
	kFinite, err := envir.Dispersion(env.G, env.Depth, omega)
	if err != nil {
		tst.Fatalf("Dispersion: %v", err)
	}
	kDeep := omega * omega / env.G

	if math.Abs(kFinite-kDeep)/kDeep < 1e-3 {
		tst.Fatalf("fixture too deep to distinguish finite- from infinite-depth wavenumber: kFinite=%g kDeep=%g", kFinite, kDeep)
	}

	p := geo.Point{X: 1, Y: 0, Z: -1}
	phiFinite := incidentPotential(p, env, kFinite, omega, 0)
	phiUsingDeepK := incidentPotential(p, env, kDeep, omega, 0)
	if cAbsLocal(phiFinite-phiUsingDeepK) < 1e-6 {
		tst.Fatalf("incident potential did not change when the finite-depth wavenumber was used")
	}
}

func mustFiniteDepth(t *testing.T, h float64) envir.Depth {
	d, err := envir.FiniteDepth(h)
	if err != nil {
		t.Fatalf("FiniteDepth: %v", err)
	}
	return d
}

func cAbsLocal(c complex128) float64 {
	re, im := real(c), imag(c)
	return math.Sqrt(re*re + im*im)
}

// Test_finiteDepthPipeline01 drives a FiniteDepth environment through the
// full Pipeline (spec §4.6), guarding against the diffraction boundary
// condition silently reverting to the deep-water shape.
func Test_finiteDepthPipeline01(tst *testing.T) {
	chk.PrintTitle("finiteDepthPipeline01: Pipeline completes and produces finite F^X for a finite-depth environment")
	mesh, err := geo.Sphere(1.0, 6, 8)
	if err != nil {
		tst.Fatalf("Sphere: %v", err)
	}
	dofMask := [envir.NumModes]bool{true, true, true, true, true, true}
	inertia := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	body, err := envir.NewBody(1000.0, geo.Point{}, inertia, dofMask)
	if err != nil {
		tst.Fatalf("NewBody: %v", err)
	}
	depth, err := envir.FiniteDepth(5.0)
	if err != nil {
		tst.Fatalf("FiniteDepth: %v", err)
	}
	env, err := envir.NewEnvironment(1025.0, 9.80665, depth)
	if err != nil {
		tst.Fatalf("NewEnvironment: %v", err)
	}

	cfg := NewConfiguration()
	p := NewPipeline(mesh, body, env, cfg, nil)
	tables, err := p.Run(context.Background(), []float64{1.2}, []float64{0, 1.57})
	if err != nil {
		tst.Fatalf("Run: %v", err)
	}
	if tables.Status[0].Status != StatusOK {
		tst.Fatalf("frequency did not complete: %v", tables.Status[0])
	}
	for _, row := range tables.FX[0] {
		for _, v := range row {
			if math.IsNaN(real(v)) || math.IsNaN(imag(v)) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				tst.Fatalf("non-finite exciting force at finite depth: %v", row)
			}
		}
		// heave excitation is nonzero for any heading on a submerged sphere;
		// an identically-zero row here would indicate the diffraction
		// boundary condition silently collapsed (e.g. reverted to using the
		// wrong depth shape and integrated to nothing).
		if cAbsLocal(row[envir.Heave]) == 0 {
			tst.Fatalf("identically-zero heave exciting force at finite depth: %v", row)
		}
	}
}
