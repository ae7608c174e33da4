// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envir

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_dispersion01(tst *testing.T) {

	chk.PrintTitle("dispersion01: infinite depth closed form")

	g := 9.80665
	for _, omega := range utl.LinSpace(0.1, 3.0, 10) {
		k, err := Dispersion(g, InfiniteDepth(), omega)
		if err != nil {
			tst.Fatalf("Dispersion failed: %v", err)
		}
		chk.Scalar(tst, "k", 1e-12, k, omega*omega/g)
	}
}

func Test_dispersion02(tst *testing.T) {

	chk.PrintTitle("dispersion02: finite-depth root satisfies the relation to 1e-10 (spec §8)")

	g := 9.80665
	depth, err := FiniteDepth(20)
	if err != nil {
		tst.Fatalf("FiniteDepth failed: %v", err)
	}
	for _, omega := range utl.LinSpace(0.1, 4.0, 20) {
		k, err := Dispersion(g, depth, omega)
		if err != nil {
			tst.Fatalf("Dispersion failed: %v", err)
		}
		residual := math.Abs(omega*omega-g*k*math.Tanh(k*depth.Value())) / (omega * omega)
		if residual > 1e-10 {
			tst.Fatalf("dispersion residual too large for omega=%g: %g", omega, residual)
		}
	}
}

func Test_wave01(tst *testing.T) {

	chk.PrintTitle("wave01: invalid inputs rejected")

	env := FreshWater()
	if _, err := NewWave(env, 0, 0); err == nil {
		tst.Fatalf("expected error for omega<=0")
	}
	if _, err := NewWave(env, 1.0, 7.0); err == nil {
		tst.Fatalf("expected error for beta outside [0,2pi)")
	}
	w, err := NewWave(env, math.Sqrt(env.G), math.Pi)
	if err != nil {
		tst.Fatalf("NewWave failed: %v", err)
	}
	chk.Scalar(tst, "k", 1e-9, w.K, env.G/env.G) // k = omega^2/g = g/g = 1 for omega=sqrt(g)
}
