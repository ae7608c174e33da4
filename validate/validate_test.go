// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_legendreP01(tst *testing.T) {
	chk.PrintTitle("legendreP01: low-order Legendre polynomials match closed forms")
	x := 0.37
	chk.Scalar(tst, "P0", 1e-12, legendreP(0, x), 1)
	chk.Scalar(tst, "P1", 1e-12, legendreP(1, x), x)
	chk.Scalar(tst, "P2", 1e-10, legendreP(2, x), 0.5*(3*x*x-1))
	chk.Scalar(tst, "P3", 1e-10, legendreP(3, x), 0.5*(5*x*x*x-3*x))
}

func Test_hulmeSeries01(tst *testing.T) {
	chk.PrintTitle("hulmeSeries01: Hulme series is finite and damping is non-negative")
	omegas := []float64{0.5, 1.0, 1.5, 2.0, 2.5}
	points, err := HulmeSeries(1.0, 9.80665, omegas)
	if err != nil {
		tst.Fatalf("HulmeSeries: %v", err)
	}
	for _, p := range points {
		if math.IsNaN(p.Mu33) || math.IsInf(p.Mu33, 0) {
			tst.Errorf("non-finite Mu33 at ω=%g", p.Omega)
		}
		if p.Lam33 < -1e-9 {
			tst.Errorf("negative Lam33=%g at ω=%g", p.Lam33, p.Omega)
		}
	}
}

func Test_hulmeSeries02_invalidInput(tst *testing.T) {
	chk.PrintTitle("hulmeSeries02: non-positive radius/frequency rejected")
	if _, err := HulmeSeries(-1, 9.80665, []float64{1.0}); err == nil {
		tst.Fatalf("expected error for negative radius")
	}
	if _, err := HulmeSeries(1.0, 9.80665, []float64{0}); err == nil {
		tst.Fatalf("expected error for zero frequency")
	}
}

func Test_compareHeavingSphere01(tst *testing.T) {
	chk.PrintTitle("compareHeavingSphere01: candidate matching the series passes")
	omegas := []float64{0.6, 0.9, 1.2}
	points, err := HulmeSeries(1.0, 9.80665, omegas)
	if err != nil {
		tst.Fatalf("HulmeSeries: %v", err)
	}
	norm := 2 * math.Pi / 3
	a33 := make([]float64, len(points))
	b33 := make([]float64, len(points))
	for i, p := range points {
		a33[i] = p.Mu33 * norm
		b33[i] = p.Lam33 * norm * omegas[i]
	}

	res, err := CompareHeavingSphere(1.0, 9.80665, a33, b33, omegas, 5.0)
	if err != nil {
		tst.Fatalf("CompareHeavingSphere: %v", err)
	}
	if !res.Pass {
		tst.Fatalf("exact match should pass, got %+v", res)
	}
}

func Test_compareWigleyHeave01(tst *testing.T) {
	chk.PrintTitle("compareWigleyHeave01: samples matching the bundled table pass")
	samples := make([]SamplePoint, len(wigleyHeaveHeadSeas))
	for i, r := range wigleyHeaveHeadSeas {
		samples[i] = SamplePoint{Omega: r.Omega, Beta: r.Beta, Mode: r.Mode, Magnitude: r.Magnitude, PhaseDeg: r.PhaseDeg}
	}
	res := CompareWigleyHeave(samples)
	if !res.Pass {
		tst.Fatalf("exact match against bundled table should pass, got %+v", res)
	}
}

func Test_compareDTMBRoll01_outOfTolerance(tst *testing.T) {
	chk.PrintTitle("compareDTMBRoll01: a grossly wrong sample fails")
	samples := []SamplePoint{
		{Omega: 1.0, Beta: 1.57079633, Mode: 3, Magnitude: 5.0, PhaseDeg: 60.0},
	}
	res := CompareDTMBRoll(samples)
	if res.Pass {
		tst.Fatalf("a 5x-too-large magnitude should fail tolerance")
	}
}
