// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rao

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func diag6(v [6]float64) [6][6]float64 {
	var m [6][6]float64
	for i := 0; i < 6; i++ {
		m[i][i] = v[i]
	}
	return m
}

func diag6Slice(v [6]float64) [][]float64 {
	m := make([][]float64, 6)
	for i := range m {
		m[i] = make([]float64, 6)
		m[i][i] = v[i]
	}
	return m
}

func Test_raoDiagonal01(tst *testing.T) {
	chk.PrintTitle("raoDiagonal01: uncoupled diagonal system solves mode-by-mode")
	M := diag6([6]float64{1000, 1000, 1000, 500, 500, 500})
	A := diag6([6]float64{200, 200, 300, 50, 50, 50})
	B := diag6([6]float64{100, 100, 150, 20, 20, 20})
	K := diag6Slice([6]float64{0, 0, 9000, 0, 4000, 0})
	FX := [6]complex128{0, 0, complex(1000, 0), 0, 0, 0}
	dofMask := [6]bool{true, true, true, true, true, true}

	res, err := Solve(1.0, M, A, B, K, FX, dofMask)
	if err != nil {
		tst.Fatalf("Solve: %v", err)
	}
	if res.Singular[2] {
		tst.Fatalf("heave unexpectedly flagged singular")
	}

	zHeave := complex(-1.0*1.0*(1000+300)+9000, -1.0*150)
	want := FX[2] / zHeave
	chk.Scalar(tst, "Re(H3)", 1e-9, real(res.H[2]), real(want))
	chk.Scalar(tst, "Im(H3)", 1e-9, imag(res.H[2]), imag(want))
}

func Test_raoSingularAtZeroFrequency01(tst *testing.T) {
	chk.PrintTitle("raoSingularAtZeroFrequency01: zero-stiffness surge at ω=0 is flagged and zeroed")
	M := diag6([6]float64{1000, 1000, 1000, 500, 500, 500})
	A := diag6([6]float64{200, 200, 300, 50, 50, 50})
	B := diag6([6]float64{100, 100, 150, 20, 20, 20})
	K := diag6Slice([6]float64{0, 0, 9000, 0, 4000, 0})
	FX := [6]complex128{complex(500, 0), 0, complex(1000, 0), 0, 0, 0}
	dofMask := [6]bool{true, true, true, true, true, true}

	res, err := Solve(0.0, M, A, B, K, FX, dofMask)
	if err != nil {
		tst.Fatalf("Solve: %v", err)
	}
	if !res.Singular[0] {
		tst.Fatalf("surge at ω=0 with zero stiffness should be flagged singular")
	}
	if res.H[0] != 0 {
		tst.Fatalf("surge RAO should be defined as zero, got %v", res.H[0])
	}
	if res.Singular[2] {
		tst.Fatalf("heave (nonzero stiffness) should not be flagged at ω=0")
	}
}

func Test_raoInactiveDof01(tst *testing.T) {
	chk.PrintTitle("raoInactiveDof01: inactive dof solves to zero and is flagged")
	M := diag6([6]float64{1000, 1000, 1000, 500, 500, 500})
	A := diag6([6]float64{200, 200, 300, 50, 50, 50})
	B := diag6([6]float64{100, 100, 150, 20, 20, 20})
	K := diag6Slice([6]float64{8000, 0, 9000, 0, 4000, 0})
	FX := [6]complex128{complex(500, 0), 0, complex(1000, 0), 0, 0, 0}
	dofMask := [6]bool{false, true, true, true, true, true}

	res, err := Solve(1.0, M, A, B, K, FX, dofMask)
	if err != nil {
		tst.Fatalf("Solve: %v", err)
	}
	if !res.Singular[0] {
		tst.Fatalf("inactive surge dof should be flagged")
	}
	if res.H[0] != 0 {
		tst.Fatalf("inactive surge dof RAO should be zero, got %v", res.H[0])
	}
}
