// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func sampleMatrix() *Matrix {
	m := NewMatrix(3, 3)
	vals := []complex128{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	}
	copy(m.Data, vals)
	// bias the diagonal with a small imaginary part so the system is
	// genuinely complex, not accidentally real.
	m.Add(0, 0, complex(0, 0.1))
	m.Add(1, 1, complex(0, 0.2))
	m.Add(2, 2, complex(0, 0.15))
	return m
}

func Test_lu01(tst *testing.T) {
	chk.PrintTitle("lu01: direct solve residual")
	m := sampleMatrix()
	b := Vector{complex(1, 0), complex(2, -1), complex(0, 1)}

	lu, err := Factorize(m)
	if err != nil {
		tst.Fatalf("Factorize failed: %v", err)
	}
	x, err := lu.Solve(b)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	r := Sub(b, m.MulVec(x))
	resid := Norm2(r) / Norm2(b)
	if resid > 1e-10 {
		tst.Fatalf("residual too large: %g", resid)
	}
}

func Test_lu02_singular(tst *testing.T) {
	chk.PrintTitle("lu02: singular matrix returns SingularSystem")
	m := NewMatrix(2, 2)
	// identical rows -> singular
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 1)
	m.Set(1, 1, 2)
	_, err := Factorize(m)
	if err == nil {
		tst.Fatalf("expected SingularSystem error, got nil")
	}
}

func Test_gmres01(tst *testing.T) {
	chk.PrintTitle("gmres01: GMRES matches direct solve")
	m := sampleMatrix()
	b := Vector{complex(1, 0), complex(2, -1), complex(0, 1)}

	xDirect, err := Solve(m, b, SolverConfig{Kind: Direct})
	if err != nil {
		tst.Fatalf("direct solve failed: %v", err)
	}
	xGMRES, err := Solve(m, b, SolverConfig{Kind: IterativeGMRES, GMRESRestart: 3, MaxIter: 100, Tolerance: 1e-10, Preconditioner: "jacobi"})
	if err != nil {
		tst.Fatalf("GMRES failed: %v", err)
	}
	diff := Norm2(Sub(xDirect, xGMRES)) / Norm2(xDirect)
	if diff > 1e-6 {
		tst.Fatalf("GMRES solution diverges from direct: relative diff %g", diff)
	}
}

func Test_bicgstab01(tst *testing.T) {
	chk.PrintTitle("bicgstab01: BiCGSTAB matches direct solve")
	m := sampleMatrix()
	b := Vector{complex(1, 0), complex(2, -1), complex(0, 1)}

	xDirect, err := Solve(m, b, SolverConfig{Kind: Direct})
	if err != nil {
		tst.Fatalf("direct solve failed: %v", err)
	}
	xBiCG, err := Solve(m, b, SolverConfig{Kind: IterativeBiCGSTAB, MaxIter: 200, Tolerance: 1e-10, Preconditioner: "jacobi"})
	if err != nil {
		tst.Fatalf("BiCGSTAB failed: %v", err)
	}
	diff := Norm2(Sub(xDirect, xBiCG)) / Norm2(xDirect)
	if diff > 1e-6 {
		tst.Fatalf("BiCGSTAB solution diverges from direct: relative diff %g", diff)
	}
}

func Test_adaptive01(tst *testing.T) {
	chk.PrintTitle("adaptive01: Adaptive dispatches to Direct below NDirect")
	m := sampleMatrix()
	b := Vector{complex(1, 0), complex(2, -1), complex(0, 1)}
	cfg := DefaultSolverConfig()
	cfg.NDirect = 10 // matrix has 3 rows, so Adaptive must choose Direct
	x, err := Solve(m, b, cfg)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	resid := Norm2(Sub(b, m.MulVec(x))) / Norm2(b)
	if resid > 1e-9 {
		tst.Fatalf("residual too large: %g", resid)
	}
}
