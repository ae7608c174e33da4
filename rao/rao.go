// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rao assembles and solves the 6x6 complex motion equation that
// turns a frequency's added-mass, damping, hydrostatic-restoring, and
// exciting-force data into a Response Amplitude Operator (spec §4.7).
package rao

import (
	"github.com/LexxSaa28/wavecore/linalg"
	"github.com/LexxSaa28/wavecore/wcerr"
)

// Result is one (ω,β) RAO solve: the six complex motion transfer functions
// and, per mode, whether the system was singular to working precision at
// that mode and its entry was therefore defined as zero (spec §4.7).
type Result struct {
	H        [6]complex128
	Singular [6]bool
}

// singularRowTol is the relative row-norm threshold below which a mode's
// equation is treated as structurally singular (e.g. a zero-stiffness mode
// at ω=0), rather than handed to the direct solver to fail on.
const singularRowTol = 1e-10

// Solve builds Z(ω) = -ω²(M+A) - iωB + K^H and solves Z·H = F^X for H,
// given the body's mass matrix M, the per-frequency added-mass A and
// damping B, the hydrostatic restoring matrix K, the exciting-force vector
// FX, and the active-dof mask. Inactive dof and modes whose row of Z is
// singular to working precision are solved as H_i=0 and flagged, per
// spec §4.7: "that mode's RAO is defined as zero and flagged."
func Solve(omega float64, M, A, B [6][6]float64, K [][]float64, FX [6]complex128, dofMask [6]bool) (Result, error) {
	var res Result

	z := linalg.NewMatrix(6, 6)
	rhs := linalg.NewVector(6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v := complex(-omega*omega*(M[i][j]+A[i][j])+K[i][j], -omega*B[i][j])
			z.Set(i, j, v)
		}
		rhs[i] = FX[i]
	}

	scale := matrixScale(z)
	for i := 0; i < 6; i++ {
		if !dofMask[i] || rowIsSingular(z, i, scale) {
			res.Singular[i] = true
			regularizeRow(z, i)
			rhs[i] = 0
		}
	}

	lu, err := linalg.Factorize(z)
	if err != nil {
		return res, wcerr.Wrap(wcerr.SingularSystem, err, "RAO motion equation singular at ω=%g after regularizing flagged modes", omega)
	}
	h, err := lu.Solve(rhs)
	if err != nil {
		return res, err
	}
	for i := 0; i < 6; i++ {
		if res.Singular[i] {
			res.H[i] = 0
		} else {
			res.H[i] = h[i]
		}
	}
	return res, nil
}

// matrixScale is the max absolute entry of z, the reference scale for
// rowIsSingular's relative threshold.
func matrixScale(z *linalg.Matrix) float64 {
	var s float64
	for i := 0; i < z.Rows; i++ {
		for j := 0; j < z.Cols; j++ {
			if a := cAbs(z.At(i, j)); a > s {
				s = a
			}
		}
	}
	if s == 0 {
		return 1
	}
	return s
}

// rowIsSingular reports whether row i of z is negligible relative to
// scale, the signature of a structurally zero-stiffness, zero-inertia-
// coupling mode (e.g. surge/sway/yaw restoring at ω=0 with no current or
// mooring stiffness modeled).
func rowIsSingular(z *linalg.Matrix, i int, scale float64) bool {
	var norm float64
	for j := 0; j < z.Cols; j++ {
		norm += cAbs(z.At(i, j))
	}
	return norm < singularRowTol*scale
}

// regularizeRow replaces row i of z with the i-th identity row, so the
// flagged mode decouples cleanly from the direct solve instead of leaving
// the whole 6x6 system singular.
func regularizeRow(z *linalg.Matrix, i int) {
	for j := 0; j < z.Cols; j++ {
		if j == i {
			z.Set(i, j, 1)
		} else {
			z.Set(i, j, 0)
		}
	}
}

func cAbs(c complex128) float64 {
	re, im := real(c), imag(c)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	if re > im {
		return re
	}
	return im
}
