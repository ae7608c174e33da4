// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// pivotThreshold below which a diagonal entry is treated as a zero pivot
// (spec §7: SingularSystem "direct factorization encountered a zero pivot
// under a configured pivot threshold").
const pivotThreshold = 1e-13

// LU holds an in-place LU factorization with partial pivoting of an n×n
// complex matrix, reused across every right-hand side of one frequency
// (spec §4.5: "six radiation modes plus diffraction RHSs share one
// factorization").
type LU struct {
	n    int
	data []complex128 // combined L (unit diagonal, below) and U (on/above)
	piv  []int
}

// Factorize performs LU decomposition with partial pivoting of m, which
// must be square. m is not modified; the factorization is copied in.
func Factorize(m *Matrix) (*LU, error) {
	if m.Rows != m.Cols {
		return nil, wcerr.New(wcerr.InvalidInput, "Factorize requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	lu := &LU{n: n, data: append([]complex128(nil), m.Data...), piv: make([]int, n)}
	for i := range lu.piv {
		lu.piv[i] = i
	}

	at := func(i, j int) complex128 { return lu.data[i*n+j] }
	set := func(i, j int, v complex128) { lu.data[i*n+j] = v }

	for k := 0; k < n; k++ {
		// partial pivot: largest modulus in column k, rows k..n-1
		maxRow, maxVal := k, cmplx.Abs(at(k, k))
		for i := k + 1; i < n; i++ {
			if v := cmplx.Abs(at(i, k)); v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal < pivotThreshold {
			return nil, wcerr.New(wcerr.SingularSystem, "zero pivot at column %d (|pivot|=%g < %g)", k, maxVal, pivotThreshold)
		}
		if maxRow != k {
			for j := 0; j < n; j++ {
				lu.data[k*n+j], lu.data[maxRow*n+j] = lu.data[maxRow*n+j], lu.data[k*n+j]
			}
			lu.piv[k], lu.piv[maxRow] = lu.piv[maxRow], lu.piv[k]
		}

		pivot := at(k, k)
		for i := k + 1; i < n; i++ {
			factor := at(i, k) / pivot
			set(i, k, factor)
			for j := k + 1; j < n; j++ {
				set(i, j, at(i, j)-factor*at(k, j))
			}
		}
	}
	return lu, nil
}

// Solve returns x such that M x = b, using the cached factorization
// (forward substitution on L, back substitution on U).
func (lu *LU) Solve(b Vector) (Vector, error) {
	if len(b) != lu.n {
		return nil, wcerr.New(wcerr.InvalidInput, "Solve: rhs length %d does not match factorization size %d", len(b), lu.n)
	}
	n := lu.n
	at := func(i, j int) complex128 { return lu.data[i*n+j] }

	// apply the row permutation to b
	y := make(Vector, n)
	for i := 0; i < n; i++ {
		y[i] = b[lu.piv[i]]
	}

	// forward substitution: L y = Pb (L has unit diagonal)
	for i := 1; i < n; i++ {
		var s complex128
		for j := 0; j < i; j++ {
			s += at(i, j) * y[j]
		}
		y[i] -= s
	}

	// back substitution: U x = y
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for j := i + 1; j < n; j++ {
			s -= at(i, j) * x[j]
		}
		x[i] = s / at(i, i)
	}
	return x, nil
}

// SolveMany solves M x_k = b_k for every column of rhs, reusing the
// factorization (spec §4.5's shared-factorization contract).
func (lu *LU) SolveMany(rhs []Vector) ([]Vector, error) {
	out := make([]Vector, len(rhs))
	for i, b := range rhs {
		x, err := lu.Solve(b)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
