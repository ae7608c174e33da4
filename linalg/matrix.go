// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg is a from-scratch complex dense linear-algebra kernel:
// the N×N influence matrices of spec §3 and the solvers of spec §4.5 have
// no home in gosl/la (real-valued, built for FEM stiffness matrices) or
// gonum/mat (no complex128 dense type), so this package provides the
// minimal complex Matrix/Vector types and the direct/iterative solvers
// the BEM pipeline needs.
package linalg

import (
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// Matrix is a row-major dense complex matrix, the shape S and D take in
// assembly (spec §3: "complex N×N matrices").
type Matrix struct {
	Rows, Cols int
	Data       []complex128
}

// NewMatrix allocates a zeroed r×c matrix, mirroring gosl/la.MatAlloc's
// allocate-then-fill idiom but for the complex case la.MatAlloc cannot serve.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{Rows: r, Cols: c, Data: make([]complex128, r*c)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func (m *Matrix) At(i, j int) complex128   { return m.Data[i*m.Cols+j] }
func (m *Matrix) Set(i, j int, v complex128) { m.Data[i*m.Cols+j] = v }
func (m *Matrix) Add(i, j int, v complex128) { m.Data[i*m.Cols+j] += v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// AXPBY computes dst = alpha*a + beta*b element-wise, returning a new
// matrix; a and b must share shape.
func AXPBY(alpha complex128, a *Matrix, beta complex128, b *Matrix) *Matrix {
	out := NewMatrix(a.Rows, a.Cols)
	for i := range out.Data {
		out.Data[i] = alpha*a.Data[i] + beta*b.Data[i]
	}
	return out
}

// MulVec computes y = M*x.
func (m *Matrix) MulVec(x Vector) Vector {
	y := make(Vector, m.Rows)
	for i := 0; i < m.Rows; i++ {
		var s complex128
		row := m.Data[i*m.Cols : i*m.Cols+m.Cols]
		for j, v := range row {
			s += v * x[j]
		}
		y[i] = s
	}
	return y
}

// MaxAbs returns the maximum modulus among all entries, used for the
// symmetry/positive-semi-definiteness tolerance checks of spec §8
// ("to within 10^-8·max|A|").
func (m *Matrix) MaxAbs() float64 {
	var mx float64
	for _, v := range m.Data {
		if a := cmplx.Abs(v); a > mx {
			mx = a
		}
	}
	return mx
}

// IsFinite reports whether every entry is finite (no NaN/Inf), the
// assembly-time check named by spec §4.4/§7.
func (m *Matrix) IsFinite() bool {
	for _, v := range m.Data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// RequireFinite returns an AssemblyFailure-wrapping error if any entry is
// non-finite, per spec §4.4 ("fails with AssemblyFailure ... no partial
// matrix is ever returned").
func (m *Matrix) RequireFinite(name string) error {
	if !m.IsFinite() {
		return wcerr.New(wcerr.AssemblyFailure, "%s contains a non-finite entry", name)
	}
	return nil
}
