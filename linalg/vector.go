// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Vector is a dense complex vector (panel potentials φ, boundary data q).
type Vector []complex128

// NewVector allocates a zeroed vector of length n.
func NewVector(n int) Vector { return make(Vector, n) }

// Dot returns the unconjugated bilinear form Σ a_i*b_i (used for the
// shadow-residual inner product in BiCGSTAB, where the classical algorithm
// is defined with a bilinear, not Hermitian, pairing), via
// gonum/cmplxs.Dot per SPEC_FULL §3's domain-stack wiring.
func Dot(a, b Vector) complex128 { return cmplxs.Dot(a, b) }

// InnerProduct returns the Hermitian inner product <a,b> = Σ conj(a_i)*b_i,
// the pairing GMRES's Arnoldi orthogonalization needs.
func InnerProduct(a, b Vector) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}
	return s
}

// Norm2 returns the Euclidean (L2) norm. gonum/cmplxs has no norm
// reduction for complex slices, so this is hand-rolled — a single-line
// sqrt(Σ|x_i|^2) reduction, not worth a dependency on its own.
func Norm2(v Vector) float64 {
	var s float64
	for _, x := range v {
		a := cmplx.Abs(x)
		s += a * a
	}
	return math.Sqrt(s)
}

// AXPY computes y += alpha*x in place.
func AXPY(alpha complex128, x Vector, y Vector) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

// Scale returns alpha*v as a new vector.
func Scale(alpha complex128, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = alpha * x
	}
	return out
}

// Sub returns a-b as a new vector.
func Sub(a, b Vector) Vector {
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
