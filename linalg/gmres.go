// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// Preconditioner applies an approximate inverse to a residual vector.
type Preconditioner interface {
	Apply(r Vector) Vector
}

// JacobiPreconditioner is the left-Jacobi (diagonal-scaling) preconditioner
// named by spec §4.5.
type JacobiPreconditioner struct {
	inv Vector // 1/diag(M)
}

// NewJacobiPreconditioner builds the diagonal preconditioner from m.
func NewJacobiPreconditioner(m *Matrix) *JacobiPreconditioner {
	inv := make(Vector, m.Rows)
	for i := 0; i < m.Rows; i++ {
		d := m.At(i, i)
		if cmplx.Abs(d) < pivotThreshold {
			d = complex(pivotThreshold, 0)
		}
		inv[i] = 1 / d
	}
	return &JacobiPreconditioner{inv: inv}
}

func (p *JacobiPreconditioner) Apply(r Vector) Vector {
	out := make(Vector, len(r))
	for i, v := range r {
		out[i] = p.inv[i] * v
	}
	return out
}

// ILU0Preconditioner is incomplete LU(0): an LU factorization restricted to
// the sparsity pattern of m (here, the dense pattern, since assembly's
// default layout is dense — ILU(0) on a dense matrix degenerates to the
// full LU, which is still a valid, if expensive, preconditioner and is
// used only for the memory-constrained iterative path named in spec §4.5).
type ILU0Preconditioner struct {
	lu *LU
}

// NewILU0Preconditioner factorizes m (no fill-in control beyond the dense
// pattern already present).
func NewILU0Preconditioner(m *Matrix) (*ILU0Preconditioner, error) {
	lu, err := Factorize(m)
	if err != nil {
		return nil, err
	}
	return &ILU0Preconditioner{lu: lu}, nil
}

func (p *ILU0Preconditioner) Apply(r Vector) Vector {
	x, err := p.lu.Solve(r)
	if err != nil {
		// Solve only fails on a length mismatch, which cannot happen here;
		// fall back to the unpreconditioned residual rather than panic.
		return r
	}
	return x
}

// GMRESOptions configures restarted GMRES(m) (spec §4.5).
type GMRESOptions struct {
	Restart         int // m in GMRES(m)
	MaxIter         int
	Tolerance       float64
	Preconditioner  Preconditioner
}

// GMRES solves M x = b by restarted GMRES(m), returning SolverDidNotConverge
// if the relative residual does not reach Tolerance within MaxIter total
// matrix-vector products (spec §4.5's convergence contract).
func GMRES(m *Matrix, b Vector, opts GMRESOptions) (Vector, error) {
	n := m.Rows
	restart := opts.Restart
	if restart <= 0 || restart > n {
		restart = n
	}
	precond := opts.Preconditioner
	if precond == nil {
		precond = identityPreconditioner{}
	}

	x := make(Vector, n) // x0 = 0
	bnorm := Norm2(b)
	if bnorm == 0 {
		return x, nil
	}

	totalIter := 0
	for totalIter < opts.MaxIter {
		r := Sub(b, m.MulVec(x))
		r = precond.Apply(r)
		beta := Norm2(r)
		if beta/bnorm <= opts.Tolerance {
			return x, nil
		}

		k := restart
		if totalIter+k > opts.MaxIter {
			k = opts.MaxIter - totalIter
		}
		v := make([]Vector, k+1)
		h := make([][]complex128, k+1)
		for i := range h {
			h[i] = make([]complex128, k)
		}
		v[0] = Scale(complex(1/beta, 0), r)

		var kDone int
		for j := 0; j < k; j++ {
			kDone = j + 1
			w := precond.Apply(m.MulVec(v[j]))
			for i := 0; i <= j; i++ {
				h[i][j] = InnerProduct(v[i], w)
				AXPY(-h[i][j], v[i], w)
			}
			h[j+1][j] = complex(Norm2(w), 0)
			totalIter++
			if cmplx.Abs(h[j+1][j]) < 1e-14 {
				break // lucky breakdown: exact solution lies in the Krylov space
			}
			v[j+1] = Scale(1/h[j+1][j], w)
		}

		y, resNorm := leastSquaresHessenberg(h, beta, kDone)
		for j := 0; j < kDone; j++ {
			AXPY(y[j], v[j], x)
		}
		if resNorm/bnorm <= opts.Tolerance {
			return x, nil
		}
	}

	r := Sub(b, m.MulVec(x))
	if Norm2(r)/bnorm <= opts.Tolerance {
		return x, nil
	}
	return nil, wcerr.New(wcerr.SolverDidNotConverge, "GMRES(%d) did not converge within %d iterations (relative residual %g > tol %g)", restart, opts.MaxIter, Norm2(r)/bnorm, opts.Tolerance)
}

type identityPreconditioner struct{}

func (identityPreconditioner) Apply(r Vector) Vector { return r }

// leastSquaresHessenberg solves the small (k+1)xk upper-Hessenberg
// least-squares system of Arnoldi's reduction by Givens rotations, and
// returns the combination coefficients y and the resulting residual norm.
func leastSquaresHessenberg(h [][]complex128, beta float64, k int) (Vector, float64) {
	g := make([]complex128, k+1)
	g[0] = complex(beta, 0)

	cs := make([]complex128, k)
	sn := make([]complex128, k)
	r := make([][]complex128, k+1)
	for i := range r {
		r[i] = append([]complex128(nil), h[i][:k]...)
	}

	for i := 0; i < k; i++ {
		for p := 0; p < i; p++ {
			t1, t2 := r[p][i], r[p+1][i]
			r[p][i] = cmplx.Conj(cs[p])*t1 + cmplx.Conj(sn[p])*t2
			r[p+1][i] = -sn[p]*t1 + cs[p]*t2
		}
		denom := cmplx.Sqrt(r[i][i]*cmplx.Conj(r[i][i]) + r[i+1][i]*cmplx.Conj(r[i+1][i]))
		if cmplx.Abs(denom) < 1e-300 {
			cs[i], sn[i] = 1, 0
		} else {
			cs[i] = r[i][i] / denom
			sn[i] = r[i+1][i] / denom
		}
		r[i][i] = cs[i]*r[i][i] + sn[i]*r[i+1][i]
		r[i+1][i] = 0

		t1, t2 := g[i], g[i+1]
		g[i] = cmplx.Conj(cs[i])*t1 + cmplx.Conj(sn[i])*t2
		g[i+1] = -sn[i]*t1 + cs[i]*t2
	}

	y := make(Vector, k)
	for i := k - 1; i >= 0; i-- {
		s := g[i]
		for j := i + 1; j < k; j++ {
			s -= r[i][j] * y[j]
		}
		y[i] = s / r[i][i]
	}
	return y, cmplx.Abs(g[k])
}
