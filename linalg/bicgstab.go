// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/LexxSaa28/wavecore/wcerr"
)

// BiCGSTABOptions configures the BiCGSTAB solver (spec §4.5: "an
// alternative for memory-constrained cases", since it carries only a
// handful of n-vectors versus GMRES(m)'s m+1 Krylov basis vectors).
type BiCGSTABOptions struct {
	MaxIter        int
	Tolerance      float64
	Preconditioner Preconditioner
	StagnationWindow int // iterations with no relative improvement before SolverDidNotConverge
}

// BiCGSTAB solves M x = b by the stabilized bi-conjugate gradient method.
func BiCGSTAB(m *Matrix, b Vector, opts BiCGSTABOptions) (Vector, error) {
	n := m.Rows
	precond := opts.Preconditioner
	if precond == nil {
		precond = identityPreconditioner{}
	}
	window := opts.StagnationWindow
	if window <= 0 {
		window = 50
	}

	x := make(Vector, n)
	bnorm := Norm2(b)
	if bnorm == 0 {
		return x, nil
	}

	r := Sub(b, m.MulVec(x))
	rHat := append(Vector(nil), r...) // shadow residual, fixed at the start
	rho, alpha, omega := complex(1, 0), complex(1, 0), complex(1, 0)
	v := make(Vector, n)
	p := make(Vector, n)

	bestResid := Norm2(r) / bnorm
	stagnant := 0

	for iter := 0; iter < opts.MaxIter; iter++ {
		rhoNew := Dot(rHat, r)
		if cmplx128Abs(rhoNew) < 1e-300 || cmplx128Abs(omega) < 1e-300 {
			return nil, wcerr.New(wcerr.SolverDidNotConverge, "BiCGSTAB breakdown at iteration %d (rho or omega underflowed)", iter)
		}
		beta := (rhoNew / rho) * (alpha / omega)
		for i := range p {
			p[i] = r[i] + beta*(p[i]-omega*v[i])
		}
		pHat := precond.Apply(p)
		v = m.MulVec(pHat)
		alpha = rhoNew / Dot(rHat, v)

		s := make(Vector, n)
		for i := range s {
			s[i] = r[i] - alpha*v[i]
		}
		if Norm2(s)/bnorm <= opts.Tolerance {
			AXPY(alpha, pHat, x)
			return x, nil
		}

		sHat := precond.Apply(s)
		t := m.MulVec(sHat)
		omega = Dot(t, s) / Dot(t, t)

		AXPY(alpha, pHat, x)
		AXPY(omega, sHat, x)

		for i := range r {
			r[i] = s[i] - omega*t[i]
		}
		resid := Norm2(r) / bnorm
		if resid <= opts.Tolerance {
			return x, nil
		}
		if resid < bestResid*(1-1e-6) {
			bestResid = resid
			stagnant = 0
		} else {
			stagnant++
			if stagnant >= window {
				return nil, wcerr.New(wcerr.SolverDidNotConverge, "BiCGSTAB stagnated: no relative improvement in %d iterations (relative residual %g)", window, resid)
			}
		}
		rho = rhoNew
	}

	return nil, wcerr.New(wcerr.SolverDidNotConverge, "BiCGSTAB did not converge within %d iterations", opts.MaxIter)
}

func cmplx128Abs(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im // squared magnitude suffices for the underflow check
}
