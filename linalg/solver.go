// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

// SolverKind selects the linear-solver strategy (spec §6's
// `linear_solver` configuration option), a closed tagged variant per
// REDESIGN FLAGS.
type SolverKind int

const (
	Direct SolverKind = iota
	IterativeGMRES
	IterativeBiCGSTAB
	Adaptive
)

// SolverConfig bundles every knob named by spec §4.5/§6; zero-value fields
// fall back to the defaults named there.
type SolverConfig struct {
	Kind             SolverKind
	NDirect          int // Adaptive's direct/iterative crossover (default 2000)
	GMRESRestart     int
	Tolerance        float64
	MaxIter          int
	Preconditioner   string // "jacobi" | "ilu0" | ""
	StagnationWindow int
}

// DefaultSolverConfig returns the defaults named in spec §4.5/§6.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Kind:         Adaptive,
		NDirect:      2000,
		GMRESRestart: 30,
		Tolerance:    1e-6,
		MaxIter:      1000,
	}
}

// Solve dispatches to Direct, GMRES, or BiCGSTAB per cfg.Kind, resolving
// Adaptive by matrix size against cfg.NDirect (spec §4.5).
func Solve(m *Matrix, b Vector, cfg SolverConfig) (Vector, error) {
	if cfg.GMRESRestart <= 0 {
		cfg.GMRESRestart = 30
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1e-6
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1000
	}
	kind := cfg.Kind
	if kind == Adaptive {
		nDirect := cfg.NDirect
		if nDirect <= 0 {
			nDirect = 2000
		}
		if m.Rows <= nDirect {
			kind = Direct
		} else {
			kind = IterativeGMRES
		}
	}

	switch kind {
	case Direct:
		lu, err := Factorize(m)
		if err != nil {
			return nil, err
		}
		return lu.Solve(b)
	case IterativeGMRES:
		return GMRES(m, b, GMRESOptions{
			Restart:        cfg.GMRESRestart,
			MaxIter:        cfg.MaxIter,
			Tolerance:      cfg.Tolerance,
			Preconditioner: buildPreconditioner(m, cfg.Preconditioner),
		})
	case IterativeBiCGSTAB:
		return BiCGSTAB(m, b, BiCGSTABOptions{
			MaxIter:          cfg.MaxIter,
			Tolerance:        cfg.Tolerance,
			Preconditioner:   buildPreconditioner(m, cfg.Preconditioner),
			StagnationWindow: cfg.StagnationWindow,
		})
	default:
		lu, err := Factorize(m)
		if err != nil {
			return nil, err
		}
		return lu.Solve(b)
	}
}

func buildPreconditioner(m *Matrix, kind string) Preconditioner {
	switch kind {
	case "ilu0":
		p, err := NewILU0Preconditioner(m)
		if err != nil {
			return NewJacobiPreconditioner(m) // fall back rather than fail the solve on a preconditioner-only error
		}
		return p
	case "jacobi":
		return NewJacobiPreconditioner(m)
	default:
		return NewJacobiPreconditioner(m)
	}
}
