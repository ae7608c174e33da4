// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcerr defines the tagged error kinds returned across the BEM core.
//
// Every failure surfaced by geo, hydro, green, assembly, linalg, bem and rao
// wraps one of the Kind values below, so callers can branch with errors.Is
// instead of matching on strings.
package wcerr

import "fmt"

// Kind tags a WaveCore error with the category defined by the error surface.
type Kind int

const (
	// InvalidMesh marks a structural defect in a mesh: bad vertex index,
	// degenerate panel, required watertightness violated, or an inverted
	// orientation that could not be repaired.
	InvalidMesh Kind = iota + 1
	// InvalidInput marks an out-of-range scalar input (ω<=0, ρ<=0, a
	// direction outside [0,2π), ...).
	InvalidInput
	// NumericalFailure marks Green-function series non-convergence, a
	// non-finite intermediate value, or detected catastrophic cancellation.
	NumericalFailure
	// AssemblyFailure marks an influence-matrix entry that could not be
	// computed; it always wraps the originating NumericalFailure.
	AssemblyFailure
	// SolverDidNotConverge marks an iterative solver that exhausted
	// max_iter or detected stagnation.
	SolverDidNotConverge
	// SingularSystem marks a direct factorization that hit a zero pivot
	// under the configured pivot threshold.
	SingularSystem
	// OperationCancelled marks a per-frequency deadline or explicit
	// cancellation trigger firing before completion.
	OperationCancelled
	// ResourceExhausted marks a memory or GPU allocation failure.
	ResourceExhausted
)

func (k Kind) String() string {
	switch k {
	case InvalidMesh:
		return "InvalidMesh"
	case InvalidInput:
		return "InvalidInput"
	case NumericalFailure:
		return "NumericalFailure"
	case AssemblyFailure:
		return "AssemblyFailure"
	case SolverDidNotConverge:
		return "SolverDidNotConverge"
	case SingularSystem:
		return "SingularSystem"
	case OperationCancelled:
		return "OperationCancelled"
	case ResourceExhausted:
		return "ResourceExhausted"
	}
	return "UnknownKind"
}

// Error is a tagged, optionally-wrapping WaveCore error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, e.g. AssemblyFailure wrapping a NumericalFailure
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, &wcerr.Error{Kind: k}) match any *Error of Kind k;
// the package-level Is below takes the Kind directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error of the given Kind with a formatted message, mirroring
// the teacher's chk.Err(msg, args...) call-site shape.
func New(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...)}
}

// Wrap builds an *Error of the given Kind that wraps cause, for propagation
// policies such as AssemblyFailure wrapping NumericalFailure (spec §7).
func Wrap(kind Kind, cause error, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...), Err: cause}
}

// Is reports whether err is (or wraps) a WaveCore error of the given Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		break
	}
	return false
}
