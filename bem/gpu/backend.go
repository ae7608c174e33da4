// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the optional GPU-offload seam named by spec §5
// ("GPU offload (optional)"). No GPU binding exists anywhere in the
// retrieval pack, so this package exposes the interface and a single
// CPU-backed implementation; a real GPU backend is a future collaborator's
// concern, exactly as spec §1 treats mesh I/O and CLI orchestration.
package gpu

import "context"

// FrequencyUnit is the minimal input a Backend needs to assemble and solve
// one frequency's work, kept as a closure to avoid this package importing
// the full bem/assembly/green/envir dependency graph just for a type seam.
type FrequencyUnit struct {
	Omega float64
	Run   func(ctx context.Context) (interface{}, error)
}

// Backend assembles and solves one frequency work unit, either on CPU or
// (when a real implementation exists) on a GPU stream.
type Backend interface {
	AssembleAndSolve(ctx context.Context, unit FrequencyUnit) (interface{}, error)
}

// CPUBackend runs the frequency unit's closure directly on the calling
// goroutine's CPU worker.
type CPUBackend struct{}

func (CPUBackend) AssembleAndSolve(ctx context.Context, unit FrequencyUnit) (interface{}, error) {
	return unit.Run(ctx)
}
