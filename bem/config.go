// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bem orchestrates, per (frequency, direction): boundary-condition
// construction, assembly, solve, pressure integration, and accumulation
// into added-mass/damping/exciting-force tables, per spec §4.6.
package bem

import (
	"time"

	"github.com/LexxSaa28/wavecore/assembly"
	"github.com/LexxSaa28/wavecore/green"
	"github.com/LexxSaa28/wavecore/linalg"
)

// GPUOptions is the optional GPU-offload configuration named by spec §5/§6;
// no GPU binding exists anywhere in the retrieval pack, so Enabled only
// ever routes through bem/gpu's CPUBackend (see bem/gpu/backend.go).
type GPUOptions struct {
	Enabled            bool
	DeviceIndex        int
	FallbackOnFailure  bool
}

// ParallelismOptions governs the two concurrency axes of spec §5.
type ParallelismOptions struct {
	Threads           int
	FrequencyParallel bool
}

// SparsificationOptions is spec §6's `sparsification` option.
type SparsificationOptions struct {
	Enabled   bool
	Threshold float64
	Bandwidth int
}

// Configuration is the immutable value handed to the Pipeline constructor,
// replacing the teacher's filesystem-copy "switching" with explicit fields
// (spec §9 DESIGN NOTES).
type Configuration struct {
	GreenMethod       green.Method
	FormulationAlpha  float64
	Solver            linalg.SolverConfig
	Assembly          assembly.Config
	Parallelism       ParallelismOptions
	GPU               GPUOptions
	Sparsification    SparsificationOptions
	FrequencyDeadline time.Duration
	FailFast          bool
}

// Option is a functional option over Configuration (spec §9: "explicit
// immutable Configuration value").
type Option func(*Configuration)

// NewConfiguration builds a Configuration from the spec §6 defaults,
// applying opts in order.
func NewConfiguration(opts ...Option) *Configuration {
	cfg := &Configuration{
		GreenMethod:       green.Delhommeau,
		FormulationAlpha:  0.5,
		Solver:            linalg.DefaultSolverConfig(),
		Assembly:          assembly.DefaultConfig(),
		Parallelism:       ParallelismOptions{Threads: 4, FrequencyParallel: true},
		GPU:               GPUOptions{Enabled: false, DeviceIndex: 0, FallbackOnFailure: true},
		Sparsification:    SparsificationOptions{Enabled: false},
		FrequencyDeadline: 0, // 0 = no deadline
		FailFast:          false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithGreenMethod(m green.Method) Option { return func(c *Configuration) { c.GreenMethod = m } }

func WithFormulationAlpha(alpha float64) Option {
	return func(c *Configuration) { c.FormulationAlpha = alpha }
}

func WithSolver(s linalg.SolverConfig) Option { return func(c *Configuration) { c.Solver = s } }

func WithAssembly(a assembly.Config) Option { return func(c *Configuration) { c.Assembly = a } }

func WithParallelism(threads int, frequencyParallel bool) Option {
	return func(c *Configuration) { c.Parallelism = ParallelismOptions{Threads: threads, FrequencyParallel: frequencyParallel} }
}

func WithGPU(enabled bool, deviceIndex int, fallback bool) Option {
	return func(c *Configuration) { c.GPU = GPUOptions{Enabled: enabled, DeviceIndex: deviceIndex, FallbackOnFailure: fallback} }
}

func WithSparsification(threshold float64, bandwidth int) Option {
	return func(c *Configuration) {
		c.Sparsification = SparsificationOptions{Enabled: true, Threshold: threshold, Bandwidth: bandwidth}
	}
}

func WithFrequencyDeadline(d time.Duration) Option {
	return func(c *Configuration) { c.FrequencyDeadline = d }
}

func WithFailFast(failFast bool) Option { return func(c *Configuration) { c.FailFast = failFast } }
