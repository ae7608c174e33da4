// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LexxSaa28/wavecore/bem"
	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/hydro"
	"github.com/LexxSaa28/wavecore/validate"
)

// main runs the bundled unit-sphere self-check: validation scenario 1
// of spec.md §8 (heave at ω=√g), printed in the teacher's io.Pf* report style rather than
// driven from a .sim input file (mesh I/O and CLI orchestration are out of
// scope, per SPEC_FULL §1's Non-goals).
func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nWaveCore -- linear frequency-domain BEM solver\n\n")
	io.Pf("Copyright 2026 The WaveCore Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	const radius = 1.0
	const rho = 1000.0
	const g = 9.80665

	mesh, err := geo.Sphere(radius, 24, 32)
	if err != nil {
		chk.Panic("sphere mesh: %v", err)
	}
	io.Pf("mesh: %d panels\n", mesh.NumPanels())

	env, err := envir.NewEnvironment(rho, g, envir.InfiniteDepth())
	if err != nil {
		chk.Panic("environment: %v", err)
	}

	dofMask := [envir.NumModes]bool{false, false, true, false, false, false}
	inertia := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	placeholderBody, err := envir.NewBody(1.0, geo.Point{}, inertia, dofMask)
	if err != nil {
		chk.Panic("body: %v", err)
	}

	props, err := hydro.Compute(mesh, env, placeholderBody)
	if err != nil {
		chk.Panic("hydrostatics: %v", err)
	}
	io.Pf("hydrostatics: V=%.4f m^3, A_wp=%.4f m^2, K33=%.4f N/m\n", props.Volume, props.WaterplaneArea, props.K[2][2])

	body, err := envir.NewBody(rho*props.Volume, geo.Point{}, inertia, dofMask)
	if err != nil {
		chk.Panic("body: %v", err)
	}

	cfg := bem.NewConfiguration()
	pipeline := bem.NewPipeline(mesh, body, env, cfg, nil)

	omegas := []float64{math.Sqrt(g)}
	tables, err := pipeline.Run(context.Background(), omegas, []float64{0})
	if err != nil {
		chk.Panic("pipeline: %v", err)
	}
	if tables.Status[0].Status != bem.StatusOK {
		chk.Panic("frequency did not complete: %v", tables.Status[0])
	}

	a33 := tables.A[0][envir.Heave][envir.Heave]
	b33 := tables.B[0][envir.Heave][envir.Heave]
	io.Pf("heave at ω=%.4f rad/s: A33=%.4f kg, B33=%.4f N·s/m\n", omegas[0], a33, b33)

	res, err := validate.CompareHeavingSphere(radius, g, []float64{a33 / rho}, []float64{b33 / rho}, omegas, 5.0)
	if err != nil {
		chk.Panic("validation: %v", err)
	}
	if res.Pass {
		io.Pfgreen("PASS: heaving_sphere rms_rel_error=%.4f correlation=%.4f\n", res.RMSRelError, res.Correlation)
	} else {
		io.Pfred("FAIL: heaving_sphere rms_rel_error=%.4f correlation=%.4f\n", res.RMSRelError, res.Correlation)
	}
}
