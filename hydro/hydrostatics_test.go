// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"testing"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/cpmech/gosl/chk"
)

// Test_hydrostatics01 reproduces spec §8 end-to-end scenario 3: a half
// submerged 4x2x1 m box, ρ=1000 kg/m³, g=9.80665 m/s².
func Test_hydrostatics01(tst *testing.T) {

	chk.PrintTitle("hydrostatics01: half-submerged box (spec §8 scenario 3)")

	msh, err := geo.Box(4, 2, 1, 0) // zCenter=0: z in [-0.5, 0.5], half submerged
	if err != nil {
		tst.Fatalf("Box failed: %v", err)
	}
	env, err := envir.NewEnvironment(1000, 9.80665, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("NewEnvironment failed: %v", err)
	}

	props, err := Compute(msh, env, nil)
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}

	chk.Scalar(tst, "V", 1e-9, props.Volume, 4)
	chk.Scalar(tst, "A_wp", 1e-9, props.WaterplaneArea, 8)

	kExpected := env.Rho * env.G * props.WaterplaneArea
	chk.Scalar(tst, "K33", 1e-6, props.K[2][2], kExpected)
	chk.Scalar(tst, "K33 literal", 1.0, props.K[2][2], 78453.2) // ±1 in the last digit, per spec

	// symmetry of K
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			chk.Scalar(tst, "K symmetric", 1e-9, props.K[i][j], props.K[j][i])
		}
	}
}

func Test_hydrostatics02(tst *testing.T) {

	chk.PrintTitle("hydrostatics02: fully submerged sphere has zero waterplane area")

	msh, err := geo.Sphere(1, 24, 36)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	env := envir.FreshWater()
	props, err := Compute(msh, env, nil)
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	chk.Scalar(tst, "A_wp", 1e-9, props.WaterplaneArea, 0)
	analyticV := 4.0 / 3.0 * 3.14159265358979 * 1 * 1 * 1
	relErr := (props.Volume - analyticV) / analyticV
	if relErr > 0.02 || relErr < -0.02 {
		tst.Fatalf("sphere volume relative error too large: %g (V=%g analytic=%g)", relErr, props.Volume, analyticV)
	}
}
