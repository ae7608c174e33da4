// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sphere01(tst *testing.T) {

	chk.PrintTitle("sphere01: refined sphere area approaches analytic 4πR²")

	radius := 2.0
	coarse, err := Sphere(radius, 8, 12)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	fine, err := Sphere(radius, 32, 48)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	analytic := 4 * math.Pi * radius * radius

	errCoarse := math.Abs(totalArea(coarse)-analytic) / analytic
	errFine := math.Abs(totalArea(fine)-analytic) / analytic
	if !(errFine < errCoarse) {
		tst.Fatalf("refinement should reduce relative area error: coarse=%g fine=%g", errCoarse, errFine)
	}
	if errFine > 0.01 {
		tst.Fatalf("fine sphere area error too large: %g", errFine)
	}
}

func totalArea(m *Mesh) float64 {
	var a float64
	for _, p := range m.Panels() {
		a += p.Area
	}
	return a
}

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01: box with its top flush at z=0 is watertight and immersed")

	msh, err := Box(4, 2, 1, -0.5)
	if err != nil {
		tst.Fatalf("Box failed: %v", err)
	}
	report := msh.Validate()
	chk.IntAssert(report.NumPanels, 6)
	if !report.Watertight {
		tst.Fatalf("box should be watertight")
	}
	if !report.AllImmersed {
		tst.Fatalf("box with its top flush at z=0 should have all panels satisfy c_z<=tol")
	}
}

func Test_cylinder01(tst *testing.T) {

	chk.PrintTitle("cylinder01: watertight and correct panel topology")

	msh, err := Cylinder(1, 2, 16, -1)
	if err != nil {
		tst.Fatalf("Cylinder failed: %v", err)
	}
	if !msh.Watertight() {
		tst.Fatalf("cylinder should be watertight")
	}
}
