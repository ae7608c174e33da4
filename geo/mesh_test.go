// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"errors"
	"testing"

	"github.com/LexxSaa28/wavecore/wcerr"
	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01: box watertightness and area-normal invariant")

	msh, err := Box(4, 2, 1, -0.5)
	if err != nil {
		tst.Fatalf("Box failed: %v", err)
	}
	if !msh.Watertight() {
		tst.Fatalf("box should be watertight")
	}
	chk.IntAssert(msh.NumPanels(), 6)

	// sum of panel area*normal must vanish for a closed surface (spec §8)
	var sx, sy, sz float64
	for _, p := range msh.Panels() {
		sx += p.Area * p.Normal.X
		sy += p.Area * p.Normal.Y
		sz += p.Area * p.Normal.Z
	}
	chk.Scalar(tst, "sum Ax", 1e-10, sx, 0)
	chk.Scalar(tst, "sum Ay", 1e-10, sy, 0)
	chk.Scalar(tst, "sum Az", 1e-10, sz, 0)
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02: out-of-range vertex index is InvalidMesh")

	verts := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	_, err := New(verts, [][]int{{0, 1, 5}})
	if err == nil {
		tst.Fatalf("expected InvalidMesh error")
	}
	if !wcerr.Is(err, wcerr.InvalidMesh) {
		tst.Fatalf("expected InvalidMesh kind, got %v", err)
	}
	if !errors.As(err, new(*wcerr.Error)) {
		tst.Fatalf("expected *wcerr.Error")
	}
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("mesh03: degenerate panel rejected")

	verts := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1e-12, 0}}
	_, err := New(verts, [][]int{{0, 1, 2}})
	if !wcerr.Is(err, wcerr.InvalidMesh) {
		tst.Fatalf("expected InvalidMesh for degenerate panel, got %v", err)
	}
}

func Test_mesh04(tst *testing.T) {

	chk.PrintTitle("mesh04: transform preserves panel count and watertightness")

	msh, err := Sphere(1, 8, 12)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	moved, err := msh.Transform(Translation(10, -5, -1))
	if err != nil {
		tst.Fatalf("Transform failed: %v", err)
	}
	chk.IntAssert(moved.NumPanels(), msh.NumPanels())
	if !moved.Watertight() {
		tst.Fatalf("translated sphere should remain watertight")
	}
	chk.Scalar(tst, "moved centroid x - orig centroid x", 1e-9,
		moved.Panels()[0].Centroid.X-msh.Panels()[0].Centroid.X, 10)
}
