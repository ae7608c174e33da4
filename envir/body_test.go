// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envir

import (
	"testing"

	"github.com/LexxSaa28/wavecore/geo"
	"github.com/cpmech/gosl/chk"
)

func Test_body01(tst *testing.T) {

	chk.PrintTitle("body01: mass matrix assembly and invalid-inertia rejection")

	inertia := [3][3]float64{{100, 0, 0}, {0, 200, 0}, {0, 0, 250}}
	var mask [NumModes]bool
	for i := range mask {
		mask[i] = true
	}
	b, err := NewBody(1.0e6, geo.Point{}, inertia, mask)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	m := b.MassMatrix()
	chk.Scalar(tst, "m00", 1e-9, m[0][0], 1.0e6)
	chk.Scalar(tst, "m44", 1e-9, m[4][4], 200)
	chk.IntAssert(len(b.ActiveModes()), 6)

	_, err = NewBody(-1, geo.Point{}, inertia, mask)
	if err == nil {
		tst.Fatalf("expected error for non-positive mass")
	}

	bad := [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	_, err = NewBody(1, geo.Point{}, bad, mask)
	if err == nil {
		tst.Fatalf("expected error for non-positive-definite inertia")
	}
}
