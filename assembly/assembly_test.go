// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"context"
	"math"
	"testing"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/green"
	"github.com/LexxSaa28/wavecore/linalg"
	"github.com/cpmech/gosl/chk"
)

func makeTestMatrix(n int) *linalg.Matrix {
	m := linalg.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, complex(float64(i+j+1), float64(i-j)))
		}
	}
	return m
}

func Test_assemble01(tst *testing.T) {
	chk.PrintTitle("assemble01: S and D are finite and correctly shaped for a small sphere")

	mesh, err := geo.Sphere(1, 6, 8)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	ev := green.NewEvaluator(green.Delhommeau)
	cfg := DefaultConfig()
	cfg.Parallelism = 4

	res, err := Assemble(context.Background(), mesh, ev, 1.0, envir.InfiniteDepth(), cfg)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	n := mesh.NumPanels()
	if res.S.Rows != n || res.S.Cols != n || res.D.Rows != n || res.D.Cols != n {
		tst.Fatalf("unexpected matrix shape: S=%dx%d D=%dx%d want %dx%d", res.S.Rows, res.S.Cols, res.D.Rows, res.D.Cols, n, n)
	}
	if !res.S.IsFinite() || !res.D.IsFinite() {
		tst.Fatalf("S or D contains a non-finite entry")
	}
}

func Test_rankineSelfTerm01(tst *testing.T) {
	chk.PrintTitle("rankineSelfTerm01: matches the equal-area-disc closed form -R/2")
	area := 0.37
	r := math.Sqrt(area / math.Pi)
	got := rankineSelfTerm(area)
	chk.Scalar(tst, "Re(rankineSelfTerm)", 1e-12, real(got), -r/2)
	chk.Scalar(tst, "Im(rankineSelfTerm)", 1e-12, imag(got), 0)
}

func Test_diagonalEntry01_includesRankineSelfTerm(tst *testing.T) {
	chk.PrintTitle("diagonalEntry01: S_ii carries the panel-size-scaled Rankine self-term plus the area-scaled coincident limit")

	mesh, err := geo.Sphere(1, 6, 8)
	if err != nil {
		tst.Fatalf("Sphere failed: %v", err)
	}
	ev := green.NewEvaluator(green.Delhommeau)
	cfg := DefaultConfig()
	panels := mesh.Panels()
	p := panels[0]

	sii, dii, err := diagonalEntry(p.Centroid, p.Normal, p, ev, 1.0, envir.InfiniteDepth(), cfg)
	if err != nil {
		tst.Fatalf("diagonalEntry failed: %v", err)
	}

	g, _, err := ev.Evaluate(p.Centroid, p.Centroid, 1.0, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("Evaluate failed: %v", err)
	}
	want := rankineSelfTerm(p.Area) + g*complex(p.Area, 0)
	chk.Scalar(tst, "Re(S_ii)", 1e-12, real(sii), real(want))
	chk.Scalar(tst, "Im(S_ii)", 1e-12, imag(sii), imag(want))
	chk.Scalar(tst, "D_ii", 1e-12, real(dii), -0.5)

	// the Rankine self-term must be the dominant contribution to S_ii for a
	// panel this size (spec §4.4: "capture the Rankine singularity"), not a
	// negligible correction.
	rankine := rankineSelfTerm(p.Area)
	if cmplxAbs(rankine) < 0.5*cmplxAbs(sii) {
		tst.Fatalf("Rankine self-term does not dominate S_ii: |rankine|=%g |S_ii|=%g", cmplxAbs(rankine), cmplxAbs(sii))
	}
}

func Test_sparsify01(tst *testing.T) {
	chk.PrintTitle("sparsify01: band entries always survive sparsification")

	m := DefaultConfig()
	_ = m
	dense := makeTestMatrix(5)
	areas := []float64{1, 1, 1, 1, 1}
	sp := Sparsify(dense, areas, 1e9, 1) // huge threshold: only the band should survive
	dd := sp.ToDense()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if absInt(i-j) <= 1 {
				if dd.At(i, j) != dense.At(i, j) {
					tst.Fatalf("band entry (%d,%d) dropped", i, j)
				}
			}
		}
	}
}
