// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package green

import (
	"math"
	"testing"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func Test_reciprocity01(tst *testing.T) {
	chk.PrintTitle("reciprocity01: G(x,y) == G(y,x) for infinite depth")

	e := NewEvaluator(Delhommeau)
	xf := geo.Point{X: 1.3, Y: -0.4, Z: -0.6}
	xs := geo.Point{X: -0.8, Y: 0.9, Z: -1.2}
	k := 0.7

	g1, _, err := e.Evaluate(xf, xs, k, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("Evaluate(x,y) failed: %v", err)
	}
	g2, _, err := e.Evaluate(xs, xf, k, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("Evaluate(y,x) failed: %v", err)
	}
	chk.Scalar(tst, "Re(G)", 1e-6, real(g1), real(g2))
	chk.Scalar(tst, "Im(G)", 1e-6, imag(g1), imag(g2))
}

func Test_rankineGradient01(tst *testing.T) {
	chk.PrintTitle("rankineGradient01: analytic Rankine gradient matches DerivCentral")

	xf := geo.Point{X: 0.5, Y: 0.2, Z: -0.3}
	xs0 := geo.Point{X: -0.6, Y: 0.4, Z: -1.1}

	rankineAt := func(xsx float64) float64 {
		dx, dy, dz := xf.X-xsx, xf.Y-xs0.Y, xf.Z-xs0.Z
		r := math.Sqrt(dx*dx + dy*dy + dz*dz)
		return -1 / (4 * math.Pi * r)
	}
	fd, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		return rankineAt(x)
	}, xs0.X, 1e-6)

	dx, dy, dz := xf.X-xs0.X, xf.Y-xs0.Y, xf.Z-xs0.Z
	rr3 := math.Pow(dx*dx+dy*dy+dz*dz, 1.5)
	analytic := -dx / (4 * math.Pi * rr3)

	chk.Scalar(tst, "dG_Rankine/dxs_x", 1e-5, fd, analytic)
}

func Test_coincident01(tst *testing.T) {
	chk.PrintTitle("coincident01: k*r below tolerance takes the analytic local limit")

	e := NewEvaluator(Delhommeau)
	p := geo.Point{X: 0, Y: 0, Z: -1}
	g, _, err := e.Evaluate(p, p, 0.5, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("Evaluate at coincident point failed: %v", err)
	}
	if cmplxIsNaNOrInf(g) {
		tst.Fatalf("coincident limit is not finite: %v", g)
	}
}

func cmplxIsNaNOrInf(g complex128) bool {
	return math.IsNaN(real(g)) || math.IsNaN(imag(g)) || math.IsInf(real(g), 0) || math.IsInf(imag(g), 0)
}

func Test_finiteDepthFallback01(tst *testing.T) {
	chk.PrintTitle("finiteDepthFallback01: kh > 6 matches the infinite-depth branch")

	e := NewEvaluator(Delhommeau)
	xf := geo.Point{X: 2, Y: 0, Z: -0.5}
	xs := geo.Point{X: 0, Y: 0, Z: -0.8}
	k := 3.0 // k*h = 3*50 >> 6

	gInf, _, err := e.Evaluate(xf, xs, k, envir.InfiniteDepth())
	if err != nil {
		tst.Fatalf("infinite-depth Evaluate failed: %v", err)
	}
	deep, err := envir.FiniteDepth(50)
	if err != nil {
		tst.Fatalf("FiniteDepth failed: %v", err)
	}
	gFin, _, err := e.Evaluate(xf, xs, k, deep)
	if err != nil {
		tst.Fatalf("finite-depth Evaluate failed: %v", err)
	}
	chk.Scalar(tst, "Re(G) deep~inf", 1e-6, real(gInf), real(gFin))
}
