// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/LexxSaa28/wavecore/geo"
	"gonum.org/v1/gonum/integrate/quad"
)

// quadPoint is a single near-field integration sample: a point on the
// source panel and the area-element weight (already including the panel's
// local Jacobian) to multiply the integrand by.
type quadPoint struct {
	P      geo.Point
	Weight float64
}

// legendreNodes1D returns n Gauss–Legendre nodes/weights on [0,1], via
// gonum/integrate/quad per SPEC_FULL §3's domain-stack wiring.
func legendreNodes1D(n int) (nodes, weights []float64) {
	nodes = make([]float64, n)
	weights = make([]float64, n)
	quad.Legendre{}.FixedLocations(nodes, weights, 0, 1)
	return
}

// panelQuadrature returns a tensor-product Gauss–Legendre quadrature rule
// of order m x m over the panel's bilinear parametrization (quads use all
// four corners; triangles collapse the fourth corner onto the third, the
// standard Duffy-type degenerate-quad technique for reusing a
// tensor-product rule on a triangle).
func panelQuadrature(p geo.Panel, m int) []quadPoint {
	v0 := p.Coords[0]
	v1 := p.Coords[1%len(p.Coords)]
	v2 := p.Coords[2%len(p.Coords)]
	v3 := v2
	if len(p.Coords) == 4 {
		v3 = p.Coords[3]
	}

	nodes, weights := legendreNodes1D(m)
	pts := make([]quadPoint, 0, m*m)
	for i, s := range nodes {
		for j, t := range nodes {
			x := bilinear(v0, v1, v2, v3, s, t)
			jac := bilinearJacobian(v0, v1, v2, v3, s, t)
			pts = append(pts, quadPoint{P: x, Weight: weights[i] * weights[j] * jac})
		}
	}
	return pts
}

func bilinear(v0, v1, v2, v3 geo.Point, s, t float64) geo.Point {
	a := geo.Scale(v0, (1-s)*(1-t))
	b := geo.Scale(v1, s*(1-t))
	c := geo.Scale(v2, s*t)
	d := geo.Scale(v3, (1-s)*t)
	return geo.Add(geo.Add(a, b), geo.Add(c, d))
}

// bilinearJacobian returns the area-element scale |dX/ds x dX/dt| at (s,t).
func bilinearJacobian(v0, v1, v2, v3 geo.Point, s, t float64) float64 {
	dXds := geo.Add(geo.Scale(geo.Sub(v1, v0), 1-t), geo.Scale(geo.Sub(v2, v3), t))
	dXdt := geo.Add(geo.Scale(geo.Sub(v3, v0), 1-s), geo.Scale(geo.Sub(v2, v1), s))
	return geo.Norm(geo.Cross(dXds, dXdt))
}
