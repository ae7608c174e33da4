// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import "github.com/LexxSaa28/wavecore/geo"

// waterlineTol is the z-tolerance used to classify a vertex as "at the
// waterline" rather than strictly above or below it.
const waterlineTol = 1e-9

// clipVertex tags a clipped-polygon vertex with whether it was introduced
// by the z=0 clip (as opposed to surviving from the original panel), so
// moment accumulation can tell a waterline-contour edge from an interior one.
type clipVertex struct {
	p      geo.Point
	isCut  bool
}

// clipBelowWaterline runs Sutherland–Hodgman clipping of a (possibly
// non-planar, 3- or 4-vertex) panel polygon against the half-space z<=0,
// keeping the submerged part. It preserves the input's winding order
// (required so the new clip edge inherits a globally consistent
// orientation from the mesh's outward-normal convention, spec §4.2: "must
// handle panels... partially crossing the waterline by clipping").
func clipBelowWaterline(poly []geo.Point) []clipVertex {
	n := len(poly)
	var out []clipVertex
	for i := 0; i < n; i++ {
		cur := poly[i]
		nxt := poly[(i+1)%n]
		curIn := cur.Z <= 0
		nxtIn := nxt.Z <= 0
		if curIn {
			out = append(out, clipVertex{p: cur, isCut: false})
		}
		if curIn != nxtIn {
			t := cur.Z / (cur.Z - nxt.Z) // parametric position of the z=0 crossing
			ip := geo.Point{
				X: cur.X + t*(nxt.X-cur.X),
				Y: cur.Y + t*(nxt.Y-cur.Y),
				Z: 0,
			}
			out = append(out, clipVertex{p: ip, isCut: true})
		}
	}
	return out
}

// polygonAreaNormalCentroid returns the area/outward-normal/centroid of a
// (possibly non-triangular) planar-ish polygon by fan triangulation about
// its first vertex, area-weighting each fan triangle — the same scheme
// geo.Panel uses internally for quads, generalized to arbitrary vertex
// counts for clipped polygons.
func polygonAreaNormalCentroid(poly []geo.Point) (area float64, normal, centroid geo.Point) {
	if len(poly) < 3 {
		return 0, geo.Point{}, geo.Point{}
	}
	var sumNx, sumNy, sumNz float64
	var sumCx, sumCy, sumCz float64
	a0 := poly[0]
	for i := 1; i < len(poly)-1; i++ {
		b, c := poly[i], poly[i+1]
		cx, ny, a := geo.TriangleQuantities(a0, b, c)
		sumNx += ny.X * a
		sumNy += ny.Y * a
		sumNz += ny.Z * a
		sumCx += cx.X * a
		sumCy += cx.Y * a
		sumCz += cx.Z * a
		area += a
	}
	if area == 0 {
		return 0, geo.Point{}, geo.Point{}
	}
	normal = geo.Unit(geo.Point{X: sumNx, Y: sumNy, Z: sumNz})
	centroid = geo.Point{X: sumCx / area, Y: sumCy / area, Z: sumCz / area}
	return
}

// waterlineMoments accumulates the Green's-theorem boundary formulas for
// waterplane area and first/second moments over a set of directed
// segments, each of which must already carry the mesh's consistent
// outward-normal-derived orientation (projected to the xy plane). The
// accumulation is purely additive per segment, so it never needs the
// segments stitched into an explicit closed loop (standard boundary-element
// reduction of a 2D surface integral to a line integral).
type waterlineMoments struct {
	area   float64 // A_wp = 0.5 Σ (x_i y_{i+1} - x_{i+1} y_i)
	momX   float64 // Sx  = ∫∫ x dA
	momY   float64 // Sy  = ∫∫ y dA
	ixx    float64 // Ixx = ∫∫ y^2 dA
	iyy    float64 // Iyy = ∫∫ x^2 dA
}

func (m *waterlineMoments) addSegment(x1, y1, x2, y2 float64) {
	cross := x1*y2 - x2*y1
	m.area += 0.5 * cross
	m.momX += (x1 + x2) * cross / 6
	m.momY += (y1 + y2) * cross / 6
	m.ixx += (y1*y1 + y1*y2 + y2*y2) * cross / 12
	m.iyy += (x1*x1 + x1*x2 + x2*x2) * cross / 12
}

func (m *waterlineMoments) addClosedPolygon(poly []geo.Point) {
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		m.addSegment(a.X, a.Y, b.X, b.Y)
	}
}
