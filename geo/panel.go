// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// Panel is one face of the discretized wetted surface, with its derived
// quantities (centroid, outward unit normal, area, characteristic length)
// cached at construction time. A Panel never recomputes these after the
// fact; a new Mesh builds new Panels.
type Panel struct {
	Verts  []int   // indices into the owning Mesh's Vertices, 3 or 4 entries
	Coords []Point // the panel's own vertex coordinates (copied for locality)

	Centroid Point
	Normal   Point // outward unit normal, ||Normal|| == 1
	Area     float64
	Length   float64 // characteristic length, sqrt(Area)
}

// degenerateFactor is the ε in "degenerate panels (A < ε·mesh_scale²) are
// rejected" (spec §4.1). mesh_scale² is supplied by the caller (Mesh.New).
const degenerateFactor = 1e-10

// newPanel derives centroid/normal/area/length from the panel's vertex
// coordinates. Triangles use the direct cross-product formula; quads are
// planarized by splitting into two triangles and combining their area- and
// normal-weighted contributions (spec §4.1).
func newPanel(verts []int, coords []Point) Panel {
	p := Panel{Verts: verts, Coords: coords}
	switch len(coords) {
	case 3:
		p.Centroid, p.Normal, p.Area = triangleQuantities(coords[0], coords[1], coords[2])
	case 4:
		c1, n1, a1 := triangleQuantities(coords[0], coords[1], coords[2])
		c2, n2, a2 := triangleQuantities(coords[0], coords[2], coords[3])
		total := a1 + a2
		if total > 0 {
			p.Centroid = Point{
				X: (c1.X*a1 + c2.X*a2) / total,
				Y: (c1.Y*a1 + c2.Y*a2) / total,
				Z: (c1.Z*a1 + c2.Z*a2) / total,
			}
			p.Normal = unit(add(scale(n1, a1), scale(n2, a2)))
		}
		p.Area = total
	default:
		p.Area = 0
	}
	p.Length = math.Sqrt(math.Abs(p.Area))
	return p
}

// triangleQuantities returns the centroid, outward unit normal and area of
// the triangle (a,b,c) under a right-hand winding.
func triangleQuantities(a, b, c Point) (centroid, normal Point, area float64) {
	centroid = scale(add(add(a, b), c), 1.0/3.0)
	cr := cross(sub(b, a), sub(c, a))
	area = 0.5 * norm(cr)
	normal = unit(cr)
	return
}

// degenerate reports whether the panel's area is below ε·meshScale².
func (p Panel) degenerate(meshScale float64) bool {
	return p.Area < degenerateFactor*meshScale*meshScale
}

// flip reverses winding order and negates the normal; used when the global
// volume check (Mesh.New) finds the mesh's enclosed volume is negative.
func (p *Panel) flip() {
	for i, j := 0, len(p.Verts)-1; i < j; i, j = i+1, j-1 {
		p.Verts[i], p.Verts[j] = p.Verts[j], p.Verts[i]
		p.Coords[i], p.Coords[j] = p.Coords[j], p.Coords[i]
	}
	p.Normal = scale(p.Normal, -1)
}
