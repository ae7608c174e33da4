// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo holds the panelized wetted-surface mesh: vertices, faces, and
// the per-panel derived quantities the BEM kernel integrates over.
package geo

import "math"

// Point is a body-fixed coordinate, z positive upward, mean free surface at z=0.
type Point struct {
	X, Y, Z float64
}

// Vec returns the point as a 3-vector, for use with utl.Cross3d/Dot3d style helpers.
func (p Point) Vec() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func add(a, b Point) Point           { return Point{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func sub(a, b Point) Point           { return Point{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func scale(a Point, s float64) Point { return Point{a.X * s, a.Y * s, a.Z * s} }

func dot(a, b Point) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b Point) Point {
	return Point{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func norm(a Point) float64 { return math.Sqrt(dot(a, a)) }

func unit(a Point) Point {
	n := norm(a)
	if n == 0 {
		return Point{}
	}
	return scale(a, 1/n)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 { return norm(sub(a, b)) }

// Exported vector algebra, for packages (hydro, assembly) that build their
// own derived geometry (clipped waterline polygons, integration sub-points)
// from Points without duplicating geo's internal helpers.

// Add returns a+b.
func Add(a, b Point) Point { return add(a, b) }

// Sub returns a-b.
func Sub(a, b Point) Point { return sub(a, b) }

// Scale returns a*s.
func Scale(a Point, s float64) Point { return scale(a, s) }

// Dot returns a·b.
func Dot(a, b Point) float64 { return dot(a, b) }

// Cross returns a×b.
func Cross(a, b Point) Point { return cross(a, b) }

// Norm returns ||a||.
func Norm(a Point) float64 { return norm(a) }

// Unit returns a/||a||, or the zero point if a is the zero vector.
func Unit(a Point) Point { return unit(a) }

// TriangleQuantities returns the centroid, outward unit normal (via
// right-hand winding a,b,c) and area of the triangle (a,b,c).
func TriangleQuantities(a, b, c Point) (centroid, normal Point, area float64) {
	return triangleQuantities(a, b, c)
}
