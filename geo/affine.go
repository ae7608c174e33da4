// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Affine is a 4x4 homogeneous transform, stored the way the teacher stores
// small dense matrices: a plain [][]float64 allocated with la.MatAlloc.
type Affine struct {
	M [][]float64
}

// Identity returns the identity affine transform.
func Identity() Affine {
	m := la.MatAlloc(4, 4)
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return Affine{M: m}
}

// Translation returns a pure-translation affine transform.
func Translation(dx, dy, dz float64) Affine {
	a := Identity()
	a.M[0][3], a.M[1][3], a.M[2][3] = dx, dy, dz
	return a
}

// Scaling returns a pure-scaling affine transform about the origin.
func Scaling(sx, sy, sz float64) Affine {
	a := Identity()
	a.M[0][0], a.M[1][1], a.M[2][2] = sx, sy, sz
	return a
}

// RotationZ returns a rotation about the z-axis by θ radians.
func RotationZ(theta float64) Affine {
	a := Identity()
	c, s := math.Cos(theta), math.Sin(theta)
	a.M[0][0], a.M[0][1] = c, -s
	a.M[1][0], a.M[1][1] = s, c
	return a
}

// Apply maps a point through the affine transform.
func (a Affine) Apply(p Point) Point {
	v := [4]float64{p.X, p.Y, p.Z, 1}
	var out [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i] += a.M[i][j] * v[j]
		}
	}
	return Point{X: out[0], Y: out[1], Z: out[2]}
}

// Compose returns the affine transform equivalent to applying a, then b
// (i.e. b ∘ a).
func Compose(a, b Affine) Affine {
	out := Affine{M: la.MatAlloc(4, 4)}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += b.M[i][k] * a.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}
