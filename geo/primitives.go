// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// Sphere builds a closed sphere of the given radius, discretized with
// thetaRes latitude bands and phiRes longitude bands (spec §4.1:
// "primitive::sphere(radius, θ_res, φ_res)"). The sphere is centered at
// (0,0,-radius), so it is fully submerged with its top pole touching z=0.
// Each pole is a single shared vertex and the pole bands are triangles, so
// the mesh is closed.
func Sphere(radius float64, thetaRes, phiRes int) (*Mesh, error) {
	if thetaRes < 2 || phiRes < 3 {
		return nil, errInvalidResolution("Sphere", thetaRes, phiRes)
	}
	verts := make([]Point, 0, (thetaRes+1)*phiRes)
	index := make([][]int, thetaRes+1)
	for i := 0; i <= thetaRes; i++ {
		theta := math.Pi * float64(i) / float64(thetaRes) // 0..pi, 0 at north pole
		row := make([]int, phiRes)
		for j := 0; j < phiRes; j++ {
			if (i == 0 || i == thetaRes) && j > 0 {
				row[j] = row[0] // one shared vertex per pole
				continue
			}
			phi := 2 * math.Pi * float64(j) / float64(phiRes)
			x := radius * math.Sin(theta) * math.Cos(phi)
			y := radius * math.Sin(theta) * math.Sin(phi)
			z := radius*math.Cos(theta) - radius // shift so the sphere's center sits at z=-radius, fully submerged
			row[j] = len(verts)
			verts = append(verts, Point{X: x, Y: y, Z: z})
		}
		index[i] = row
	}
	var faces [][]int
	for i := 0; i < thetaRes; i++ {
		for j := 0; j < phiRes; j++ {
			jn := (j + 1) % phiRes
			a, b := index[i][j], index[i][jn]
			c, d := index[i+1][jn], index[i+1][j]
			switch {
			case i == 0:
				faces = append(faces, []int{a, c, d})
			case i == thetaRes-1:
				faces = append(faces, []int{a, b, c})
			default:
				faces = append(faces, []int{a, b, c, d})
			}
		}
	}
	return New(verts, faces)
}

// Box builds a closed rectangular box of the given extents, centered on
// (0,0,zCenter), with lx,ly,lz as the full side lengths. zCenter=0
// half-submerges the box (used by the box hydrostatics end-to-end scenario,
// spec §8 scenario 3); zCenter=-lz/2 submerges it fully with its top face
// flush at z=0.
func Box(lx, ly, lz, zCenter float64) (*Mesh, error) {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, errInvalidResolution("Box", 0, 0)
	}
	hx, hy, hz := lx/2, ly/2, lz/2
	verts := []Point{
		{-hx, -hy, zCenter - hz}, {hx, -hy, zCenter - hz}, {hx, hy, zCenter - hz}, {-hx, hy, zCenter - hz},
		{-hx, -hy, zCenter + hz}, {hx, -hy, zCenter + hz}, {hx, hy, zCenter + hz}, {-hx, hy, zCenter + hz},
	}
	faces := [][]int{
		{0, 3, 2, 1}, // bottom (normal -z)
		{4, 5, 6, 7}, // top (normal +z)
		{0, 1, 5, 4}, // -y side
		{1, 2, 6, 5}, // +x side
		{2, 3, 7, 6}, // +y side
		{3, 0, 4, 7}, // -x side
	}
	return New(verts, faces)
}

// Cylinder builds a closed vertical cylinder (axis along z) with the given
// radius and height, discretized with phiRes panels around the
// circumference, centered on (0,0,zCenter).
func Cylinder(radius, height float64, phiRes int, zCenter float64) (*Mesh, error) {
	if phiRes < 3 {
		return nil, errInvalidResolution("Cylinder", 0, phiRes)
	}
	hz := height / 2
	ring := func(z float64) []Point {
		pts := make([]Point, phiRes)
		for j := 0; j < phiRes; j++ {
			phi := 2 * math.Pi * float64(j) / float64(phiRes)
			pts[j] = Point{X: radius * math.Cos(phi), Y: radius * math.Sin(phi), Z: z}
		}
		return pts
	}
	bottom := ring(zCenter - hz)
	top := ring(zCenter + hz)
	verts := append(append([]Point(nil), bottom...), top...)
	centerBottomIdx := len(verts)
	verts = append(verts, Point{X: 0, Y: 0, Z: zCenter - hz})
	centerTopIdx := len(verts)
	verts = append(verts, Point{X: 0, Y: 0, Z: zCenter + hz})

	var faces [][]int
	for j := 0; j < phiRes; j++ {
		jn := (j + 1) % phiRes
		faces = append(faces, []int{j, jn, phiRes + jn, phiRes + j}) // side wall
		faces = append(faces, []int{centerBottomIdx, jn, j})         // bottom cap triangle (normal -z after fix)
		faces = append(faces, []int{centerTopIdx, phiRes + j, phiRes + jn})
	}
	return New(verts, faces)
}

// Ellipsoid builds a closed ellipsoid with semi-axes (a,b,c), a natural
// generalization of Sphere (SPEC_FULL §4.1 supplement); no other package
// in this module calls it.
func Ellipsoid(a, b, c float64, thetaRes, phiRes int) (*Mesh, error) {
	sphere, err := Sphere(1, thetaRes, phiRes)
	if err != nil {
		return nil, err
	}
	// Sphere(1,...) centers the unit sphere at z=-1 to submerge it; undo
	// that shift before rescaling by the ellipsoid's own semi-axes.
	verts := make([]Point, len(sphere.Vertices))
	for i, v := range sphere.Vertices {
		unitZ := v.Z + 1
		verts[i] = Point{X: a * v.X, Y: b * v.Y, Z: c*unitZ - c}
	}
	faces := make([][]int, len(sphere.Faces))
	for i, f := range sphere.Faces {
		faces[i] = append([]int(nil), f...)
	}
	return New(verts, faces)
}

func errInvalidResolution(shape string, a, b int) error {
	return wcerr.New(wcerr.InvalidInput, "%s: invalid resolution/dimensions (%d,%d)", shape, a, b)
}
