// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hydro computes hydrostatic properties (displaced volume, wetted
// surface, center of buoyancy, waterplane area and second moments,
// metacentric height, and the 6x6 hydrostatic restoring matrix) from a
// mesh and the fluid environment, per spec §4.2.
package hydro

import (
	"math"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/wcerr"
	"github.com/cpmech/gosl/la"
)

// Properties holds the hydrostatic outputs named in spec §2.2 and §6.
type Properties struct {
	Volume          float64    // displaced volume V
	WettedSurface   float64    // total wetted area
	CenterOfBuoyancy geo.Point // r_B
	WaterplaneArea  float64    // A_wp
	Ixx             float64    // second moment of waterplane area about the x-axis through the origin
	Iyy             float64    // second moment of waterplane area about the y-axis through the origin
	FlotationCenter geo.Point  // centroid of the waterplane polygon (z=0)
	MetacentricHeightGM float64 // GM, transverse
	K               [6][6]float64 // hydrostatic restoring matrix
}

// Compute derives hydrostatic properties from the mesh, density and
// gravity. Panels are classified per spec §4.2 as fully submerged, fully
// above, or crossing the waterline; crossing panels are clipped against
// z=0 (hydro/waterplane.go).
func Compute(mesh *geo.Mesh, env *envir.Environment, body *envir.Body) (*Properties, error) {
	if mesh.NumPanels() == 0 {
		return nil, wcerr.New(wcerr.InvalidMesh, "mesh has no panels")
	}

	var volume, wetted float64
	var bx, by, bz float64 // volume-weighted center-of-buoyancy accumulators
	var wl waterlineMoments

	for _, p := range mesh.Panels() {
		above := 0
		for _, c := range p.Coords {
			if c.Z > waterlineTol {
				above++
			}
		}
		switch {
		case above == 0:
			// fully submerged (or a flush lid exactly at z=0)
			accumulateVolume(&volume, &bx, &by, &bz, p.Centroid, p.Normal, p.Area)
			wetted += p.Area
			if isFlush(p.Coords) {
				wl.addClosedPolygon(p.Coords)
			}
		case above == len(p.Coords):
			// fully dry, no contribution
		default:
			clipped := clipBelowWaterline(p.Coords)
			pts := make([]geo.Point, len(clipped))
			for i, cv := range clipped {
				pts[i] = cv.p
			}
			area, normal, centroid := polygonAreaNormalCentroid(pts)
			if area > 0 {
				accumulateVolume(&volume, &bx, &by, &bz, centroid, normal, area)
				wetted += area
			}
			addClipEdges(&wl, clipped)
		}
	}

	if volume <= 0 {
		return nil, wcerr.New(wcerr.InvalidMesh, "mesh encloses non-positive displaced volume (%g); check waterline placement and normal orientation", volume)
	}

	props := &Properties{
		Volume:        volume,
		WettedSurface: wetted,
	}
	props.CenterOfBuoyancy = geo.Point{X: bx / volume, Y: by / volume, Z: bz / volume}
	// Clip edges of an outward-oriented hull run clockwise seen from above,
	// so all accumulated moments carry the sign of wl.area; normalize them.
	sign := 1.0
	if wl.area < 0 {
		sign = -1
	}
	props.WaterplaneArea = sign * wl.area
	props.Ixx = sign * wl.ixx
	props.Iyy = sign * wl.iyy
	if props.WaterplaneArea > 0 {
		props.FlotationCenter = geo.Point{X: wl.momX / wl.area, Y: wl.momY / wl.area}
	}

	props.K = restoringMatrix(env, body, props)

	if props.K[2][2] > 0 && volume > 0 {
		// transverse metacentric height: BM = Ixx/V, GM = BM - (z_G - z_B).
		bm := props.Ixx / volume
		zg := 0.0
		if body != nil {
			zg = body.Cg.Z
		}
		props.MetacentricHeightGM = bm - (zg - props.CenterOfBuoyancy.Z)
	}

	return props, nil
}

// accumulateVolume adds one panel's contribution to the displaced volume
// (spec §4.2's divergence-theorem formula, see DESIGN.md for the field
// choice) and to the volume-weighted center-of-buoyancy numerator. Each
// panel's contribution to V·x_B and V·y_B is its volume slice (c_z n_z A)
// times its centroid x or y; V·z_B = ∫∫∫ z dV uses the field (0,0,z²/2),
// so its slice is (c_z n_z A)·c_z/2. Fields are evaluated at the panel
// centroid, exact in the limit of fine meshes.
func accumulateVolume(volume, bx, by, bz *float64, centroid, normal geo.Point, area float64) {
	dv := centroid.Z * normal.Z * area
	*volume += dv
	*bx += dv * centroid.X
	*by += dv * centroid.Y
	*bz += dv * centroid.Z / 2
}

// isFlush reports whether every vertex of poly lies within waterlineTol of
// z=0, i.e. the panel is a lid face coincident with the still-water plane.
func isFlush(poly []geo.Point) bool {
	for _, p := range poly {
		if math.Abs(p.Z) > waterlineTol {
			return false
		}
	}
	return true
}

// addClipEdges accumulates the waterline-contour moment contribution of
// the single new edge introduced by clipping (the edge whose both
// endpoints are clip-generated intersection points). Sutherland–Hodgman
// preserves the input polygon's winding order, so this edge's direction is
// already consistent with the mesh's global outward-normal orientation
// (spec §4.2).
func addClipEdges(wl *waterlineMoments, clipped []clipVertex) {
	n := len(clipped)
	for i := 0; i < n; i++ {
		a, b := clipped[i], clipped[(i+1)%n]
		if a.isCut && b.isCut {
			wl.addSegment(a.p.X, a.p.Y, b.p.X, b.p.Y)
		}
	}
}

// restoringMatrix builds the 6x6 hydrostatic restoring matrix with
// non-zero entries only in {heave, roll, pitch} couplings (spec §3, §4.2).
func restoringMatrix(env *envir.Environment, body *envir.Body, p *Properties) [6][6]float64 {
	var k [6][6]float64
	rg := env.Rho * env.G
	k[2][2] = rg * p.WaterplaneArea
	zb := p.CenterOfBuoyancy.Z
	zg := 0.0
	if body != nil {
		zg = body.Cg.Z
	}
	k[3][3] = rg * (p.Ixx + p.Volume*zb - p.Volume*zg)
	k[4][4] = rg * (p.Iyy + p.Volume*zb - p.Volume*zg)
	coupling := rg * p.WaterplaneArea * p.FlotationCenter.X
	k[2][4] = -coupling
	k[4][2] = -coupling
	return k
}

// KMatrix returns the restoring matrix as a plain la.Matrix-style dense
// array (la.MatAlloc shape), for callers that want to combine it with other
// 6x6 dense matrices via gosl/la helpers (rao reads Properties.K directly).
func (p *Properties) KMatrix() [][]float64 {
	m := la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			m[i][j] = p.K[i][j]
		}
	}
	return m
}
