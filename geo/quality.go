// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// ImmersionTol is the tolerance above z=0 a waterline panel's centroid may
// sit at and still be considered immersed (spec §3: "c_z <= 0 with at most
// tol above 0 for waterline panels").
const ImmersionTol = 1e-6

// QualityReport summarizes the structural health of a Mesh, as returned by
// Mesh.Validate.
type QualityReport struct {
	NumVertices  int
	NumPanels    int
	Watertight   bool
	NonManifoldEdges int // edges shared by != 2 faces, only meaningful when Watertight is expected
	MinArea      float64
	MaxArea      float64
	MeanArea     float64
	AspectRatio  float64 // max panel length / min panel length, a crude skew indicator
	AllImmersed  bool    // every panel centroid satisfies c_z <= ImmersionTol
	QualityScore float64 // in (0,1], 1 = perfectly uniform closed mesh
}

// Validate computes the QualityReport for the mesh. It never mutates the
// mesh and never returns an error by itself; Mesh.New is where structural
// defects become InvalidMesh errors (spec §4.1).
func (m *Mesh) Validate() QualityReport {
	r := QualityReport{
		NumVertices: len(m.Vertices),
		NumPanels:   len(m.panels),
		Watertight:  m.watertight,
	}
	if len(m.panels) == 0 {
		return r
	}
	r.MinArea, r.MaxArea = math.Inf(1), math.Inf(-1)
	var sumArea, minLen, maxLen float64
	minLen, maxLen = math.Inf(1), math.Inf(-1)
	allImmersed := true
	for _, p := range m.panels {
		if p.Area < r.MinArea {
			r.MinArea = p.Area
		}
		if p.Area > r.MaxArea {
			r.MaxArea = p.Area
		}
		sumArea += p.Area
		if p.Length < minLen {
			minLen = p.Length
		}
		if p.Length > maxLen {
			maxLen = p.Length
		}
		if p.Centroid.Z > ImmersionTol {
			allImmersed = false
		}
	}
	r.MeanArea = sumArea / float64(len(m.panels))
	if minLen > 0 {
		r.AspectRatio = maxLen / minLen
	}
	r.AllImmersed = allImmersed
	r.NonManifoldEdges = m.nonManifoldEdges

	score := 1.0
	if r.AspectRatio > 1 {
		score /= r.AspectRatio
	}
	if !r.Watertight {
		score *= 0.5
	}
	if !r.AllImmersed {
		score *= 0.5
	}
	r.QualityScore = score
	return r
}

// requireWatertight returns an InvalidMesh error if the mesh is not
// watertight (spec §4.1 failure mode (c)), for callers that need a closed
// boundary; hydro.Compute and the BEM Pipeline do not call it.
func (m *Mesh) requireWatertight() error {
	if !m.watertight {
		return wcerr.New(wcerr.InvalidMesh, "mesh is not watertight: %d edge(s) used by != 2 faces", m.nonManifoldEdges)
	}
	return nil
}

// RequireWatertight exposes requireWatertight to other packages.
func (m *Mesh) RequireWatertight() error { return m.requireWatertight() }
