// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/LexxSaa28/wavecore/wcerr"
)

// Mesh is an immutable vertex/face container with cached per-panel derived
// quantities. Construct once with New; Transform returns a new Mesh rather
// than mutating the receiver (spec §3: "Mesh is constructed once and
// immutable thereafter").
type Mesh struct {
	Vertices []Point
	Faces    [][]int // each entry has 3 or 4 vertex indices

	panels           []Panel
	watertight       bool
	nonManifoldEdges int
	scale            float64 // bounding-box diagonal, used for the degenerate-panel tolerance
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// New validates and constructs a Mesh from vertices and faces. It fails
// with InvalidMesh when a face references an out-of-range vertex, or when
// any derived panel is degenerate (area below ε·scale²), per spec §4.1.
// Normal orientation is validated by the enclosed-volume sign; if negative,
// all normals (and face windings) are globally flipped.
func New(vertices []Point, faces [][]int) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, wcerr.New(wcerr.InvalidMesh, "mesh has no vertices")
	}
	if len(faces) == 0 {
		return nil, wcerr.New(wcerr.InvalidMesh, "mesh has no faces")
	}
	for fi, f := range faces {
		if len(f) != 3 && len(f) != 4 {
			return nil, wcerr.New(wcerr.InvalidMesh, "face %d has %d vertices, want 3 or 4", fi, len(f))
		}
		for _, vi := range f {
			if vi < 0 || vi >= len(vertices) {
				return nil, wcerr.New(wcerr.InvalidMesh, "face %d references out-of-range vertex %d", fi, vi)
			}
		}
	}

	m := &Mesh{Vertices: vertices, Faces: faces}
	m.scale = boundingBoxDiagonal(vertices)

	m.panels = make([]Panel, len(faces))
	for fi, f := range faces {
		coords := make([]Point, len(f))
		for i, vi := range f {
			coords[i] = vertices[vi]
		}
		p := newPanel(append([]int(nil), f...), coords)
		if p.degenerate(m.scale) {
			return nil, wcerr.New(wcerr.InvalidMesh, "face %d is degenerate: area %g < eps*scale^2", fi, p.Area)
		}
		m.panels[fi] = p
	}

	m.computeWatertightness()
	m.fixOrientation()

	return m, nil
}

func boundingBoxDiagonal(pts []Point) float64 {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}
	return Distance(lo, hi)
}

// computeWatertightness builds the edge-usage map: a mesh is watertight
// when every edge is shared by exactly two faces (spec §3).
func (m *Mesh) computeWatertightness() {
	edgeCount := make(map[edgeKey]int)
	for _, f := range m.Faces {
		n := len(f)
		for i := 0; i < n; i++ {
			k := makeEdgeKey(f[i], f[(i+1)%n])
			edgeCount[k]++
		}
	}
	bad := 0
	for _, c := range edgeCount {
		if c != 2 {
			bad++
		}
	}
	m.nonManifoldEdges = bad
	m.watertight = bad == 0
}

// fixOrientation flips every panel's normal/winding if the mesh's enclosed
// volume (computed by divergence theorem, spec §4.2's V formula) is
// negative, i.e. normals currently point inward.
func (m *Mesh) fixOrientation() {
	if !m.watertight {
		return // orientation sign is only meaningful for a closed surface
	}
	v := enclosedVolume(m.panels)
	if v < 0 {
		for i := range m.panels {
			m.panels[i].flip()
		}
		for i := range m.Faces {
			f := m.Faces[i]
			for a, b := 0, len(f)-1; a < b; a, b = a+1, b-1 {
				f[a], f[b] = f[b], f[a]
			}
		}
	}
}

// enclosedVolume applies the divergence theorem with F=(0,0,z) (div F = 1):
// V = ∫∫_S z·n̂_z dS = Σ c_z·n̂_z·A, valid for an outward normal convention
// (spec §3: normals point out of the body into the fluid). Same formula
// family as hydro.Properties.Volume; see DESIGN.md for why WaveCore uses
// this single-component field rather than spec.md §4.2's literal
// "-(1/3)Σc·n̂·A", which corresponds to a different field (F=r) and an
// inconsistent sign under the stated normal convention.
func enclosedVolume(panels []Panel) float64 {
	var v float64
	for _, p := range panels {
		v += p.Centroid.Z * p.Normal.Z * p.Area
	}
	return v
}

// Panels returns the mesh's derived panel records, in face order.
func (m *Mesh) Panels() []Panel { return m.panels }

// NumPanels returns the panel count N, used throughout the BEM kernel as
// the influence-matrix dimension.
func (m *Mesh) NumPanels() int { return len(m.panels) }

// Watertight reports whether every edge is shared by exactly two faces.
func (m *Mesh) Watertight() bool { return m.watertight }

// Scale returns the mesh's characteristic length (bounding-box diagonal),
// the length New uses for its degenerate-panel area tolerance.
func (m *Mesh) Scale() float64 { return m.scale }

// Transform applies an affine map to every vertex and returns a new Mesh;
// the receiver is untouched (spec §4.1: "transform(affine) returning a new
// mesh").
func (m *Mesh) Transform(a Affine) (*Mesh, error) {
	newVerts := make([]Point, len(m.Vertices))
	for i, v := range m.Vertices {
		newVerts[i] = a.Apply(v)
	}
	newFaces := make([][]int, len(m.Faces))
	for i, f := range m.Faces {
		newFaces[i] = append([]int(nil), f...)
	}
	return New(newVerts, newFaces)
}
