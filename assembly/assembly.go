// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly builds the complex dense influence matrices S and D by
// integrating the Green function and its normal derivative over source
// panels for each field panel, per spec §4.4.
package assembly

import (
	"context"
	"math"

	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/green"
	"github.com/LexxSaa28/wavecore/linalg"
	"github.com/LexxSaa28/wavecore/wcerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Config bundles the integration-rule knobs of spec §4.4.
type Config struct {
	TauFar        float64 // far-field midpoint-rule threshold r_ij/ell_j (default 4)
	QuadOrderMin  int     // near-field starting Gauss-Legendre order (default 3)
	QuadOrderMax  int     // near-field refinement ceiling (default 7)
	RefineRelTol  float64 // refinement stops once relative change < this (default 1e-5)
	Parallelism   int     // worker count for row parallelism (default 8; values <= 0 run one row at a time)
	InteriorAlpha float64 // alpha for the D diagonal jump term, +-1/2 by formulation (default -0.5, exterior)
}

// DefaultConfig returns the defaults named in spec §4.4.
func DefaultConfig() Config {
	return Config{TauFar: 4, QuadOrderMin: 3, QuadOrderMax: 7, RefineRelTol: 1e-5, Parallelism: 8, InteriorAlpha: -0.5}
}

// Result holds the assembled influence matrices for one frequency.
type Result struct {
	S, D *linalg.Matrix
}

// Assemble builds S and D for wavenumber k and depth, parallelizing across
// field-panel rows (spec §4.4: "rows of S and D are independent"). It
// returns AssemblyFailure (wrapping the originating error) the moment any
// entry cannot be computed; no partial matrix is ever returned.
func Assemble(ctx context.Context, mesh *geo.Mesh, ev *green.Evaluator, k float64, depth envir.Depth, cfg Config) (*Result, error) {
	n := mesh.NumPanels()
	if n == 0 {
		return nil, wcerr.New(wcerr.InvalidMesh, "cannot assemble influence matrices for a mesh with no panels")
	}
	panels := mesh.Panels()

	S := linalg.NewMatrix(n, n)
	D := linalg.NewMatrix(n, n)

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	sem := semaphore.NewWeighted(int64(parallelism))
	grp, gctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(gctx, 1); err != nil {
			return nil, wcerr.Wrap(wcerr.OperationCancelled, err, "assembly cancelled acquiring row %d", i)
		}
		grp.Go(func() error {
			defer sem.Release(1)
			return assembleRow(gctx, panels, i, ev, k, depth, cfg, S, D)
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if err := S.RequireFinite("S"); err != nil {
		return nil, err
	}
	if err := D.RequireFinite("D"); err != nil {
		return nil, err
	}
	return &Result{S: S, D: D}, nil
}

// assembleRow fills row i of S and D across every source panel j. Near-field
// quadrature points are allocated afresh for each entry and each order; no
// scratch buffer is kept per worker or reused across entries.
func assembleRow(ctx context.Context, panels []geo.Panel, i int, ev *green.Evaluator, k float64, depth envir.Depth, cfg Config, S, D *linalg.Matrix) error {
	if err := ctx.Err(); err != nil {
		return wcerr.Wrap(wcerr.OperationCancelled, err, "assembly cancelled before row %d", i)
	}
	fieldCentroid := panels[i].Centroid
	n := len(panels)
	for j := 0; j < n; j++ {
		sij, dij, err := influenceEntry(fieldCentroid, panels[i].Normal, panels[j], i == j, ev, k, depth, cfg)
		if err != nil {
			return wcerr.Wrap(wcerr.AssemblyFailure, err, "assembly failed at entry (%d,%d)", i, j)
		}
		S.Set(i, j, sij)
		D.Set(i, j, dij)
	}
	return nil
}

// influenceEntry computes S_ij and D_ij for one (field panel i, source
// panel j) pair, selecting the diagonal analytic limit, far-field midpoint
// rule, or near-field adaptive quadrature per spec §4.4.
func influenceEntry(xf geo.Point, fieldNormal geo.Point, src geo.Panel, diagonal bool, ev *green.Evaluator, k float64, depth envir.Depth, cfg Config) (complex128, complex128, error) {
	if diagonal {
		return diagonalEntry(xf, fieldNormal, src, ev, k, depth, cfg)
	}

	r := geo.Distance(xf, src.Centroid)
	tauFar := cfg.TauFar
	if tauFar <= 0 {
		tauFar = 4
	}
	if r/src.Length > tauFar {
		g, grad, err := ev.Evaluate(xf, src.Centroid, k, depth)
		if err != nil {
			return 0, 0, err
		}
		dGdn := dotGrad(grad, src.Normal)
		return g * complex(src.Area, 0), dGdn * complex(src.Area, 0), nil
	}
	return nearFieldEntry(xf, src, ev, k, depth, cfg)
}

// nearFieldEntry integrates G and dG/dn over the source panel by
// tensor-product Gauss-Legendre, refining the order until the relative
// change between successive orders falls below cfg.RefineRelTol (spec
// §4.4: "adaptive Gauss-Legendre of order m in {3,...,7} with refinement").
func nearFieldEntry(xf geo.Point, src geo.Panel, ev *green.Evaluator, k float64, depth envir.Depth, cfg Config) (complex128, complex128, error) {
	minOrder, maxOrder := cfg.QuadOrderMin, cfg.QuadOrderMax
	if minOrder < 3 {
		minOrder = 3
	}
	if maxOrder < minOrder {
		maxOrder = minOrder
	}
	tol := cfg.RefineRelTol
	if tol <= 0 {
		tol = 1e-5
	}

	var prevS, prevD complex128
	for m := minOrder; m <= maxOrder; m++ {
		var sumS, sumD complex128
		for _, qp := range panelQuadrature(src, m) {
			g, grad, err := ev.Evaluate(xf, qp.P, k, depth)
			if err != nil {
				return 0, 0, err
			}
			w := complex(qp.Weight, 0)
			sumS += g * w
			sumD += dotGrad(grad, src.Normal) * w
		}
		if m > minOrder {
			dS := relChange(sumS, prevS)
			dD := relChange(sumD, prevD)
			if math.Max(dS, dD) < tol {
				return sumS, sumD, nil
			}
		}
		prevS, prevD = sumS, sumD
	}
	return prevS, prevD, nil
}

// diagonalEntry returns the analytic self-influence: S_ii as the Rankine
// panel self-potential plus the evaluator's coincident-point limit (image
// and wave terms, scaled by the panel's own area), D_ii as the double-layer
// jump term (spec §4.4: "the diagonal analytic limit must capture the
// Rankine singularity"; "self-influence for the diagonal of D includes the
// jump term ±1/2").
func diagonalEntry(xf geo.Point, fieldNormal geo.Point, src geo.Panel, ev *green.Evaluator, k float64, depth envir.Depth, cfg Config) (complex128, complex128, error) {
	g, _, err := ev.Evaluate(xf, xf, k, depth)
	if err != nil {
		return 0, 0, err
	}
	alpha := cfg.InteriorAlpha
	if alpha == 0 {
		alpha = -0.5
	}
	return rankineSelfTerm(src.Area) + g*complex(src.Area, 0), complex(alpha, 0), nil
}

// rankineSelfTerm is the analytic self-induced potential of a flat source
// panel under its own Rankine kernel -1/(4*pi*r), approximating the panel
// by a disc of equal area with radius R = sqrt(Area/pi):
//
//	∫_disc -1/(4*pi*r) dA = ∫_0^2pi ∫_0^R -r/(4*pi*r) dr dtheta = -R/2
//
// unlike every off-diagonal entry, this term is panel-size-scaled rather
// than per-unit-area, since it already carries the panel's own area
// integration; green.Evaluator.coincidentLimit deliberately omits it for
// that reason.
func rankineSelfTerm(area float64) complex128 {
	r := math.Sqrt(area / math.Pi)
	return complex(-r/2, 0)
}

func dotGrad(g green.Vector, n geo.Point) complex128 {
	return g.X*complex(n.X, 0) + g.Y*complex(n.Y, 0) + g.Z*complex(n.Z, 0)
}

func relChange(cur, prev complex128) float64 {
	if cur == 0 {
		return 0
	}
	return cmplxAbs(cur-prev) / cmplxAbs(cur)
}

func cmplxAbs(c complex128) float64 {
	re, im := real(c), imag(c)
	return math.Sqrt(re*re + im*im)
}
