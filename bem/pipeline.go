// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"context"

	"github.com/LexxSaa28/wavecore/assembly"
	"github.com/LexxSaa28/wavecore/bem/gpu"
	"github.com/LexxSaa28/wavecore/envir"
	"github.com/LexxSaa28/wavecore/geo"
	"github.com/LexxSaa28/wavecore/green"
	"github.com/LexxSaa28/wavecore/linalg"
	"github.com/LexxSaa28/wavecore/wcerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Tables holds the pipeline's accumulated outputs, indexed in the input
// sweep's enumeration order (spec §4.6: "results are accumulated in the
// input enumeration order of (ω,β)").
type Tables struct {
	Omegas []float64
	Betas  []float64
	A      [][6][6]float64      // A[omegaIdx]
	B      [][6][6]float64      // B[omegaIdx]
	FX     [][][6]complex128    // FX[omegaIdx][betaIdx]
	Status []FrequencyStatus
}

// Pipeline orchestrates the per-(ω,β) BEM solve of spec §4.6.
type Pipeline struct {
	Mesh    *geo.Mesh
	Body    *envir.Body
	Env     *envir.Environment
	Config  *Configuration
	Observer Observer
	evaluator *green.Evaluator
	backend   gpu.Backend
}

// NewPipeline constructs a Pipeline over an immutable mesh/body/environment
// and configuration; obs may be nil, in which case events are discarded.
func NewPipeline(mesh *geo.Mesh, body *envir.Body, env *envir.Environment, cfg *Configuration, obs Observer) *Pipeline {
	if obs == nil {
		obs = NoopObserver{}
	}
	if cfg == nil {
		cfg = NewConfiguration()
	}
	return &Pipeline{
		Mesh: mesh, Body: body, Env: env, Config: cfg, Observer: obs,
		evaluator: green.NewEvaluator(cfg.GreenMethod),
		backend:   gpu.CPUBackend{},
	}
}

// Run sweeps every ω in omegas (and, for diffraction, every β in betas),
// publishing a Tables entry for each ω only once assembly, solve, and
// integration all succeed (spec §4.6: "partial updates ... are never
// published").
func (p *Pipeline) Run(ctx context.Context, omegas []float64, betas []float64) (*Tables, error) {
	n := len(omegas)
	tables := &Tables{
		Omegas: omegas, Betas: betas,
		A: make([][6][6]float64, n), B: make([][6][6]float64, n),
		FX:     make([][][6]complex128, n),
		Status: make([]FrequencyStatus, n),
	}

	threads := p.Config.Parallelism.Threads
	if threads <= 0 {
		threads = 1
	}
	if !p.Config.Parallelism.FrequencyParallel {
		threads = 1
	}
	sem := semaphore.NewWeighted(int64(threads))
	grp, gctx := errgroup.WithContext(ctx)

	for idx, omega := range omegas {
		idx, omega := idx, omega
		if err := sem.Acquire(gctx, 1); err != nil {
			tables.Status[idx] = FrequencyStatus{Omega: omega, Status: StatusCancelled, Err: err}
			continue
		}
		grp.Go(func() error {
			defer sem.Release(1)
			st := p.runOneFrequency(gctx, omega, betas, tables, idx)
			tables.Status[idx] = st
			if st.Status != StatusOK && p.Config.FailFast {
				return st.Err
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil && p.Config.FailFast {
		return tables, err
	}
	return tables, nil
}

// runOneFrequency performs the per-ω work of spec §4.6 steps 1-6 and only
// writes into tables if every step succeeds.
func (p *Pipeline) runOneFrequency(ctx context.Context, omega float64, betas []float64, tables *Tables, idx int) FrequencyStatus {
	p.Observer.OnFrequencyStart(omega)

	fctx := ctx
	var cancel context.CancelFunc
	if p.Config.FrequencyDeadline > 0 {
		fctx, cancel = context.WithTimeout(ctx, p.Config.FrequencyDeadline)
		defer cancel()
	}

	a, b, fx, err := p.computeFrequency(fctx, omega, betas)
	status := StatusOK
	if err != nil {
		status = StatusFailed
		if wcerr.Is(err, wcerr.OperationCancelled) {
			status = StatusCancelled
		}
		p.Observer.OnFrequencyDone(omega, status)
		return FrequencyStatus{Omega: omega, Status: status, Err: err}
	}

	tables.A[idx] = a
	tables.B[idx] = b
	tables.FX[idx] = fx
	p.Observer.OnFrequencyDone(omega, status)
	return FrequencyStatus{Omega: omega, Status: status}
}

// frequencyResult bundles one ω's added-mass, damping, and exciting-force
// rows, passed through the gpu.Backend seam as an opaque interface{}.
type frequencyResult struct {
	A  [6][6]float64
	B  [6][6]float64
	FX [][6]complex128
}

// computeFrequency runs the full per-ω pipeline: dispersion, assembly,
// factorization, the six radiation solves, and one diffraction solve per β.
// The assemble-and-solve body is routed through p.backend (spec §5's GPU
// offload seam); CPUBackend runs it inline on the calling goroutine.
func (p *Pipeline) computeFrequency(ctx context.Context, omega float64, betas []float64) ([6][6]float64, [6][6]float64, [][6]complex128, error) {
	var zeroA, zeroB [6][6]float64

	k, err := envir.Dispersion(p.Env.G, p.Env.Depth, omega)
	if err != nil {
		return zeroA, zeroB, nil, err
	}

	if err := ctx.Err(); err != nil {
		return zeroA, zeroB, nil, wcerr.Wrap(wcerr.OperationCancelled, err, "frequency ω=%g cancelled before assembly", omega)
	}

	unit := gpu.FrequencyUnit{
		Omega: omega,
		Run: func(ctx context.Context) (interface{}, error) {
			return p.assembleAndSolve(ctx, omega, k, betas)
		},
	}
	raw, err := p.backend.AssembleAndSolve(ctx, unit)
	if err != nil {
		if p.Config.GPU.Enabled && p.Config.GPU.FallbackOnFailure {
			p.Observer.OnGPUFallback(omega, err.Error())
			raw, err = gpu.CPUBackend{}.AssembleAndSolve(ctx, unit)
		}
		if err != nil {
			return zeroA, zeroB, nil, err
		}
	}
	fr := raw.(frequencyResult)
	return fr.A, fr.B, fr.FX, nil
}

// assembleAndSolve is the actual per-ω BEM work: influence-matrix assembly,
// optional sparsification (Config.Sparsification), factorization, the six
// radiation solves, and one diffraction solve per β.
func (p *Pipeline) assembleAndSolve(ctx context.Context, omega, k float64, betas []float64) (frequencyResult, error) {
	var zero frequencyResult

	res, err := assembly.Assemble(ctx, p.Mesh, p.evaluator, k, p.Env.Depth, p.Config.Assembly)
	if err != nil {
		return zero, err
	}

	panels := p.Mesh.Panels()
	if p.Config.Sparsification.Enabled {
		areaWeights := make([]float64, len(panels))
		for j, pj := range panels {
			areaWeights[j] = pj.Area
		}
		thresh, bandwidth := p.Config.Sparsification.Threshold, p.Config.Sparsification.Bandwidth
		res.S = assembly.Sparsify(res.S, areaWeights, thresh, bandwidth).ToDense()
		res.D = assembly.Sparsify(res.D, areaWeights, thresh, bandwidth).ToDense()
	}

	n := p.Mesh.NumPanels()
	alpha := complex(p.Config.FormulationAlpha, 0)
	m := linalg.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := res.D.At(i, j)
			if i == j {
				v += alpha
			}
			m.Set(i, j, v)
		}
	}

	lu, useDirect, err := factorizeIfDirect(m, p.Config.Solver)
	if err != nil {
		return zero, err
	}

	cg := p.Body.Cg

	var A, B [6][6]float64
	radPhi := make([]linalg.Vector, envir.NumModes)
	for _, mode := range p.Body.ActiveModes() {
		q := radiationRHS(panels, cg, mode)
		rhs := negSVecMul(res.S, q)
		phi, serr := solveRHS(lu, useDirect, m, rhs, p.Config.Solver)
		if serr != nil {
			return zero, serr
		}
		radPhi[mode] = phi
	}
	for _, modeJ := range p.Body.ActiveModes() {
		for _, modeI := range p.Body.ActiveModes() {
			f := radiationForce(panels, radPhi[modeJ], modeI, cg, p.Env, omega)
			a, b := addedMassDamping(f, omega)
			A[modeI][modeJ] = a
			B[modeI][modeJ] = b
		}
	}

	fx := make([][6]complex128, len(betas))
	for bi, beta := range betas {
		if err := ctx.Err(); err != nil {
			return zero, wcerr.Wrap(wcerr.OperationCancelled, err, "frequency ω=%g cancelled before diffraction β=%g", omega, beta)
		}
		qD := diffractionRHS(panels, p.Env, k, omega, beta)
		rhsD := negSVecMul(res.S, qD)
		phiD, serr := solveRHS(lu, useDirect, m, rhsD, p.Config.Solver)
		if serr != nil {
			return zero, serr
		}
		phiI := incidentPotentials(panels, p.Env, k, omega, beta)
		var row [6]complex128
		for _, modeI := range p.Body.ActiveModes() {
			row[modeI] = excitingForce(panels, phiI, phiD, modeI, cg, p.Env, omega)
		}
		fx[bi] = row
	}

	return frequencyResult{A: A, B: B, FX: fx}, nil
}

// factorizeIfDirect factors m once up front only when cfg resolves to the
// Direct strategy (explicitly, or via Adaptive's size crossover), so every
// radiation/diffraction right-hand side reuses the shared factorization
// (spec §4.5: "the factorization ... is shared across all right-hand
// sides"). For the iterative strategies it is a no-op: GMRES/BiCGSTAB never
// touch a factorization, each forming its own Krylov subspace per call.
func factorizeIfDirect(m *linalg.Matrix, cfg linalg.SolverConfig) (*linalg.LU, bool, error) {
	kind := cfg.Kind
	if kind == linalg.Adaptive {
		nDirect := cfg.NDirect
		if nDirect <= 0 {
			nDirect = 2000
		}
		if m.Rows <= nDirect {
			kind = linalg.Direct
		}
	}
	if kind != linalg.Direct {
		return nil, false, nil
	}
	lu, err := linalg.Factorize(m)
	if err != nil {
		return nil, false, err
	}
	return lu, true, nil
}

// solveRHS solves one right-hand side, reusing the shared factorization
// when the caller resolved to the Direct strategy up front.
func solveRHS(lu *linalg.LU, useDirect bool, m *linalg.Matrix, rhs linalg.Vector, cfg linalg.SolverConfig) (linalg.Vector, error) {
	if useDirect {
		return lu.Solve(rhs)
	}
	return linalg.Solve(m, rhs, cfg)
}

func negSVecMul(s *linalg.Matrix, q linalg.Vector) linalg.Vector {
	sv := s.MulVec(q)
	out := make(linalg.Vector, len(sv))
	for i, v := range sv {
		out[i] = -v
	}
	return out
}

