// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"math/cmplx"

	"github.com/LexxSaa28/wavecore/linalg"
)

// SparseC is a complex coordinate-format (COO) triplet store, modeled
// directly on the teacher's `gosl/la.Triplet` (Ti/Tj/Tx parallel arrays, a
// Put accumulator, ToDense) but adapted to complex128 since la.Triplet is
// real-only (spec §4.4's "optional sparsification policy").
type SparseC struct {
	rows, cols int
	ti, tj     []int
	tx         []complex128
}

// NewSparseC allocates an empty r×c triplet store with a capacity hint.
func NewSparseC(r, c, capHint int) *SparseC {
	return &SparseC{rows: r, cols: c, ti: make([]int, 0, capHint), tj: make([]int, 0, capHint), tx: make([]complex128, 0, capHint)}
}

// Put appends one (i,j,value) triplet, following la.Triplet's accumulate
// (not overwrite) semantics: duplicate (i,j) entries sum on ToDense.
func (s *SparseC) Put(i, j int, v complex128) {
	s.ti = append(s.ti, i)
	s.tj = append(s.tj, j)
	s.tx = append(s.tx, v)
}

// NNZ returns the number of stored triplets.
func (s *SparseC) NNZ() int { return len(s.tx) }

// ToDense materializes the triplet store as a dense linalg.Matrix.
func (s *SparseC) ToDense() *linalg.Matrix {
	m := linalg.NewMatrix(s.rows, s.cols)
	for idx, v := range s.tx {
		m.Add(s.ti[idx], s.tj[idx], v)
	}
	return m
}

// Sparsify reduces a dense influence matrix to a SparseC by dropping
// entries with |S_ij|*A_j below threshold, while always preserving a band
// of width bandwidth around the diagonal (spec §4.4: "preserving a minimum
// bandwidth around the diagonal"). areaWeights holds A_j per source panel
// column.
func Sparsify(m *linalg.Matrix, areaWeights []float64, threshold float64, bandwidth int) *SparseC {
	out := NewSparseC(m.Rows, m.Cols, m.Rows*(2*bandwidth+1))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			v := m.At(i, j)
			inBand := absInt(i-j) <= bandwidth
			if inBand || cmplx.Abs(v)*areaWeights[j] >= threshold {
				out.Put(i, j, v)
			}
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
