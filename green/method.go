// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package green evaluates the linearized free-surface Green function and
// its gradient with respect to the source point, per spec §4.3.
package green

// Method selects the free-surface wave-term evaluation strategy. It is a
// closed tagged variant fixed at Evaluator construction (REDESIGN FLAGS:
// prefer a tagged variant over runtime polymorphism for a small closed set
// of evaluation strategies).
type Method int

const (
	// Delhommeau evaluates the oscillatory wave term by numerical
	// quadrature of the regularized principal-value integral.
	Delhommeau Method = iota
	// HigherOrderSeries evaluates the wave term via a near-field Taylor
	// expansion or a far-field asymptotic series, whichever the argument
	// range calls for, trading quadrature cost for series-truncation error.
	HigherOrderSeries
)

func (m Method) String() string {
	switch m {
	case Delhommeau:
		return "Delhommeau"
	case HigherOrderSeries:
		return "HigherOrderSeries"
	default:
		return "Method(?)"
	}
}
