// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

// Observer receives progress and diagnostic events from a Pipeline run.
// It replaces the global monitoring/metrics singletons of the teacher's
// source with a caller-supplied interface; the core owns no process-wide
// state (spec §9 DESIGN NOTES).
type Observer interface {
	OnFrequencyStart(omega float64)
	OnFrequencyDone(omega float64, status Status)
	OnGPUFallback(omega float64, reason string)
}

// NoopObserver discards every event; NewPipeline uses it when the Observer
// passed in is nil.
type NoopObserver struct{}

func (NoopObserver) OnFrequencyStart(float64)          {}
func (NoopObserver) OnFrequencyDone(float64, Status)    {}
func (NoopObserver) OnGPUFallback(float64, string)      {}
