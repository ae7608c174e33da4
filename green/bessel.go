// Copyright 2026 The WaveCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package green

import "math"

// besselJ0 returns J0(x) via the Abramowitz & Stegun 9.4 rational
// approximations (no Bessel function in the retrieval pack's corpus; this
// is the standard two-branch polynomial/asymptotic fit, accurate to better
// than 1e-8 over the whole real line, used throughout classical BEM codes
// for the free-surface wave kernel).
func besselJ0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 8.0 {
		y := x * x
		num := 57568490574.0 + y*(-13362590354.0+y*(651619640.7+y*(-11214424.18+y*(77392.33017+y*(-184.9052456)))))
		den := 57568490411.0 + y*(1029532985.0+y*(9494680.718+y*(59272.64853+y*(267.8532712+y*1.0))))
		return num / den
	}
	z := 8.0 / ax
	y := z * z
	xx := ax - 0.785398164
	p0 := 1.0 + y*(-0.1098628627e-2+y*(0.2734510407e-4+y*(-0.2073370639e-5+y*0.2093887211e-6)))
	q0 := -0.1562499995e-1 + y*(0.1430488765e-3+y*(-0.6911147651e-5+y*(0.7621095161e-6+y*(-0.934935152e-7))))
	return math.Sqrt(0.636619772/ax) * (math.Cos(xx)*p0 - z*math.Sin(xx)*q0)
}
