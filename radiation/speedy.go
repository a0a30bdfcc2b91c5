/*
Copyright © 2021 the climlab authors.
This file is part of climlab.

climlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

climlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with climlab.  If not, see <http://www.gnu.org/licenses/>.
*/

package radiation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SPEEDY band indexes.
const (
	// SPEEDYWindow is the atmospheric window region (8.5 - 11 um).
	SPEEDYWindow = iota
	// SPEEDYCO2 is the band of strong CO2 absorption around 15 um.
	SPEEDYCO2
	// SPEEDYWeakH2O aggregates regions of weak to moderate water
	// vapor absorption.
	SPEEDYWeakH2O
	// SPEEDYStrongH2O aggregates regions of strong water vapor
	// absorption.
	SPEEDYStrongH2O
)

// eps3 reduces the weak water vapor band per the MITgcm aim
// parameterization (EPS3 in phy_radiat.F).
const eps3 = 0.95

// Temperature bounds of the table the SPEEDY fit was built from
// [K]. The fit itself is quadratic and remains finite outside these
// bounds, so SPEEDYBandFraction does not clamp its input; callers
// that want clamping can use ClampedSPEEDYBandFraction.
const (
	SPEEDYTempMin = 200
	SPEEDYTempMax = 230
)

// SPEEDYBandFraction partitions longwave emission at temperature t [K]
// into the four SPEEDY / MITgcm spectral bands. The returned fractions
// sum to 1: the CO2, weak-H2O and strong-H2O bands are quadratic fits
// centered on band-specific reference temperatures, and the window
// band takes the residual.
func SPEEDYBandFraction(t float64) [4]float64 {
	var f [4]float64
	f[SPEEDYCO2] = 0.148 - 3.0e-6*(t-247)*(t-247)
	f[SPEEDYWeakH2O] = (0.375 - 5.5e-6*(t-282)*(t-282)) * eps3
	f[SPEEDYStrongH2O] = 0.314 + 1.0e-5*(t-315)*(t-315)
	f[SPEEDYWindow] = 1 - (f[SPEEDYCO2] + f[SPEEDYWeakH2O] + f[SPEEDYStrongH2O])
	return f
}

// ClampedSPEEDYBandFraction is SPEEDYBandFraction with the input
// temperature clamped to [lo, hi] first.
func ClampedSPEEDYBandFraction(t, lo, hi float64) [4]float64 {
	return SPEEDYBandFraction(math.Min(math.Max(t, lo), hi))
}

// MeanSPEEDYBandFraction averages the SPEEDY band fractions over n
// evenly spaced temperatures between lo and hi [K], producing a fixed
// band fraction vector suitable for a longwave scheme that does not
// recompute the partitioning from the current temperature.
func MeanSPEEDYBandFraction(lo, hi float64, n int) []float64 {
	temps := make([]float64, n)
	floats.Span(temps, lo, hi)
	mean := make([]float64, 4)
	for _, t := range temps {
		f := SPEEDYBandFraction(t)
		for i, v := range f {
			mean[i] += v
		}
	}
	floats.Scale(1/float64(n), mean)
	return mean
}
