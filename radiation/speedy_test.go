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
	"testing"
)

func TestSPEEDYBandFractionReference(t *testing.T) {
	// At the CO2 band's reference temperature the quadratic
	// correction vanishes and the band fraction is the fit constant.
	f := SPEEDYBandFraction(247)
	if f[SPEEDYCO2] != 0.148 {
		t.Errorf("CO2 band fraction at 247 K: got %v, want exactly 0.148", f[SPEEDYCO2])
	}
}

func TestSPEEDYBandFractionSumsToOne(t *testing.T) {
	for _, temp := range []float64{180, 200, 230, 247, 273.15, 282, 300, 315, 340} {
		f := SPEEDYBandFraction(temp)
		sum := f[0] + f[1] + f[2] + f[3]
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("band fractions at %g K sum to %v, want 1", temp, sum)
		}
	}
}

func TestClampedSPEEDYBandFraction(t *testing.T) {
	clamped := ClampedSPEEDYBandFraction(250, SPEEDYTempMin, SPEEDYTempMax)
	want := SPEEDYBandFraction(SPEEDYTempMax)
	if clamped != want {
		t.Errorf("clamped fraction at 250 K: got %v, want %v", clamped, want)
	}
	clamped = ClampedSPEEDYBandFraction(150, SPEEDYTempMin, SPEEDYTempMax)
	want = SPEEDYBandFraction(SPEEDYTempMin)
	if clamped != want {
		t.Errorf("clamped fraction at 150 K: got %v, want %v", clamped, want)
	}
	// Inside the bounds clamping changes nothing.
	if ClampedSPEEDYBandFraction(215, SPEEDYTempMin, SPEEDYTempMax) != SPEEDYBandFraction(215) {
		t.Error("clamping changed an in-range temperature")
	}
}

func TestMeanSPEEDYBandFraction(t *testing.T) {
	mean := MeanSPEEDYBandFraction(243.15, 303.15, 50)
	if len(mean) != 4 {
		t.Fatalf("mean band fraction has %d entries, want 4", len(mean))
	}
	var sum float64
	for i, f := range mean {
		if f <= 0 || f >= 1 {
			t.Errorf("mean fraction %d = %v out of (0, 1)", i, f)
		}
		sum += f
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("mean band fractions sum to %v, want 1", sum)
	}
	// The mean of a quadratic over a symmetric range is the midpoint
	// value plus curvature times the sample variance (about 312 K2
	// here), so it stays within 4e-3 of the midpoint value.
	mid := SPEEDYBandFraction(273.15)
	for i, f := range mean {
		if math.Abs(f-mid[i]) > 4e-3 {
			t.Errorf("mean fraction %d = %v too far from midpoint value %v", i, f, mid[i])
		}
	}
}
