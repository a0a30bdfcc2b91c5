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
	"testing"

	"github.com/ctessum/sparse"
)

func TestGraybodyEmission(t *testing.T) {
	const temp = 300.0
	gd := testGrid(t, 2, 1)
	state := NewState(gd, temp, temp, 0)
	bands := mustBands(t, []float64{0.4, 0.6})

	absorptivity := sparse.ZerosDense(2, 2, 1)
	for i := range absorptivity.Elements {
		absorptivity.Elements[i] = 0.5
	}
	em := NewGraybodyEmission(bands, state).Emission(absorptivity)
	planck := sigmaSB * temp * temp * temp * temp
	for b := 0; b < 2; b++ {
		want := 0.5 * bands.Fraction(b) * planck
		for k := 0; k < 2; k++ {
			if different(em.Get(b, k, 0), want, testTolerance) {
				t.Errorf("band %d layer %d emission %v, want %v", b, k, em.Get(b, k, 0), want)
			}
		}
	}
}

func TestNoEmission(t *testing.T) {
	absorptivity := sparse.ZerosDense(3, 4, 2)
	for i := range absorptivity.Elements {
		absorptivity.Elements[i] = 0.9
	}
	em := NoEmission{}.Emission(absorptivity)
	if em.Shape[0] != 3 || em.Shape[1] != 4 || em.Shape[2] != 2 {
		t.Fatalf("emission shape %v, want [3 4 2]", em.Shape)
	}
	for i, v := range em.Elements {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}
