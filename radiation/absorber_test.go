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

func TestMassMixingRatioConversion(t *testing.T) {
	vmr := sparse.ZerosDense(2, 1)
	vmr.Set(380.0e-6, 0, 0)
	vmr.Set(0.02, 1, 0)

	co2 := &Absorber{Name: "CO2", Kind: VolumeMixingRatio, MixingRatio: vmr}
	q := co2.MassMixingRatio()
	if different(q.Get(0, 0), 380.0e-6/(1+380.0e-6), testTolerance) {
		t.Errorf("vmr conversion: got %v", q.Get(0, 0))
	}
	if different(q.Get(1, 0), 0.02/1.02, testTolerance) {
		t.Errorf("vmr conversion: got %v", q.Get(1, 0))
	}
	// the input field is not modified
	if vmr.Get(0, 0) != 380.0e-6 {
		t.Error("conversion mutated the mixing ratio field")
	}

	h2o := &Absorber{Name: "H2O", Kind: SpecificHumidity, MixingRatio: vmr}
	q = h2o.MassMixingRatio()
	if q.Get(1, 0) != 0.02 {
		t.Errorf("specific humidity should pass through unchanged; got %v", q.Get(1, 0))
	}
}

func TestAbsorberSetOrder(t *testing.T) {
	s := NewAbsorberSet()
	f := sparse.ZerosDense(1, 1)
	s.Set(&Absorber{Name: "CO2", Kind: VolumeMixingRatio, MixingRatio: f})
	s.Set(&Absorber{Name: "O3", Kind: VolumeMixingRatio, MixingRatio: f})
	s.Set(&Absorber{Name: "H2O", Kind: SpecificHumidity, MixingRatio: f})
	// replacement keeps the original position
	s.Set(&Absorber{Name: "O3", Kind: VolumeMixingRatio, MixingRatio: f})

	want := []string{"CO2", "O3", "H2O"}
	list := s.List()
	if len(list) != len(want) {
		t.Fatalf("got %d absorbers, want %d", len(list), len(want))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, list[i].Name, name)
		}
	}
	if _, ok := s.Get("CH4"); ok {
		t.Error("Get returned an absorber that was never added")
	}
}
