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
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// OpticalPath computes the accumulated optical depth of each layer in
// each band from the current absorber fields: for every gas, the mass
// mixing ratio times the per-band absorption cross-section, summed
// over gases in the fixed absorber order, then scaled by the layer
// mass divided by the cosine of the zenith angle. The result has
// shape [bands, layers, columns].
//
// A CO2 absorber must be present, with a cross-section table even if
// it is all zeros; its absence is a configuration error.
func (s *Scheme) OpticalPath() (*sparse.DenseArray, error) {
	if _, ok := s.absorbers.Get("CO2"); !ok {
		return nil, fmt.Errorf("radiation: optical path requires a CO2 absorber")
	}
	nb, nl, nc := s.bands.Len(), s.grid.NLayers(), s.grid.NCols()
	tau := sparse.ZerosDense(nb, nl, nc)
	for _, ab := range s.absorbers.List() {
		kappa, ok := s.crossSection[ab.Name]
		if !ok {
			return nil, fmt.Errorf("radiation: no absorption cross-section table for %s", ab.Name)
		}
		if err := s.checkAtmField(ab.Name+" mixing ratio", ab.MixingRatio); err != nil {
			return nil, err
		}
		q := ab.MassMixingRatio()
		for b := 0; b < nb; b++ {
			if kappa[b] == 0 {
				continue
			}
			for k := 0; k < nl; k++ {
				for j := 0; j < nc; j++ {
					tau.AddVal(q.Get(k, j)*kappa[b], b, k, j)
				}
			}
		}
	}
	// The cross-sections broadcast per band; mass and zenith angle
	// are per layer and direction, so the scaling happens once after
	// the sum over gases.
	for k, m := range s.massPerLayer {
		f := m / s.cosZen
		for b := 0; b < nb; b++ {
			for j := 0; j < nc; j++ {
				tau.Set(tau.Get(b, k, j)*f, b, k, j)
			}
		}
	}
	return tau, nil
}

// Absorptivity converts optical depth to layer absorptivity through
// the exponential attenuation law 1 - exp(-tau), elementwise.
func Absorptivity(tau *sparse.DenseArray) *sparse.DenseArray {
	a := tau.Copy()
	for i, v := range a.Elements {
		a.Elements[i] = 1 - math.Exp(-v)
	}
	return a
}
