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

import "github.com/ctessum/sparse"

// EmissionSource computes the per-band, per-layer emission field for
// the current atmospheric state given the freshly computed layer
// absorptivity (shape [bands, layers, columns]; the result has the
// same shape).
type EmissionSource interface {
	Emission(absorptivity *sparse.DenseArray) *sparse.DenseArray
}

// GraybodyEmission emits sigma*T^4 split across bands by the band
// fractions and scaled by the layer absorptivity, so by Kirchhoff's
// law each layer's emissivity equals its absorptivity.
type GraybodyEmission struct {
	bands *Bands
	state *State
}

// NewGraybodyEmission creates a longwave emission source reading the
// current atmospheric temperature from state.
func NewGraybodyEmission(bands *Bands, state *State) *GraybodyEmission {
	return &GraybodyEmission{bands: bands, state: state}
}

// Emission implements EmissionSource.
func (e *GraybodyEmission) Emission(absorptivity *sparse.DenseArray) *sparse.DenseArray {
	nb, nl, nc := absorptivity.Shape[0], absorptivity.Shape[1], absorptivity.Shape[2]
	em := sparse.ZerosDense(nb, nl, nc)
	for b := 0; b < nb; b++ {
		f := e.bands.Fraction(b)
		for k := 0; k < nl; k++ {
			for j := 0; j < nc; j++ {
				t := e.state.Tatm.Get(k, j)
				planck := sigmaSB * t * t * t * t
				em.Set(absorptivity.Get(b, k, j)*f*planck, b, k, j)
			}
		}
	}
	return em
}

// NoEmission is the emission source for shortwave schemes, where the
// atmosphere's thermal emission is negligible: the emission field is
// zero everywhere.
type NoEmission struct{}

// Emission implements EmissionSource.
func (NoEmission) Emission(absorptivity *sparse.DenseArray) *sparse.DenseArray {
	return sparse.ZerosDense(absorptivity.Shape...)
}
