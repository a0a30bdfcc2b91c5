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

	"github.com/ctessum/sparse"
)

// FluxSolver computes upward and downward radiative flux profiles per
// band given a boundary flux and a per-layer emission field. Boundary
// fluxes have shape [bands, columns]; emission has shape
// [bands, layers, columns]; results have shape
// [bands, layers+1, columns] with interface 0 at the surface.
type FluxSolver interface {
	FluxDown(top, emission *sparse.DenseArray) *sparse.DenseArray
	FluxUp(bottom, emission *sparse.DenseArray) *sparse.DenseArray
}

// TwoStream solves the discrete Schwarzschild equations for a set of
// layers with known absorptivity: each layer transmits a fraction
// (1 - absorptivity) of the incident stream and adds its own emission.
// Columns and bands are independent; within a column the downward
// recursion runs from the top of the atmosphere and the upward
// recursion from the surface.
type TwoStream struct {
	absorptivity *sparse.DenseArray // [bands, layers, columns]
}

// NewTwoStream creates a solver for the given layer absorptivity
// field, shaped [bands, layers, columns].
func NewTwoStream(absorptivity *sparse.DenseArray) *TwoStream {
	if len(absorptivity.Shape) != 3 {
		panic(fmt.Errorf("radiation: two-stream solver needs a [bands, layers, columns] absorptivity field; got shape %v", absorptivity.Shape))
	}
	return &TwoStream{absorptivity: absorptivity}
}

// FluxDown computes the downward flux at every layer interface given
// the downward flux entering at the top of the atmosphere.
func (t *TwoStream) FluxDown(top, emission *sparse.DenseArray) *sparse.DenseArray {
	nb, nl, nc := t.dims()
	t.checkBoundary("top", top)
	t.checkEmission(emission)
	down := sparse.ZerosDense(nb, nl+1, nc)
	for b := 0; b < nb; b++ {
		for j := 0; j < nc; j++ {
			down.Set(top.Get(b, j), b, nl, j)
			for k := nl - 1; k >= 0; k-- {
				d := down.Get(b, k+1, j)*(1-t.absorptivity.Get(b, k, j)) +
					emission.Get(b, k, j)
				down.Set(d, b, k, j)
			}
		}
	}
	return down
}

// FluxUp computes the upward flux at every layer interface given the
// upward flux leaving the surface.
func (t *TwoStream) FluxUp(bottom, emission *sparse.DenseArray) *sparse.DenseArray {
	nb, nl, nc := t.dims()
	t.checkBoundary("bottom", bottom)
	t.checkEmission(emission)
	up := sparse.ZerosDense(nb, nl+1, nc)
	for b := 0; b < nb; b++ {
		for j := 0; j < nc; j++ {
			up.Set(bottom.Get(b, j), b, 0, j)
			for k := 1; k <= nl; k++ {
				u := up.Get(b, k-1, j)*(1-t.absorptivity.Get(b, k-1, j)) +
					emission.Get(b, k-1, j)
				up.Set(u, b, k, j)
			}
		}
	}
	return up
}

func (t *TwoStream) dims() (nb, nl, nc int) {
	return t.absorptivity.Shape[0], t.absorptivity.Shape[1], t.absorptivity.Shape[2]
}

func (t *TwoStream) checkBoundary(name string, flux *sparse.DenseArray) {
	nb, _, nc := t.dims()
	if len(flux.Shape) != 2 || flux.Shape[0] != nb || flux.Shape[1] != nc {
		panic(fmt.Errorf("radiation: %s boundary flux shape %v does not match [%d, %d]",
			name, flux.Shape, nb, nc))
	}
}

func (t *TwoStream) checkEmission(emission *sparse.DenseArray) {
	nb, nl, nc := t.dims()
	if len(emission.Shape) != 3 || emission.Shape[0] != nb ||
		emission.Shape[1] != nl || emission.Shape[2] != nc {
		panic(fmt.Errorf("radiation: emission field shape %v does not match [%d, %d, %d]",
			emission.Shape, nb, nl, nc))
	}
}
