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

// Grid describes the vertical pressure grid and the set of horizontal
// columns that radiative fields are computed on. Layer index 0 is
// adjacent to the surface and indexes increase upward; layer interfaces
// run from 0 (surface) to NLayers (top of atmosphere).
type Grid struct {
	nLayers int
	nCols   int
	dP      []float64 // pressure thickness of each layer [hPa]
}

// NewGrid creates a grid from per-layer pressure thicknesses dP [hPa],
// ordered surface to top, replicated over nCols independent columns.
func NewGrid(dP []float64, nCols int) (*Grid, error) {
	if len(dP) == 0 {
		return nil, fmt.Errorf("radiation: grid needs at least one layer")
	}
	if nCols < 1 {
		return nil, fmt.Errorf("radiation: grid needs at least one column; got %d", nCols)
	}
	for k, d := range dP {
		if d <= 0 {
			return nil, fmt.Errorf("radiation: layer %d pressure thickness must be positive; got %g hPa", k, d)
		}
	}
	g := &Grid{
		nLayers: len(dP),
		nCols:   nCols,
		dP:      make([]float64, len(dP)),
	}
	copy(g.dP, dP)
	return g, nil
}

// NewEvenPressureGrid creates a grid of nLayers layers of equal
// pressure thickness spanning from surface pressure pSurf [hPa] to
// zero pressure at the top of the atmosphere.
func NewEvenPressureGrid(nLayers, nCols int, pSurf float64) (*Grid, error) {
	if nLayers < 1 {
		return nil, fmt.Errorf("radiation: grid needs at least one layer; got %d", nLayers)
	}
	if pSurf <= 0 {
		return nil, fmt.Errorf("radiation: surface pressure must be positive; got %g hPa", pSurf)
	}
	dP := make([]float64, nLayers)
	for k := range dP {
		dP[k] = pSurf / float64(nLayers)
	}
	return NewGrid(dP, nCols)
}

// NLayers returns the number of vertical layers.
func (gd *Grid) NLayers() int { return gd.nLayers }

// NCols returns the number of horizontal columns.
func (gd *Grid) NCols() int { return gd.nCols }

// MassPerLayer returns the mass of air per unit area in each layer
// [kg/m2], derived hydrostatically from the layer pressure thickness.
func (gd *Grid) MassPerLayer() []float64 {
	m := make([]float64, gd.nLayers)
	for k, dp := range gd.dP {
		m[k] = dp * mbToPa / g
	}
	return m
}

// UniformField returns a new layer-by-column field with every element
// set to val.
func (gd *Grid) UniformField(val float64) *sparse.DenseArray {
	f := sparse.ZerosDense(gd.nLayers, gd.nCols)
	for i := range f.Elements {
		f.Elements[i] = val
	}
	return f
}
