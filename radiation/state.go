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

// State holds the host-model fields the radiation scheme reads and
// writes. Tatm and Q are layer-by-column fields; Ts is per column.
// The scheme writes its output into HeatingRate keyed by the grid
// component name ("Tatm").
type State struct {
	Tatm *sparse.DenseArray // atmospheric temperature [K]
	Ts   []float64          // surface temperature [K]
	Q    *sparse.DenseArray // specific humidity [kg/kg]

	HeatingRate map[string]*sparse.DenseArray // [W/m2]
}

// NewState creates a state with uniform atmospheric temperature tAtm
// [K], surface temperature tSurf [K], and specific humidity q [kg/kg].
func NewState(gd *Grid, tAtm, tSurf, q float64) *State {
	ts := make([]float64, gd.NCols())
	for j := range ts {
		ts[j] = tSurf
	}
	return &State{
		Tatm:        gd.UniformField(tAtm),
		Ts:          ts,
		Q:           gd.UniformField(q),
		HeatingRate: make(map[string]*sparse.DenseArray),
	}
}
