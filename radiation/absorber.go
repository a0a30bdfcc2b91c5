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

// AbsorberKind says how an absorber's mixing ratio field is expressed,
// which determines the conversion to the mass mixing ratio used in
// the absorption law.
type AbsorberKind int

const (
	// VolumeMixingRatio is a volumetric (molar) mixing ratio;
	// converted to mass mixing ratio as q = vmr / (1 + vmr).
	VolumeMixingRatio AbsorberKind = iota
	// SpecificHumidity is mass of vapor per unit total mass, already
	// a mass mixing ratio; no conversion is applied. Absorbers of
	// this kind track the host model's humidity field.
	SpecificHumidity
)

// Absorber is a gas species that absorbs radiation. MixingRatio is a
// layer-by-column field owned by the host model and referenced here;
// it may change between radiative heating calls.
type Absorber struct {
	Name        string
	Kind        AbsorberKind
	MixingRatio *sparse.DenseArray
}

// MassMixingRatio returns the absorber amount as mass of absorber per
// unit total mass, converting from the gas-specific mixing ratio
// convention.
func (a *Absorber) MassMixingRatio() *sparse.DenseArray {
	q := a.MixingRatio.Copy()
	switch a.Kind {
	case SpecificHumidity:
		// already mass per unit total mass
	case VolumeMixingRatio:
		for i, v := range q.Elements {
			q.Elements[i] = v / (1 + v)
		}
	default:
		panic(fmt.Errorf("radiation: unknown absorber kind %d for %s", a.Kind, a.Name))
	}
	return q
}

// AbsorberSet is an insertion-ordered collection of absorbers. The
// order fixes the accumulation order of the optical path sum so
// results are reproducible.
type AbsorberSet struct {
	order  []string
	byName map[string]*Absorber
}

// NewAbsorberSet creates an empty absorber set.
func NewAbsorberSet() *AbsorberSet {
	return &AbsorberSet{byName: make(map[string]*Absorber)}
}

// Set adds an absorber to the set, or replaces the existing absorber
// with the same name keeping its position.
func (s *AbsorberSet) Set(a *Absorber) {
	if _, ok := s.byName[a.Name]; !ok {
		s.order = append(s.order, a.Name)
	}
	s.byName[a.Name] = a
}

// Get returns the named absorber.
func (s *AbsorberSet) Get(name string) (*Absorber, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// List returns the absorbers in insertion order.
func (s *AbsorberSet) List() []*Absorber {
	out := make([]*Absorber, len(s.order))
	for i, name := range s.order {
		out[i] = s.byName[name]
	}
	return out
}

// Len returns the number of absorbers in the set.
func (s *AbsorberSet) Len() int { return len(s.order) }
