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
	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats"
)

// wattPerMeter2 is the dimension of a radiative flux [kg s-3].
var wattPerMeter2 = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3}

// SchemeOptions configures a Scheme.
type SchemeOptions struct {
	// Bands is the spectral decomposition.
	Bands *Bands
	// Absorbers are the absorbing gases; a CO2 entry is required by
	// the optical path computation.
	Absorbers *AbsorberSet
	// CrossSections gives, for each absorber, the absorption
	// cross-section per unit mass [m2/kg] in each band.
	CrossSections map[string][]float64
	// CosZenith is the cosine of the average zenith angle; 1 for
	// emitted longwave radiation with no directional reduction.
	CosZenith float64
	// SurfaceAlbedo is broadcast to one reflectivity per band.
	SurfaceAlbedo float64
	// Emission supplies the per-layer emission field.
	Emission EmissionSource
}

// Scheme is an N-band two-stream radiative transfer scheme on a fixed
// grid. The band decomposition, cross-section tables, zenith angle
// and albedo are fixed at construction; absorber mixing ratios and the
// host state may change between calls, and every call to
// RadiativeHeating fully recomputes all derived fields from them.
type Scheme struct {
	bands        *Bands
	grid         *Grid
	state        *State
	absorbers    *AbsorberSet
	crossSection map[string][]float64
	cosZen       float64
	albedoSfc    []float64 // per band
	massPerLayer []float64 // [kg/m2]
	emission     EmissionSource

	// FluxFromSpace is the downwelling flux entering the top of the
	// atmosphere in each column [W/m2]. A nil slice means the flux is
	// not yet available, in which case a zero flux of the correct
	// shape is substituted.
	FluxFromSpace []float64
	// FluxFromSfc is the flux emitted (not reflected) by the surface
	// in each column [W/m2].
	FluxFromSfc []float64

	// Fields below are outputs, overwritten on every call to
	// RadiativeHeating.

	// Absorptivity is the fraction of band radiance absorbed crossing
	// each layer [bands, layers, columns].
	Absorptivity *sparse.DenseArray
	// Emission is the per-layer emission field [bands, layers, columns].
	Emission *sparse.DenseArray
	// FluxDown and FluxUp are the two-stream flux profiles
	// [bands, layers+1, columns]; FluxNet is their difference
	// (up minus down).
	FluxDown, FluxUp, FluxNet *sparse.DenseArray
	// Absorbed is the flux convergence in each layer
	// [bands, layers, columns] [W/m2].
	Absorbed *sparse.DenseArray
	// FluxToSfc and FluxToSpace are the band-summed boundary fluxes
	// reaching the surface and escaping the top of the atmosphere,
	// per column [W/m2].
	FluxToSfc, FluxToSpace []float64
	// AbsorbedTotal is the sum of Absorbed over all bands, layers,
	// and columns [W/m2].
	AbsorbedTotal float64
}

// NewScheme creates a radiation scheme on the given grid reading from
// and writing to the given host state. It validates the configuration:
// the absorber set must include CO2, and every absorber needs a
// cross-section table with one entry per band.
func NewScheme(gd *Grid, state *State, opts SchemeOptions) (*Scheme, error) {
	if opts.Bands == nil {
		return nil, fmt.Errorf("radiation: scheme needs a band decomposition")
	}
	if opts.Absorbers == nil || opts.Absorbers.Len() == 0 {
		return nil, fmt.Errorf("radiation: scheme needs at least one absorber")
	}
	if _, ok := opts.Absorbers.Get("CO2"); !ok {
		return nil, fmt.Errorf("radiation: absorber set is missing the required CO2 entry")
	}
	if opts.CosZenith <= 0 || opts.CosZenith > 1 {
		return nil, fmt.Errorf("radiation: cosine zenith angle must be in (0, 1]; got %g", opts.CosZenith)
	}
	if opts.SurfaceAlbedo < 0 || opts.SurfaceAlbedo > 1 {
		return nil, fmt.Errorf("radiation: surface albedo must be in [0, 1]; got %g", opts.SurfaceAlbedo)
	}
	if opts.Emission == nil {
		return nil, fmt.Errorf("radiation: scheme needs an emission source")
	}
	nb := opts.Bands.Len()
	for _, ab := range opts.Absorbers.List() {
		kappa, ok := opts.CrossSections[ab.Name]
		if !ok {
			return nil, fmt.Errorf("radiation: no absorption cross-section table for %s", ab.Name)
		}
		if len(kappa) != nb {
			return nil, fmt.Errorf("radiation: %s cross-section table has %d entries for %d bands",
				ab.Name, len(kappa), nb)
		}
		for b, k := range kappa {
			if k < 0 {
				return nil, fmt.Errorf("radiation: %s cross-section in band %d is negative (%g)",
					ab.Name, b, k)
			}
		}
	}
	albedo := make([]float64, nb)
	for b := range albedo {
		albedo[b] = opts.SurfaceAlbedo
	}
	s := &Scheme{
		bands:        opts.Bands,
		grid:         gd,
		state:        state,
		absorbers:    opts.Absorbers,
		crossSection: opts.CrossSections,
		cosZen:       opts.CosZenith,
		albedoSfc:    albedo,
		massPerLayer: gd.MassPerLayer(),
		emission:     opts.Emission,
		FluxFromSfc:  make([]float64, gd.NCols()),
	}
	return s, nil
}

// Bands returns the scheme's spectral decomposition.
func (s *Scheme) Bands() *Bands { return s.bands }

// Absorbers returns the scheme's absorber set.
func (s *Scheme) Absorbers() *AbsorberSet { return s.absorbers }

// RadiativeHeating recomputes all radiative fields from the current
// absorber and state fields and writes the band-summed heating rate
// into the host state under "Tatm". Absorptivity must be recomputed
// on every call because the water vapor field changes over time.
func (s *Scheme) RadiativeHeating() error {
	s.refreshWaterVapor()

	tau, err := s.OpticalPath()
	if err != nil {
		return err
	}
	s.Absorptivity = Absorptivity(tau)
	s.Emission = s.emission.Emission(s.Absorptivity)

	nb, nl, nc := s.bands.Len(), s.grid.NLayers(), s.grid.NCols()

	fromSpace := s.FluxFromSpace
	if fromSpace == nil {
		// The incoming flux is not available yet; substitute zero.
		fromSpace = make([]float64, nc)
	} else if len(fromSpace) != nc {
		return fmt.Errorf("radiation: flux from space has %d columns; grid has %d", len(fromSpace), nc)
	}
	if len(s.FluxFromSfc) != nc {
		return fmt.Errorf("radiation: flux from surface has %d columns; grid has %d", len(s.FluxFromSfc), nc)
	}

	solver := NewTwoStream(s.Absorptivity)
	s.FluxDown = solver.FluxDown(s.bands.SplitChannels(fromSpace), s.Emission)

	s.FluxToSfc = make([]float64, nc)
	for j := 0; j < nc; j++ {
		for b := 0; b < nb; b++ {
			s.FluxToSfc[j] += s.FluxDown.Get(b, 0, j)
		}
	}

	// The upward boundary condition is the surface emission plus the
	// reflected part of the downward flux reaching the surface.
	upBottom := s.bands.SplitChannels(s.FluxFromSfc)
	for b := 0; b < nb; b++ {
		for j := 0; j < nc; j++ {
			upBottom.AddVal(s.albedoSfc[b]*s.FluxDown.Get(b, 0, j), b, j)
		}
	}
	s.FluxUp = solver.FluxUp(upBottom, s.Emission)

	s.FluxNet = s.FluxUp.Copy()
	for i, v := range s.FluxDown.Elements {
		s.FluxNet.Elements[i] -= v
	}

	s.Absorbed = sparse.ZerosDense(nb, nl, nc)
	heating := sparse.ZerosDense(nl, nc)
	for b := 0; b < nb; b++ {
		for k := 0; k < nl; k++ {
			for j := 0; j < nc; j++ {
				a := s.FluxNet.Get(b, k, j) - s.FluxNet.Get(b, k+1, j)
				s.Absorbed.Set(a, b, k, j)
				heating.AddVal(a, k, j)
			}
		}
	}
	s.state.HeatingRate["Tatm"] = heating
	s.AbsorbedTotal = s.Absorbed.Sum()

	s.FluxToSpace = make([]float64, nc)
	for j := 0; j < nc; j++ {
		for b := 0; b < nb; b++ {
			s.FluxToSpace[j] += s.FluxUp.Get(b, nl, j)
		}
	}
	return nil
}

// Diagnostics summarizes the boundary fluxes and total absorbed power
// from the most recent RadiativeHeating call as dimensioned values.
type Diagnostics struct {
	// AbsorbedTotal is the column-summed flux convergence [W/m2].
	AbsorbedTotal *unit.Unit
	// FluxToSurface is the mean downward flux reaching the surface
	// across columns [W/m2].
	FluxToSurface *unit.Unit
	// FluxToSpace is the mean upward flux escaping the top of the
	// atmosphere across columns [W/m2].
	FluxToSpace *unit.Unit
}

// Diagnostics returns boundary flux diagnostics for the most recent
// RadiativeHeating call.
func (s *Scheme) Diagnostics() Diagnostics {
	nc := float64(s.grid.NCols())
	return Diagnostics{
		AbsorbedTotal: unit.New(s.AbsorbedTotal, wattPerMeter2),
		FluxToSurface: unit.New(floats.Sum(s.FluxToSfc)/nc, wattPerMeter2),
		FluxToSpace:   unit.New(floats.Sum(s.FluxToSpace)/nc, wattPerMeter2),
	}
}

// refreshWaterVapor re-points specific humidity absorbers at the host
// model's current humidity field, which may have been replaced since
// the last call.
func (s *Scheme) refreshWaterVapor() {
	for _, ab := range s.absorbers.List() {
		if ab.Kind == SpecificHumidity {
			ab.MixingRatio = s.state.Q
		}
	}
}

// checkAtmField verifies that a field has the grid's layer-by-column
// shape.
func (s *Scheme) checkAtmField(name string, f *sparse.DenseArray) error {
	nl, nc := s.grid.NLayers(), s.grid.NCols()
	if f == nil {
		return fmt.Errorf("radiation: %s field is nil", name)
	}
	if len(f.Shape) != 2 || f.Shape[0] != nl || f.Shape[1] != nc {
		return fmt.Errorf("radiation: %s field shape %v does not match grid [%d, %d]",
			name, f.Shape, nl, nc)
	}
	return nil
}
