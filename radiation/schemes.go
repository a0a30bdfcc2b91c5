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

// DefaultCO2VMR is the default CO2 volumetric mixing ratio.
const DefaultCO2VMR = 380.0e-6

// MITgcm aim longwave absorption coefficients: layer absorptivities
// per dp = 1e5 Pa, with the water vapor terms expressed per
// dq = 1 g/kg (Molteni 2003; MITgcm pkg/aim_v23).
const (
	ablwin = 0.7  // window region
	ablco2 = 4.0  // CO2 band
	ablwv1 = 0.7  // weak water vapor band
	ablwv2 = 50.0 // strong water vapor band

	// refPressureDrop normalizes the aim coefficients to a
	// cross-section per unit mass.
	refPressureDrop = 1.0e5 // Pa
	// aimCO2 is the CO2 mixing ratio the aim coefficients are tuned
	// for.
	aimCO2 = 3.8e-6
)

// ThreeBandSW creates a three-band shortwave scheme largely based on
// the spectral decomposition of the Moist Radiative-Convective Model
// by Aarnout van Delden, Utrecht University:
//
//	band 0: Hartley and Huggins band (UV, 1%, 200 - 340 nm)
//	band 1: Chappuis band (27%, 450 - 800 nm)
//	band 2: remaining radiation (72%)
//
// Ozone absorbs in the two short bands and water vapor weakly in all
// three. The CO2 absorber carries an all-zero cross-section table; it
// is present because the optical path computation requires it. The
// ozone profile starts at zero and is owned by the caller through the
// scheme's absorber set. albedoSfc is the shortwave surface albedo.
func ThreeBandSW(gd *Grid, state *State, albedoSfc float64) (*Scheme, error) {
	bands, err := NewBands([]float64{0.01, 0.27, 0.72})
	if err != nil {
		return nil, err
	}

	absorbers := NewAbsorberSet()
	absorbers.Set(&Absorber{Name: "CO2", Kind: VolumeMixingRatio, MixingRatio: gd.UniformField(DefaultCO2VMR)})
	absorbers.Set(&Absorber{Name: "O3", Kind: VolumeMixingRatio, MixingRatio: gd.UniformField(0)})
	absorbers.Set(&Absorber{Name: "H2O", Kind: SpecificHumidity, MixingRatio: state.Q})

	// Ozone cross-sections [m2/molecule] converted to [m2/kg].
	o3PerMolecule := []float64{200.0e-24, 0.285e-24, 0}
	o3 := make([]float64, len(o3PerMolecule))
	for b, v := range o3PerMolecule {
		o3[b] = v * rd / kBoltzmann
	}

	return NewScheme(gd, state, SchemeOptions{
		Bands:     bands,
		Absorbers: absorbers,
		CrossSections: map[string][]float64{
			"O3":  o3,
			"H2O": {0.002, 0.002, 0.002},
			"CO2": {0, 0, 0},
		},
		CosZenith:     0.5, // cosine of the average solar zenith angle
		SurfaceAlbedo: albedoSfc,
		Emission:      NoEmission{},
	})
}

// FourBandLW creates a four-band longwave scheme closely following the
// SPEEDY / MITgcm aim longwave model, with bands indexed per the
// SPEEDY constants: window, CO2 band, weak and strong water vapor
// bands. SPEEDY recomputes the band partitioning from the emitting
// temperature; here the band fractions are fixed at the mean of the
// SPEEDY partitioning over -30 to +30 degrees C.
//
// Absorption in the window region is attributed to CO2, so the CO2
// cross-section is nonzero in the window and CO2 bands and the water
// vapor cross-section in the two water vapor bands. The surface is
// treated as a longwave blackbody (zero albedo), and there is no
// directional reduction of the emitted beam (cosine zenith angle 1).
func FourBandLW(gd *Grid, state *State) (*Scheme, error) {
	bands, err := NewBands(MeanSPEEDYBandFraction(243.15, 303.15, 50))
	if err != nil {
		return nil, err
	}

	absorbers := NewAbsorberSet()
	absorbers.Set(&Absorber{Name: "CO2", Kind: VolumeMixingRatio, MixingRatio: gd.UniformField(DefaultCO2VMR)})
	absorbers.Set(&Absorber{Name: "H2O", Kind: SpecificHumidity, MixingRatio: state.Q})

	co2 := []float64{
		ablwin / refPressureDrop * g / aimCO2,
		ablco2 / refPressureDrop * g / aimCO2,
		0,
		0,
	}
	// The factor 1e3 converts the aim per-(g/kg) water vapor terms to
	// the kg/kg convention used for specific humidity.
	h2o := []float64{
		0,
		0,
		ablwv1 / refPressureDrop * g * 1e3,
		ablwv2 / refPressureDrop * g * 1e3,
	}

	return NewScheme(gd, state, SchemeOptions{
		Bands:     bands,
		Absorbers: absorbers,
		CrossSections: map[string][]float64{
			"CO2": co2,
			"H2O": h2o,
		},
		CosZenith:     1,
		SurfaceAlbedo: 0,
		Emission:      NewGraybodyEmission(bands, state),
	})
}
