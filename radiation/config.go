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
	"io"

	"github.com/BurntSushi/toml"
)

// Config describes a column radiation scenario. It is usually decoded
// from a TOML file.
type Config struct {
	// Scheme selects the band scheme: "shortwave3" or "longwave4".
	Scheme string

	// NLayers and NCols give the grid dimensions.
	NLayers int
	NCols   int
	// SurfacePressure is the pressure at the bottom of the column
	// [hPa].
	SurfacePressure float64

	// AtmTemperature is the uniform atmospheric temperature [K].
	AtmTemperature float64
	// SurfaceTemperature is the surface temperature [K].
	SurfaceTemperature float64
	// SpecificHumidity is the uniform specific humidity [kg/kg].
	SpecificHumidity float64

	// SurfaceAlbedo is the shortwave surface albedo; ignored by the
	// longwave scheme.
	SurfaceAlbedo float64
	// Insolation is the downwelling flux at the top of the
	// atmosphere [W/m2]. Zero or negative means no flux source is
	// available and the scheme substitutes zero.
	Insolation float64
	// CO2VMR overrides the default CO2 volumetric mixing ratio when
	// positive.
	CO2VMR float64
}

// DefaultConfig returns a scenario with reasonable defaults: a
// 30-layer single-column longwave computation on a 288 K isothermal
// atmosphere.
func DefaultConfig() Config {
	return Config{
		Scheme:             "longwave4",
		NLayers:            30,
		NCols:              1,
		SurfacePressure:    1000,
		AtmTemperature:     288,
		SurfaceTemperature: 288,
		SpecificHumidity:   5.0e-3,
		SurfaceAlbedo:      0.3,
	}
}

// LoadConfig decodes a TOML scenario, applying defaults for fields
// that are absent.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeReader(r, &c); err != nil {
		return Config{}, fmt.Errorf("radiation: decoding config: %v", err)
	}
	return c, nil
}

// Build constructs the grid, host state, and scheme the scenario
// describes. For the longwave scheme the surface emits as a blackbody
// at the surface temperature; for the shortwave scheme the insolation
// enters at the top of the atmosphere.
func (c Config) Build() (*Grid, *State, *Scheme, error) {
	gd, err := NewEvenPressureGrid(c.NLayers, c.NCols, c.SurfacePressure)
	if err != nil {
		return nil, nil, nil, err
	}
	state := NewState(gd, c.AtmTemperature, c.SurfaceTemperature, c.SpecificHumidity)

	var s *Scheme
	switch c.Scheme {
	case "shortwave3":
		s, err = ThreeBandSW(gd, state, c.SurfaceAlbedo)
	case "longwave4":
		s, err = FourBandLW(gd, state)
	default:
		return nil, nil, nil, fmt.Errorf("radiation: unknown scheme %q (want shortwave3 or longwave4)", c.Scheme)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	if c.CO2VMR > 0 {
		co2, _ := s.Absorbers().Get("CO2")
		co2.MixingRatio = gd.UniformField(c.CO2VMR)
	}
	if c.Insolation > 0 {
		flux := make([]float64, gd.NCols())
		for j := range flux {
			flux[j] = c.Insolation
		}
		s.FluxFromSpace = flux
	}
	if c.Scheme == "longwave4" {
		for j, ts := range state.Ts {
			s.FluxFromSfc[j] = sigmaSB * ts * ts * ts * ts
		}
	}
	return gd, state, s, nil
}
