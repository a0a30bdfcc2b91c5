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

// Package radiation solves the discretized Schwarzschild two-stream
// radiative transfer equations with the spectrum divided into a small
// number of bands.
//
// A Scheme combines a band decomposition of the spectrum, a set of
// absorbing gases with per-band absorption cross-sections, and a
// vertical pressure grid. Every call to RadiativeHeating recomputes,
// from the current absorber fields:
//
//	optical path → layer absorptivity → per-band up/down fluxes →
//	net flux convergence (heating rate) and boundary diagnostics.
//
// Two concrete configurations are provided: a three-band shortwave
// scheme (Hartley-Huggins UV, Chappuis, and the visible remainder)
// and a four-band longwave scheme following the SPEEDY / MITgcm aim
// spectral decomposition.
package radiation
