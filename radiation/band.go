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
	"gonum.org/v1/gonum/floats"
)

// bandSumTolerance is the maximum allowed deviation of the band
// fractions from unit sum.
const bandSumTolerance = 1e-9

// Bands is a decomposition of the spectrum into channels, each
// carrying a fixed fraction of the total beam. The fractions are fixed
// at construction; reassigning the decomposition of an existing scheme
// is not supported because per-band fields are allocated against the
// band count.
type Bands struct {
	fraction []float64
}

// NewBands creates a band decomposition from the given fractions,
// which must be nonnegative and sum to 1.
func NewBands(fraction []float64) (*Bands, error) {
	if len(fraction) == 0 {
		return nil, fmt.Errorf("radiation: band decomposition needs at least one band")
	}
	for i, f := range fraction {
		if f < 0 {
			return nil, fmt.Errorf("radiation: band %d fraction is negative (%g)", i, f)
		}
	}
	if sum := floats.Sum(fraction); math.Abs(sum-1) > bandSumTolerance {
		return nil, fmt.Errorf("radiation: band fractions must sum to 1; got %g", sum)
	}
	b := &Bands{fraction: make([]float64, len(fraction))}
	copy(b.fraction, fraction)
	return b, nil
}

// Len returns the number of bands.
func (b *Bands) Len() int { return len(b.fraction) }

// Fraction returns the fraction of the total beam in band i.
func (b *Bands) Fraction(i int) float64 { return b.fraction[i] }

// Fractions returns a copy of the band fraction vector.
func (b *Bands) Fractions() []float64 {
	out := make([]float64, len(b.fraction))
	copy(out, b.fraction)
	return out
}

// SplitChannels splits a per-column flux into one flux per band by
// multiplying with the band fractions. The result has shape
// [bands, columns]; summing it over the band axis reproduces the
// input because the fractions sum to 1.
func (b *Bands) SplitChannels(flux []float64) *sparse.DenseArray {
	split := sparse.ZerosDense(len(b.fraction), len(flux))
	for i, f := range b.fraction {
		for j, v := range flux {
			split.Set(f*v, i, j)
		}
	}
	return split
}
