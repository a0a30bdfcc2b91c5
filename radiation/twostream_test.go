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
	"testing"

	"github.com/ctessum/sparse"
)

func TestTwoStreamTransparent(t *testing.T) {
	const nb, nl, nc = 2, 5, 3
	absorptivity := sparse.ZerosDense(nb, nl, nc)
	emission := sparse.ZerosDense(nb, nl, nc)
	solver := NewTwoStream(absorptivity)

	top := sparse.ZerosDense(nb, nc)
	for j := 0; j < nc; j++ {
		top.Set(100+float64(j), 0, j)
		top.Set(50, 1, j)
	}
	down := solver.FluxDown(top, emission)
	if got := []int{nb, nl + 1, nc}; down.Shape[0] != got[0] || down.Shape[1] != got[1] || down.Shape[2] != got[2] {
		t.Fatalf("flux down shape %v, want %v", down.Shape, got)
	}
	// A transparent, non-emitting atmosphere passes the boundary
	// flux through unchanged.
	for b := 0; b < nb; b++ {
		for k := 0; k <= nl; k++ {
			for j := 0; j < nc; j++ {
				if down.Get(b, k, j) != top.Get(b, j) {
					t.Fatalf("band %d interface %d column %d: got %v, want %v",
						b, k, j, down.Get(b, k, j), top.Get(b, j))
				}
			}
		}
	}

	up := solver.FluxUp(top, emission)
	for b := 0; b < nb; b++ {
		for j := 0; j < nc; j++ {
			if up.Get(b, nl, j) != top.Get(b, j) {
				t.Errorf("upward flux at top: got %v, want %v", up.Get(b, nl, j), top.Get(b, j))
			}
		}
	}
}

func TestTwoStreamOpaque(t *testing.T) {
	const nb, nl, nc = 1, 4, 1
	absorptivity := sparse.ZerosDense(nb, nl, nc)
	for i := range absorptivity.Elements {
		absorptivity.Elements[i] = 1
	}
	emission := sparse.ZerosDense(nb, nl, nc)
	solver := NewTwoStream(absorptivity)

	top := sparse.ZerosDense(nb, nc)
	top.Set(300, 0, 0)
	down := solver.FluxDown(top, emission)
	if down.Get(0, nl, 0) != 300 {
		t.Errorf("top interface flux: got %v, want 300", down.Get(0, nl, 0))
	}
	// An opaque layer absorbs the whole stream.
	for k := 0; k < nl; k++ {
		if down.Get(0, k, 0) != 0 {
			t.Errorf("interface %d: got %v, want 0", k, down.Get(0, k, 0))
		}
	}
}

func TestTwoStreamEmission(t *testing.T) {
	const nb, nl, nc = 1, 3, 1
	absorptivity := sparse.ZerosDense(nb, nl, nc)
	emission := sparse.ZerosDense(nb, nl, nc)
	for k := 0; k < nl; k++ {
		emission.Set(10, 0, k, 0)
	}
	solver := NewTwoStream(absorptivity)
	down := solver.FluxDown(sparse.ZerosDense(nb, nc), emission)
	// With no absorption each interface accumulates the emission of
	// all layers above it.
	for k := 0; k <= nl; k++ {
		want := float64(nl-k) * 10
		if down.Get(0, k, 0) != want {
			t.Errorf("interface %d: got %v, want %v", k, down.Get(0, k, 0), want)
		}
	}
}

func TestTwoStreamBoundaryShapePanic(t *testing.T) {
	solver := NewTwoStream(sparse.ZerosDense(2, 3, 1))
	defer func() {
		if recover() == nil {
			t.Error("mismatched boundary flux shape did not panic")
		}
	}()
	solver.FluxDown(sparse.ZerosDense(3, 1), sparse.ZerosDense(2, 3, 1))
}
