// This file is part of GopherI2S.
//
// GopherI2S is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherI2S is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherI2S.  If not, see <https://www.gnu.org/licenses/>.


package coords_test

import (
	"testing"

	"github.com/gopheri2s/gopheri2s/hardware/coords"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestCoords(t *testing.T) {
	a := coords.Coords{Tick: 100, Frame: 1}
	b := coords.Coords{Tick: 100, Frame: 1}
	c := coords.Coords{Tick: 612, Frame: 2}

	test.ExpectEquality(t, coords.Equal(a, b), true)
	test.ExpectEquality(t, coords.Equal(a, c), false)
	test.ExpectEquality(t, coords.GreaterThan(c, a), true)
	test.ExpectEquality(t, coords.GreaterThan(a, c), false)
	test.ExpectEquality(t, coords.GreaterThan(a, b), false)
	test.ExpectEquality(t, c.String(), "tick=612 frame=2")
}
