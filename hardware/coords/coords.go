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

// Package coords represents a point in time in a running link.
package coords

import "fmt"

// Coords of the link. Tick counts every call to Step() since the link was
// created. Frame counts the number of complete frames recovered by the
// receiver since the most recent reset.
type Coords struct {
	Tick  int64
	Frame int
}

func (c Coords) String() string {
	return fmt.Sprintf("tick=%d frame=%d", c.Tick, c.Frame)
}

// Equal compares two instances of Coords.
func Equal(A, B Coords) bool {
	return A.Tick == B.Tick && A.Frame == B.Frame
}

// GreaterThan compares two instances of Coords and return true if A is
// greater than B.
func GreaterThan(A, B Coords) bool {
	return A.Tick > B.Tick
}
