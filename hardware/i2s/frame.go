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

package i2s

import "fmt"

// Frame is a pair of samples, one for each channel.
type Frame struct {
	Left  uint32
	Right uint32
}

func (f Frame) String() string {
	return fmt.Sprintf("L=%#08x R=%#08x", f.Left, f.Right)
}

// Sample returns the sample for the specified channel.
func (f Frame) Sample(ch Channel) uint32 {
	if ch == Right {
		return f.Right
	}
	return f.Left
}
