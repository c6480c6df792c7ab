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

// Channel identifies which half of the frame is occupying a slot.
type Channel int

// List of valid Channel values.
const (
	Left Channel = iota
	Right
)

func (ch Channel) String() string {
	switch ch {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ChannelFromLRCLK returns the channel selected by the level of LRCLK.
func ChannelFromLRCLK(lrclk bool) Channel {
	if lrclk {
		return Right
	}
	return Left
}
