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

// SlotState is the state of the slot state machine shared by the transmitter
// and the receiver. The state advances on BCLK falling edges and restarts
// from DelayBit on every LRCLK transition.
type SlotState int

// List of valid SlotState values.
const (
	IdleAfterReset SlotState = iota
	DelayBit
	DataBits
	Padding
)

func (s SlotState) String() string {
	switch s {
	case IdleAfterReset:
		return "idle"
	case DelayBit:
		return "delay"
	case DataBits:
		return "data"
	case Padding:
		return "padding"
	}
	return "unknown"
}
