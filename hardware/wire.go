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

package hardware

import (
	"github.com/gopheri2s/gopheri2s/random"
)

// Wire connects the transmitter output to the receiver input. Carry() is
// called once per tick with the level driven by the transmitter and returns
// the level seen at the receiver end of the wire on the next tick.
type Wire interface {
	Carry(level bool) bool
}

// DirectWire is a perfect connection. This is the loopback topology.
type DirectWire struct{}

// Carry implements the Wire interface.
func (DirectWire) Carry(level bool) bool {
	return level
}

// DelayWire delays the signal by a fixed number of ticks. A delay of one
// BCLK period (twice the clock divisor) causes every bit to arrive one slot
// position late. The receiver has no way of detecting this.
type DelayWire struct {
	line []bool
	idx  int
}

// NewDelayWire is the preferred method of initialisation for the DelayWire
// type. A delay of zero or less is the same as DirectWire.
func NewDelayWire(ticks int) *DelayWire {
	return &DelayWire{
		line: make([]bool, max(ticks, 0)),
	}
}

// Carry implements the Wire interface.
func (w *DelayWire) Carry(level bool) bool {
	if len(w.line) == 0 {
		return level
	}
	out := w.line[w.idx]
	w.line[w.idx] = level
	w.idx = (w.idx + 1) % len(w.line)
	return out
}

// NoisyWire inverts the signal at random. The probability of an inversion on
// any single tick is one in Odds.
type NoisyWire struct {
	rnd  *random.Random
	Odds int

	// number of ticks on which the signal was inverted
	Flips int
}

// NewNoisyWire is the preferred method of initialisation for the NoisyWire
// type. An odds value less than one means the signal is never inverted.
func NewNoisyWire(rnd *random.Random, odds int) *NoisyWire {
	return &NoisyWire{
		rnd:  rnd,
		Odds: odds,
	}
}

// Carry implements the Wire interface.
func (w *NoisyWire) Carry(level bool) bool {
	if w.Odds < 1 {
		return level
	}
	if w.rnd.Intn(w.Odds) == 0 {
		w.Flips++
		return !level
	}
	return level
}
