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

// Package tx implements the transmitting side of the serial link. The
// transmitter takes the parallel samples for the two channels and shifts
// them out on the SDATA line, one bit per BCLK period, most significant bit
// first.
//
// A new slot starts on every LRCLK transition. On that tick the slot word
// for the channel selected by the new LRCLK level is loaded from the frame
// currently presented at the input and the delay bit is driven. On every
// BCLK falling edge after that the next bit of the slot is driven. A bit
// driven on a falling edge is held until the next falling edge.
//
// Between reset and the first LRCLK transition the transmitter is idle and
// the line is held low.
package tx

import (
	"fmt"

	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/clkgen"
)

// Transmitter is the state of the transmitting side of the link. The fields
// are exported for inspection only. They should only be changed by Step().
type Transmitter struct {
	cfg i2s.ChannelConfig

	// the slot word being shifted out. slot bit 0 is the most significant bit
	Shift uint32

	// position in the slot of the next bit to be driven
	BitPosition int

	// channel occupying the current slot
	Active i2s.Channel

	// the level of LRCLK on the previous tick. used to detect slot
	// boundaries
	lrclk bool

	// false until the first slot boundary after reset
	armed bool

	// the line as driven on the most recent tick
	SDATA bool

	// true for the one tick on which a new slot was loaded
	Loaded bool
}

// NewTransmitter is the preferred method of initialisation for the
// Transmitter type. The transmitter starts in the reset state.
func NewTransmitter(cfg i2s.ChannelConfig) (*Transmitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Transmitter{cfg: cfg}, nil
}

func (tx *Transmitter) String() string {
	if !tx.armed {
		return fmt.Sprintf("tx: %s", i2s.IdleAfterReset)
	}
	return fmt.Sprintf("tx: %s %s bit=%02d sdata=%v", tx.Active, tx.State(), tx.driven(), tx.SDATA)
}

// Config returns the configuration used to create the transmitter.
func (tx *Transmitter) Config() i2s.ChannelConfig {
	return tx.cfg
}

// Snapshot creates a copy of the Transmitter in its current state.
func (tx *Transmitter) Snapshot() *Transmitter {
	n := *tx
	return &n
}

// driven returns the slot position of the bit currently on the line.
func (tx *Transmitter) driven() int {
	return (tx.BitPosition + i2s.SlotWidth - 1) % i2s.SlotWidth
}

// State returns the slot state of the bit currently being driven.
func (tx *Transmitter) State() i2s.SlotState {
	if !tx.armed {
		return i2s.IdleAfterReset
	}
	return tx.cfg.State(tx.driven())
}

func (tx *Transmitter) reset() {
	tx.Shift = 0
	tx.BitPosition = 0
	tx.Active = i2s.Left
	tx.lrclk = false
	tx.armed = false
	tx.SDATA = false
	tx.Loaded = false
}

// drive puts the bit at the current position on the line and advances the
// position.
func (tx *Transmitter) drive() {
	tx.SDATA = i2s.SlotBit(tx.Shift, tx.BitPosition)
	tx.BitPosition = (tx.BitPosition + 1) % i2s.SlotWidth
}

// Step advances the transmitter by one system tick and returns the level of
// the SDATA line for the tick. The frame is only sampled on ticks where a
// new slot starts.
func (tx *Transmitter) Step(sig clkgen.Signals, frame i2s.Frame, reset bool) bool {
	if reset {
		tx.reset()
		return false
	}

	tx.Loaded = false

	// a slot boundary takes priority over normal bit advancement
	if sig.LRCLK != tx.lrclk {
		tx.lrclk = sig.LRCLK
		tx.Active = i2s.ChannelFromLRCLK(sig.LRCLK)
		tx.Shift = tx.cfg.Slot(frame.Sample(tx.Active))
		tx.BitPosition = 0
		tx.armed = true
		tx.Loaded = true
		tx.drive()
		return tx.SDATA
	}

	if sig.Falling && tx.armed {
		tx.drive()
	}

	return tx.SDATA
}
