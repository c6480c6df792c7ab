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

// Package rx implements the receiving side of the I2S link. The receiver
// samples the SDATA line on every BCLK falling edge and reassembles 32 bit
// slots.
//
// A slot starts on every LRCLK transition. The channel of the slot is taken
// from the LRCLK level at the start of the slot. The line is sampled as it
// was before the falling edge, which is the level driven by the transmitter
// on the previous falling edge. On the tick the 32nd bit of a slot is
// captured, the sample is extracted and latched into the output register
// for the channel and the valid strobe for that channel is raised for the
// one tick.
//
// The 32nd bit of a slot is captured on the same tick as the next LRCLK
// transition. The completed slot is latched before the new slot starts.
//
// The receiver does not detect loss of alignment. A slot cut short by an
// unexpected LRCLK transition is discarded. Only a reset restores correct
// framing after the line has been corrupted.
package rx

import (
	"fmt"

	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/clkgen"
)

// Outputs of the receiver for a single tick.
type Outputs struct {
	Left  uint32
	Right uint32

	// strobes are true for only the tick on which the corresponding output
	// register was written
	LeftValid  bool
	RightValid bool
}

func (out Outputs) String() string {
	return fmt.Sprintf("left=%08x%s right=%08x%s", out.Left, strobe(out.LeftValid), out.Right, strobe(out.RightValid))
}

func strobe(v bool) string {
	if v {
		return "*"
	}
	return " "
}

// Frame returns the output registers as a Frame.
func (out Outputs) Frame() i2s.Frame {
	return i2s.Frame{Left: out.Left, Right: out.Right}
}

// Receiver is the state of the receiving side of the link. The fields are
// exported for inspection only. They should only be changed by Step().
type Receiver struct {
	cfg i2s.ChannelConfig

	// bits of the current slot received so far. the first bit received is
	// the most significant bit of a completed slot
	Accumulator uint32

	// number of bits of the current slot received so far
	BitPosition int

	// channel occupying the current slot
	Active i2s.Channel

	// output registers. values are held until overwritten
	Left  uint32
	Right uint32

	LeftValid  bool
	RightValid bool

	// the level of LRCLK on the previous tick
	lrclk bool

	// false until the first slot boundary after reset
	armed bool
}

// NewReceiver is the preferred method of initialisation for the Receiver
// type. The receiver starts in the reset state.
func NewReceiver(cfg i2s.ChannelConfig) (*Receiver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Receiver{cfg: cfg}, nil
}

func (rx *Receiver) String() string {
	if !rx.armed {
		return fmt.Sprintf("rx: %s %s", i2s.IdleAfterReset, rx.Outputs())
	}
	return fmt.Sprintf("rx: %s %s bit=%02d %s", rx.Active, rx.State(), rx.BitPosition, rx.Outputs())
}

// Config returns the configuration used to create the receiver.
func (rx *Receiver) Config() i2s.ChannelConfig {
	return rx.cfg
}

// Snapshot creates a copy of the Receiver in its current state.
func (rx *Receiver) Snapshot() *Receiver {
	n := *rx
	return &n
}

// Outputs returns the outputs of the most recent tick.
func (rx *Receiver) Outputs() Outputs {
	return Outputs{
		Left:       rx.Left,
		Right:      rx.Right,
		LeftValid:  rx.LeftValid,
		RightValid: rx.RightValid,
	}
}

// State returns the slot state of the bit the receiver expects next.
func (rx *Receiver) State() i2s.SlotState {
	if !rx.armed {
		return i2s.IdleAfterReset
	}
	return rx.cfg.State(rx.BitPosition)
}

func (rx *Receiver) reset() {
	rx.Accumulator = 0
	rx.BitPosition = 0
	rx.Active = i2s.Left
	rx.Left = 0
	rx.Right = 0
	rx.LeftValid = false
	rx.RightValid = false
	rx.lrclk = false
	rx.armed = false
}

// latch the completed slot into the output register for the active channel
func (rx *Receiver) latch() {
	v := rx.cfg.Extract(rx.Accumulator)
	switch rx.Active {
	case i2s.Left:
		rx.Left = v
		rx.LeftValid = true
	case i2s.Right:
		rx.Right = v
		rx.RightValid = true
	}
	rx.Accumulator = 0
	rx.BitPosition = 0
}

// Step advances the receiver by one system tick. The sdata argument is the
// level of the line before the tick.
func (rx *Receiver) Step(sig clkgen.Signals, sdata bool, reset bool) Outputs {
	if reset {
		rx.reset()
		return Outputs{}
	}

	rx.LeftValid = false
	rx.RightValid = false

	if sig.Falling && rx.armed {
		rx.Accumulator <<= 1
		if sdata {
			rx.Accumulator |= 0x01
		}
		rx.BitPosition++
		if rx.BitPosition >= i2s.SlotWidth {
			rx.latch()
		}
	}

	// a slot boundary restarts the slot. any partial slot is lost
	if sig.LRCLK != rx.lrclk {
		rx.lrclk = sig.LRCLK
		rx.Active = i2s.ChannelFromLRCLK(sig.LRCLK)
		rx.Accumulator = 0
		rx.BitPosition = 0
		rx.armed = true
	}

	return rx.Outputs()
}
