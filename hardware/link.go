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
	"fmt"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/hardware/coords"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/clkgen"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/rx"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/tx"
	"github.com/gopheri2s/gopheri2s/logger"
)

// Sentinal error returned by NewLink() if the link could not be created.
const LinkError = "link: %v"

// Inputs to the link for a single tick.
type Inputs struct {
	Reset bool
	Frame i2s.Frame
}

// Outputs of the link for a single tick.
type Outputs struct {
	clkgen.Signals

	// the level driven by the transmitter on this tick
	SDATA bool

	RX rx.Outputs
}

func (out Outputs) String() string {
	return fmt.Sprintf("%s sdata=%v %s", out.Signals, out.SDATA, out.RX)
}

// Link is the root of the emulation.
type Link struct {
	env *environment.Environment

	Clock *clkgen.ClockGenerator
	TX    *tx.Transmitter
	RX    *rx.Receiver

	// connects the transmitter to the receiver
	wire Wire

	// the level of the line at the receiver end of the wire. updated at the
	// end of every tick and consumed by the receiver on the next tick
	line bool

	coords coords.Coords
}

// NewLink creates a new Link from the preferences in the environment. The
// link starts in the reset state.
func NewLink(env *environment.Environment) (*Link, error) {
	lnk := &Link{
		env:  env,
		wire: DirectWire{},
	}

	var err error

	lnk.Clock, err = clkgen.NewClockGenerator(env.Prefs.ClockConfig())
	if err != nil {
		return nil, curated.Errorf(LinkError, err)
	}

	lnk.TX, err = tx.NewTransmitter(env.Prefs.ChannelConfig())
	if err != nil {
		return nil, curated.Errorf(LinkError, err)
	}

	lnk.RX, err = rx.NewReceiver(env.Prefs.ChannelConfig())
	if err != nil {
		return nil, curated.Errorf(LinkError, err)
	}

	env.Random.Plumb(lnk)

	logger.Logf(env, "link", "created: divisor %d, %s", lnk.Clock.Config().Divisor, lnk.TX.Config())

	return lnk, nil
}

func (lnk *Link) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", lnk.coords, lnk.Clock, lnk.TX, lnk.RX)
}

// Env returns the environment the link was created with.
func (lnk *Link) Env() *environment.Environment {
	return lnk.env
}

// SetWire changes how the transmitter is connected to the receiver. A nil
// value restores the direct connection.
func (lnk *Link) SetWire(w Wire) {
	if w == nil {
		w = DirectWire{}
	}
	lnk.wire = w
}

// GetCoords returns the current coordinates of the link. Implements the
// random.Source interface.
func (lnk *Link) GetCoords() coords.Coords {
	return lnk.coords
}

// Step the link forward one tick.
func (lnk *Link) Step(in Inputs) Outputs {
	// the receiver sees the line as it was at the end of the previous tick
	line := lnk.line

	sig := lnk.Clock.Step(in.Reset)
	sdata := lnk.TX.Step(sig, in.Frame, in.Reset)
	rcv := lnk.RX.Step(sig, line, in.Reset)

	lnk.line = lnk.wire.Carry(sdata)

	lnk.coords.Tick++
	if in.Reset {
		lnk.coords.Frame = 0
	} else if rcv.RightValid {
		lnk.coords.Frame++
	}

	return Outputs{
		Signals: sig,
		SDATA:   sdata,
		RX:      rcv,
	}
}

// HoldReset steps the link with reset asserted for the specified number of
// ticks. The input frame is zero.
func (lnk *Link) HoldReset(ticks int) {
	logger.Logf(lnk.env, "link", "reset for %d ticks", ticks)
	for range ticks {
		lnk.Step(Inputs{Reset: true})
	}
}

// Reset is equivalent to HoldReset() for a single tick.
func (lnk *Link) Reset() {
	lnk.HoldReset(1)
}
