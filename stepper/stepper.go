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


package stepper

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/govern"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
	"github.com/gopheri2s/gopheri2s/rewind"
)

// Sentinal errors returned by Command().
const (
	UnknownCommand = "stepper: unknown command (%c)"
	StepLimit      = "stepper: %s did not complete in %d ticks"
	NoHistory      = "stepper: no history to undo"
)

// the length of the probe history
const probeLength = 64

// Help lists the commands accepted by Command().
const Help = `t  tick
b  BCLK period
s  slot
f  frame
r  reset
u  undo
p  plot recent activity
d  dump state graph
h  help
q  quit
`

// Stepper steps a link in response to single key commands.
type Stepper struct {
	lnk    *hardware.Link
	probe  *hardware.Probe
	rewind *rewind.Rewind
	output io.Writer

	// the frame presented to the transmitter on every tick
	Frame i2s.Frame

	// the most recent outputs of the link
	Last hardware.Outputs

	state govern.State
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(lnk *hardware.Link, output io.Writer) *Stepper {
	return &Stepper{
		lnk:    lnk,
		probe:  hardware.NewProbe(probeLength),
		rewind: rewind.NewRewind(lnk),
		output: output,
		state:  govern.Stepping,
	}
}

// State returns the current governance state of the stepper.
func (stp *Stepper) State() govern.State {
	return stp.state
}

// the maximum number of ticks any command can take. a frame is the longest
// command and it is never longer than two LRCLK periods, even straight
// after a reset
func (stp *Stepper) limit() int {
	return 2 * 2 * i2s.SlotWidth * 2 * stp.lnk.Clock.Config().Divisor
}

func (stp *Stepper) tick(reset bool) hardware.Outputs {
	stp.Last = stp.lnk.Step(hardware.Inputs{Reset: reset, Frame: stp.Frame})
	stp.probe.Tick(stp.Last)
	return stp.Last
}

// stepUntil steps the link until the done function returns true. the done
// function is called after every tick.
func (stp *Stepper) stepUntil(name string, done func(out hardware.Outputs) bool) error {
	limit := stp.limit()
	for range limit {
		if done(stp.tick(false)) {
			return nil
		}
	}
	return curated.Errorf(StepLimit, name, limit)
}

// Command performs the action for the key. The governance state after the
// command is returned.
func (stp *Stepper) Command(key byte) (govern.State, error) {
	var err error

	// record the state of the link before any command that steps it
	switch key {
	case 't', 'b', 's', 'f', 'r':
		stp.rewind.Record()
	}

	switch key {
	case 't':
		stp.tick(false)
	case 'b':
		err = stp.stepUntil("BCLK period", func(out hardware.Outputs) bool {
			return out.Falling
		})
	case 's':
		lrclk := stp.lnk.Clock.Signals().LRCLK
		err = stp.stepUntil("slot", func(out hardware.Outputs) bool {
			return out.LRCLK != lrclk
		})
	case 'f':
		err = stp.stepUntil("frame", func(out hardware.Outputs) bool {
			return out.RX.RightValid
		})
	case 'r':
		stp.tick(true)
		logger.Log(stp.lnk.Env(), "stepper", "reset")
	case 'u':
		if !stp.rewind.Back() {
			return stp.state, curated.Errorf(NoHistory)
		}
		stp.Last = hardware.Outputs{}
		fmt.Fprintf(stp.output, "%s: undo\n", stp.lnk.GetCoords())
		return stp.state, nil
	case 'p':
		stp.probe.Plot(stp.output)
		return stp.state, nil
	case 'd':
		memviz.Map(stp.output, stp.lnk.Snapshot())
		return stp.state, nil
	case 'h', '?':
		io.WriteString(stp.output, Help)
		return stp.state, nil
	case 'q':
		stp.state = govern.Ending
		return stp.state, nil
	default:
		return stp.state, curated.Errorf(UnknownCommand, key)
	}

	if err != nil {
		return stp.state, err
	}

	fmt.Fprintf(stp.output, "%s: %s\n", stp.lnk.GetCoords(), stp.Last)

	return stp.state, nil
}
