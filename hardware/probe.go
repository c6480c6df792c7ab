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
	"io"

	"github.com/gopheri2s/gopheri2s/hardware/i2s/trace"
)

// Probe records the activity of the link's bus lines. It is ticked with the
// outputs of every call to Link.Step().
type Probe struct {
	BCLK   trace.Trace
	LRCLK  trace.Trace
	SDATA  trace.Trace
	LValid trace.Trace
	RValid trace.Trace
}

// NewProbe is the preferred method of initialisation for the Probe type. The
// length is the number of ticks of history kept for each line.
func NewProbe(length int) *Probe {
	return &Probe{
		BCLK:   trace.NewTrace("BCLK", length),
		LRCLK:  trace.NewTrace("LRCLK", length),
		SDATA:  trace.NewTrace("SDATA", length),
		LValid: trace.NewTrace("LVALID", length),
		RValid: trace.NewTrace("RVALID", length),
	}
}

// Tick records the outputs of a single tick.
func (p *Probe) Tick(out Outputs) {
	p.BCLK.Tick(out.BCLK)
	p.LRCLK.Tick(out.LRCLK)
	p.SDATA.Tick(out.SDATA)
	p.LValid.Tick(out.RX.LeftValid)
	p.RValid.Tick(out.RX.RightValid)
}

// Plot the activity of all lines to the writer.
func (p *Probe) Plot(output io.Writer) {
	trace.Plot(output, &p.BCLK, &p.LRCLK, &p.SDATA, &p.LValid, &p.RValid)
}
