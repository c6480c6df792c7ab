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

// Package trace records the level of a single bus line over time. A Trace is
// ticked once per system tick with the current level of the line and can
// then be asked whether the line changed on that tick.
//
// The trace also keeps a short history of the line's activity which can be
// plotted as an ASCII waveform with the Plot() function.
package trace

import (
	"io"
	"strings"
)

// Trace is the recent history of a single line.
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

// DefaultLength is the number of ticks of activity kept by a new trace.
const DefaultLength = 128

// NewTrace is the preferred method of initialisation for the Trace type. A
// length of zero means no activity is kept, which is the cheapest option for
// edge detection only.
func NewTrace(label string, length int) Trace {
	return Trace{
		Label:    label,
		Activity: make([]bool, length),
	}
}

// Snapshot creates a copy of the Trace.
func (tr *Trace) Snapshot() Trace {
	cp := *tr
	cp.Activity = make([]bool, len(tr.Activity))
	copy(cp.Activity, tr.Activity)
	return cp
}

// Reset puts the trace into the low state with no history of change.
func (tr *Trace) Reset() {
	tr.from = false
	tr.to = false
	clear(tr.Activity)
}

// Changed returns true if the line has changed state on the most recent tick.
func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

// Falling returns true if the line has changed from high to low on the most
// recent tick.
func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

// Rising returns true if the line has changed from low to high on the most
// recent tick.
func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

// Hi returns true if the line is currently high.
func (tr *Trace) Hi() bool {
	return tr.to
}

// Lo returns true if the line is currently low.
func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick records the current state of the line.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
	if len(tr.Activity) > 0 {
		copy(tr.Activity, tr.Activity[1:])
		tr.Activity[len(tr.Activity)-1] = v
	}
}

const (
	hiGlyph   = '‾'
	loGlyph   = '_'
	edgeGlyph = '|'
)

// String returns the activity of the trace as a waveform.
func (tr *Trace) String() string {
	s := strings.Builder{}
	for i, v := range tr.Activity {
		if i > 0 && v != tr.Activity[i-1] {
			s.WriteRune(edgeGlyph)
			continue
		}
		if v {
			s.WriteRune(hiGlyph)
		} else {
			s.WriteRune(loGlyph)
		}
	}
	return s.String()
}

// Plot writes the waveforms of the traces to the writer, one trace per line,
// with the labels aligned.
func Plot(output io.Writer, traces ...*Trace) {
	w := 0
	for _, tr := range traces {
		if len(tr.Label) > w {
			w = len(tr.Label)
		}
	}

	for _, tr := range traces {
		io.WriteString(output, tr.Label)
		io.WriteString(output, strings.Repeat(" ", w-len(tr.Label)+1))
		io.WriteString(output, tr.String())
		io.WriteString(output, "\n")
	}
}
