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
	"github.com/gopheri2s/gopheri2s/hardware/coords"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/clkgen"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/rx"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/tx"
)

// State stores the link sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note in particular that the Wire is not part of the snapshot process.
type State struct {
	Clock *clkgen.ClockGenerator
	TX    *tx.Transmitter
	RX    *rx.Receiver

	Line   bool
	Coords coords.Coords
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		Clock:  s.Clock.Snapshot(),
		TX:     s.TX.Snapshot(),
		RX:     s.RX.Snapshot(),
		Line:   s.Line,
		Coords: s.Coords,
	}
}

// Snapshot the state of the link sub-systems.
func (lnk *Link) Snapshot() *State {
	return &State{
		Clock:  lnk.Clock.Snapshot(),
		TX:     lnk.TX.Snapshot(),
		RX:     lnk.RX.Snapshot(),
		Line:   lnk.line,
		Coords: lnk.coords,
	}
}

// Plumb a previously snapshotted state into the link. The state must have
// been created by a link with the same configuration.
func (lnk *Link) Plumb(state *State) {
	if state == nil {
		panic("link: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// link to change what we have stored in the state
	lnk.Clock = state.Clock.Snapshot()
	lnk.TX = state.TX.Snapshot()
	lnk.RX = state.RX.Snapshot()
	lnk.line = state.Line
	lnk.coords = state.Coords
}
