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


// Package rewind keeps a history of link states so that the link can be
// returned to an earlier point. States are stored in a circular array. Once
// the array is full the earliest states are forgotten.
package rewind

import (
	"fmt"

	"github.com/gopheri2s/gopheri2s/hardware"
)

// the maximum number of entries to store before the earliest entries are
// forgotten.
const maxEntries = 256

// Rewind contains a history of link states.
type Rewind struct {
	lnk *hardware.Link

	// circular array of snapshotted entries. start is the earliest entry
	// and count is the number of valid entries
	entries [maxEntries]*hardware.State
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(lnk *hardware.Link) *Rewind {
	return &Rewind{lnk: lnk}
}

func (r *Rewind) String() string {
	if r.count == 0 {
		return "empty"
	}
	first := r.entries[r.start]
	last := r.entries[(r.start+r.count-1)%maxEntries]
	return fmt.Sprintf("%d entries (%s to %s)", r.count, first.Coords, last.Coords)
}

// Len returns the number of states in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Reset removes all entries.
func (r *Rewind) Reset() {
	clear(r.entries[:])
	r.start = 0
	r.count = 0
}

// Record a snapshot of the current link state.
func (r *Rewind) Record() {
	s := r.lnk.Snapshot()

	if r.count < maxEntries {
		r.entries[(r.start+r.count)%maxEntries] = s
		r.count++
		return
	}

	// history is full. overwrite the earliest entry
	r.entries[r.start] = s
	r.start = (r.start + 1) % maxEntries
}

// Back plumbs the most recently recorded state into the link and removes it
// from the history. Returns false if there is no history.
func (r *Rewind) Back() bool {
	if r.count == 0 {
		return false
	}

	idx := (r.start + r.count - 1) % maxEntries
	r.lnk.Plumb(r.entries[idx])
	r.entries[idx] = nil
	r.count--

	return true
}
