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

// Package digest contains implementations of frame sinks that produce a
// cryptographic hash of the frames recovered by the link. The hash can be
// used to compare the output of subsequent runs: if a new hash differs from
// a previously recorded value then something has changed. This is the basis
// of the determinism tests and of the hash printed by the RUN and WAV modes.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
