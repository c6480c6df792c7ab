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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of allowing different flags for each mode.
//
// The command line for GopherI2S takes the form:
//
//	gopheri2s [global flags] [MODE] [mode flags] [arguments]
//
// For example:
//
//	gopheri2s -prefs "i2s.clockDivisor::2" WAV -out test.wav input.mp3
//
// At each level the Parse() function consumes flags until the first
// non-flag argument. If that argument names one of the sub-modes added with
// AddSubModes() then the mode is selected and parsing of the next level
// continues from the argument after it. If it does not name a sub-mode then
// the default sub-mode (the first in the list) is selected and the argument
// is left for the mode to consume.
//
// The path of modes selected so far is available with Path(). The most
// recently selected mode is returned by Mode().
package modalflag
