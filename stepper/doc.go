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


// Package stepper provides an interactive way of stepping through the
// activity of a link. Each key press advances the link by a tick, by a
// BCLK period, by a slot or by a complete frame.
//
// Command handling is separate from the terminal. The Command() function can
// be driven by any source of key presses and the Interactive() function
// reads single key presses from a terminal in cbreak mode.
package stepper
