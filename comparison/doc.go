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


// Package comparison facilitates the running of a reference link alongside
// the main link.
//
// The reference link has the same preferences as the main link but always
// uses a direct wire. Both links are sent the same frames and the frames
// recovered by the main link are compared with the frames recovered by the
// reference link. This is useful for measuring the effect of a delayed or
// noisy wire.
//
// The reference link runs in its own goroutine. It is synchronised with the
// main link by the frames recovered by the main link, which are passed to
// the reference through a buffered channel. Neither link will ever be more
// than the length of the buffer ahead of the other.
package comparison
