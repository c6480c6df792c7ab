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

// Package hardware is the base package for the I2S link emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Link type is the root of the emulation and contains references to the
// clock generator, the transmitter and the receiver. The transmitter output
// is connected to the receiver input by a Wire. The default wire is a direct
// connection (loopback).
//
// The link can be stepped tick by tick with Step() or run continuously with
// Run() and RunForFrames(). Stream() is a convenient way of sending a
// sequence of frames through the link and collecting the recovered frames.
//
// Every tick is a snapshot-then-update operation. The clock generator's
// outputs for the tick are computed first and are handed to the transmitter
// and receiver by value. The receiver sees the serial line as it was driven
// on the previous tick.
package hardware
