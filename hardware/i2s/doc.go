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

// Package i2s contains the vocabulary shared by the clock generator,
// transmitter and receiver of the serial audio link. The components
// themselves are in the clkgen, tx and rx sub-packages and are wired together
// by the hardware package.
//
// The link follows the Philips I2S convention. A frame is one period of
// LRCLK and is made of two slots of SlotWidth BCLK periods each. LRCLK low
// selects the left channel and LRCLK high selects the right channel.
//
// Within a slot the bits are laid out as:
//
//	bit 0                     delay bit, always zero
//	bits 1 to DataBits        the sample, most significant bit first
//	bits DataBits+1 to 31     padding, always zero
//
// Timing, with D being the clock divisor (ticks per BCLK half period):
//
//	tick T       LRCLK changes on a BCLK falling edge. the transmitter
//	             loads the slot and drives the delay bit
//	tick T+2D    next BCLK falling edge. the MSB becomes visible on SDATA.
//	             the receiver samples the delay bit
//	tick T+4D    the receiver samples the MSB
//	...
//	tick T+64D   next LRCLK change. the receiver samples slot bit 31,
//	             latches the sample and raises the valid strobe
//
// The offsets are the same for both LRCLK transitions.
//
// Alignment of the serial stream is established by LRCLK only. If the
// stream is corrupted so that bits are gained or lost within a slot the
// receiver will latch garbage until the next slot boundary and there is no
// detection of this condition. Asserting reset is the only way of restoring
// a link to a known state.
package i2s
