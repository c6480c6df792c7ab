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

package i2s

import (
	"fmt"

	"github.com/gopheri2s/gopheri2s/curated"
)

// SlotWidth is the number of BCLK periods in one slot. A frame is two slots.
const SlotWidth = 32

// ChannelConfig describes the payload of each slot.
type ChannelConfig struct {
	// the number of sample bits in a slot. the delay bit and the data bits
	// must fit into SlotWidth
	DataBits int
}

func (cfg ChannelConfig) String() string {
	return fmt.Sprintf("%d bits", cfg.DataBits)
}

// Validate returns an InvalidConfig error if the configuration can not be
// used.
func (cfg ChannelConfig) Validate() error {
	if cfg.DataBits < 1 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("data bits (%d) must be at least one", cfg.DataBits))
	}
	if cfg.DataBits+1 > SlotWidth {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("data bits (%d) and delay bit do not fit in slot of %d bits", cfg.DataBits, SlotWidth))
	}
	return nil
}

// Mask returns the mask for a sample of DataBits width.
func (cfg ChannelConfig) Mask() uint32 {
	return (uint32(1) << cfg.DataBits) - 1
}

// Slot returns the 32 bit word that is shifted out for the sample. Slot bit 0
// (the delay bit) is in the most significant bit of the word. Sample bits
// above DataBits are ignored.
func (cfg ChannelConfig) Slot(sample uint32) uint32 {
	return (sample & cfg.Mask()) << (SlotWidth - 1 - cfg.DataBits)
}

// Extract is the inverse of Slot(). The delay bit and padding are
// discarded.
func (cfg ChannelConfig) Extract(word uint32) uint32 {
	return (word >> (SlotWidth - 1 - cfg.DataBits)) & cfg.Mask()
}

// SlotBit returns the bit at position pos of the slot word. Position 0 is the
// delay bit.
func SlotBit(word uint32, pos int) bool {
	return (word>>(SlotWidth-1-pos))&0x01 == 0x01
}

// SignExtend interprets the sample as a two's complement value of DataBits
// width.
func (cfg ChannelConfig) SignExtend(sample uint32) int32 {
	shift := SlotWidth - cfg.DataBits
	return int32(sample<<shift) >> shift
}

// FromSigned is the inverse of SignExtend(). Values out of range for
// DataBits are clamped.
func (cfg ChannelConfig) FromSigned(v int32) uint32 {
	max := int32(cfg.Mask() >> 1)
	min := -max - 1
	if v > max {
		v = max
	} else if v < min {
		v = min
	}
	return uint32(v) & cfg.Mask()
}

// State returns the SlotState for the bit at the position in the slot.
func (cfg ChannelConfig) State(pos int) SlotState {
	switch {
	case pos == 0:
		return DelayBit
	case pos <= cfg.DataBits:
		return DataBits
	}
	return Padding
}
