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

// Package preferences contains the preference values for the link hardware.
package preferences

import (
	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/hardware/i2s/clkgen"
	"github.com/gopheri2s/gopheri2s/prefs"
)

// default values for the link
const (
	DefaultClockDivisor  = 4
	DefaultDataBits      = 24
	DefaultTickFrequency = 25000000
)

// Preferences defines and collates all the preference values used by the
// link hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of system ticks in one half period of BCLK
	ClockDivisor prefs.Int

	// number of sample bits in each slot
	DataBits prefs.Int

	// the frequency of the system tick in Hz. the link doesn't need to know
	// this but it is used to report the real time performance of the
	// emulation and the sample rate of recovered audio
	TickFrequency prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the file at the path. An
// empty path creates a set of preferences that is never saved to disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("i2s.clockDivisor", &p.ClockDivisor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("i2s.dataBits", &p.DataBits)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("i2s.tickFrequency", &p.TickFrequency)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.ClockDivisor.Set(DefaultClockDivisor)
	_ = p.DataBits.Set(DefaultDataBits)
	_ = p.TickFrequency.Set(DefaultTickFrequency)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ClockConfig returns the clock generator configuration described by the
// preferences. The configuration is not validated.
func (p *Preferences) ClockConfig() clkgen.ClockConfig {
	return clkgen.ClockConfig{Divisor: p.ClockDivisor.Get().(int)}
}

// ChannelConfig returns the channel configuration described by the
// preferences. The configuration is not validated.
func (p *Preferences) ChannelConfig() i2s.ChannelConfig {
	return i2s.ChannelConfig{DataBits: p.DataBits.Get().(int)}
}

// SampleRate returns the number of frames per second implied by the tick
// frequency and the clock divisor.
func (p *Preferences) SampleRate() int {
	div := p.ClockDivisor.Get().(int)
	if div < 1 {
		return 0
	}
	return p.TickFrequency.Get().(int) / (2 * div * 2 * i2s.SlotWidth)
}
