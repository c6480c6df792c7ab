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

// Package clkgen derives the two clocks of the serial link from the system
// tick. BCLK is the bit clock and toggles every Divisor ticks. LRCLK is the
// frame clock and toggles on every 32nd BCLK falling edge, giving a frame of
// 64 BCLK periods with a 50% duty cycle.
//
// In addition to the two clocks, the generator raises the Falling strobe for
// exactly the one tick on which BCLK changes from high to low. Both the
// transmitter and the receiver are driven by this strobe.
package clkgen

import (
	"fmt"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
)

// ClockConfig describes the relationship between the system tick and BCLK.
type ClockConfig struct {
	// number of system ticks in one half period of BCLK
	Divisor int
}

// Validate returns an InvalidConfig error if the configuration can not be
// used.
func (cfg ClockConfig) Validate() error {
	if cfg.Divisor < 1 {
		return curated.Errorf(i2s.InvalidConfig, fmt.Sprintf("clock divisor (%d) must be at least one", cfg.Divisor))
	}
	return nil
}

// Signals are the outputs of the clock generator for a single tick. They
// are passed by value to the components that consume them.
type Signals struct {
	BCLK    bool
	LRCLK   bool
	Falling bool
}

func (sig Signals) String() string {
	return fmt.Sprintf("bclk=%s lrclk=%s falling=%v", level(sig.BCLK), level(sig.LRCLK), sig.Falling)
}

func level(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ClockGenerator is the state of the clock generator. The fields are
// exported for inspection only. They should only be changed by Step().
type ClockGenerator struct {
	cfg ClockConfig

	// counts system ticks in the current BCLK half period. always in the
	// range 0 to Divisor-1
	TickCounter int

	// counts BCLK falling edges in the current LRCLK half period. always in
	// the range 0 to i2s.SlotWidth-1
	EdgeCounter int

	BCLK    bool
	LRCLK   bool
	Falling bool
}

// NewClockGenerator is the preferred method of initialisation for the
// ClockGenerator type. The generator starts in the reset state.
func NewClockGenerator(cfg ClockConfig) (*ClockGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ClockGenerator{cfg: cfg}, nil
}

func (clk *ClockGenerator) String() string {
	return fmt.Sprintf("div=%d tick=%d edge=%02d %s", clk.cfg.Divisor, clk.TickCounter, clk.EdgeCounter, clk.Signals())
}

// Config returns the configuration used to create the generator.
func (clk *ClockGenerator) Config() ClockConfig {
	return clk.cfg
}

// Snapshot creates a copy of the ClockGenerator in its current state.
func (clk *ClockGenerator) Snapshot() *ClockGenerator {
	n := *clk
	return &n
}

// Signals returns the output of the most recent tick.
func (clk *ClockGenerator) Signals() Signals {
	return Signals{
		BCLK:    clk.BCLK,
		LRCLK:   clk.LRCLK,
		Falling: clk.Falling,
	}
}

// Step advances the clock generator by one system tick. Reset is synchronous
// and clears all counters and outputs on the tick it is asserted.
func (clk *ClockGenerator) Step(reset bool) Signals {
	if reset {
		clk.TickCounter = 0
		clk.EdgeCounter = 0
		clk.BCLK = false
		clk.LRCLK = false
		clk.Falling = false
		return Signals{}
	}

	// the strobe is not stored across ticks
	clk.Falling = false

	if clk.TickCounter < clk.cfg.Divisor-1 {
		clk.TickCounter++
		return clk.Signals()
	}

	clk.TickCounter = 0
	clk.BCLK = !clk.BCLK

	if !clk.BCLK {
		clk.Falling = true
		clk.EdgeCounter++
		if clk.EdgeCounter >= i2s.SlotWidth {
			clk.EdgeCounter = 0
			clk.LRCLK = !clk.LRCLK
		}
	}

	return clk.Signals()
}
