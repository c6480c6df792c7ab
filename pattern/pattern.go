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


// Package pattern generates test frames for the link when no sound file is
// available. Every pattern respects the channel configuration so that the
// generated samples always fit in the data bits.
package pattern

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/random"
)

// Sentinal error returned by New().
const UnknownPattern = "pattern: unknown pattern (%s)"

// List of pattern names accepted by New().
const (
	Zero   = "ZERO"
	Ramp   = "RAMP"
	Sine   = "SINE"
	Random = "RANDOM"
)

// Names lists the available patterns. The first name is the default.
var Names = []string{Sine, Ramp, Random, Zero}

// the period of the sine pattern in frames
const sinePeriod = 100

// Generator returns the frame at position n in the pattern.
type Generator func(n int) i2s.Frame

// New returns the named generator. The random number source is only used by
// the RANDOM pattern and can be nil for the others. The RANDOM pattern
// ignores the frame position and returns the next frame in its sequence.
func New(name string, cfg i2s.ChannelConfig, rnd *random.Random) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mask := cfg.Mask()

	switch strings.ToUpper(name) {
	case Zero:
		return func(_ int) i2s.Frame {
			return i2s.Frame{}
		}, nil

	case Ramp:
		// the left channel counts up and the right channel counts down
		return func(n int) i2s.Frame {
			return i2s.Frame{
				Left:  uint32(n) & mask,
				Right: ^uint32(n) & mask,
			}
		}, nil

	case Sine:
		// full scale sine with the right channel a quarter period behind
		amp := float64(int64(1)<<(cfg.DataBits-1) - 1)
		return func(n int) i2s.Frame {
			l := math.Sin(2 * math.Pi * float64(n) / sinePeriod)
			r := math.Cos(2 * math.Pi * float64(n) / sinePeriod)
			return i2s.Frame{
				Left:  cfg.FromSigned(int32(math.Round(l * amp))),
				Right: cfg.FromSigned(int32(math.Round(r * amp))),
			}
		}, nil

	case Random:
		if rnd == nil {
			return nil, fmt.Errorf("pattern: %s requires a random number source", Random)
		}
		// the sequence is seeded once so that the frames are the same however
		// the generator is driven
		r := rand.New(rand.NewSource(int64(rnd.Uint32())))
		return func(_ int) i2s.Frame {
			return i2s.Frame{
				Left:  r.Uint32() & mask,
				Right: r.Uint32() & mask,
			}
		}, nil
	}

	return nil, curated.Errorf(UnknownPattern, name)
}

// Source returns a frame source that produces count frames from the
// generator.
func Source(gen Generator, count int) hardware.FrameSource {
	var n int
	return func() (i2s.Frame, bool) {
		if n >= count {
			return i2s.Frame{}, false
		}
		f := gen(n)
		n++
		return f, true
	}
}

// Frames returns the first count frames of the generator.
func Frames(gen Generator, count int) []i2s.Frame {
	frames := make([]i2s.Frame, count)
	for i := range frames {
		frames[i] = gen(i)
	}
	return frames
}
