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


package pattern_test

import (
	"testing"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/pattern"
	"github.com/gopheri2s/gopheri2s/random"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestUnknown(t *testing.T) {
	_, err := pattern.New("square", i2s.ChannelConfig{DataBits: 16}, nil)
	test.ExpectEquality(t, curated.Is(err, pattern.UnknownPattern), true)

	_, err = pattern.New(pattern.Ramp, i2s.ChannelConfig{DataBits: 0}, nil)
	test.ExpectEquality(t, curated.Is(err, i2s.InvalidConfig), true)

	_, err = pattern.New(pattern.Random, i2s.ChannelConfig{DataBits: 16}, nil)
	test.ExpectFailure(t, err)
}

func TestRamp(t *testing.T) {
	gen, err := pattern.New("ramp", i2s.ChannelConfig{DataBits: 8}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gen(0), i2s.Frame{Left: 0, Right: 0xff})
	test.ExpectEquality(t, gen(1), i2s.Frame{Left: 1, Right: 0xfe})
	test.ExpectEquality(t, gen(256), i2s.Frame{Left: 0, Right: 0xff})
}

func TestSine(t *testing.T) {
	cfg := i2s.ChannelConfig{DataBits: 16}
	gen, err := pattern.New(pattern.Sine, cfg, nil)
	test.DemandSuccess(t, err)

	f := gen(0)
	test.ExpectEquality(t, f.Left, uint32(0))
	test.ExpectEquality(t, cfg.SignExtend(f.Right), int32(32767))

	f = gen(25)
	test.ExpectEquality(t, cfg.SignExtend(f.Left), int32(32767))

	f = gen(75)
	test.ExpectEquality(t, cfg.SignExtend(f.Left), int32(-32767))

	for n := range 200 {
		f := gen(n)
		test.ExpectEquality(t, f.Left&^cfg.Mask(), uint32(0), n)
		test.ExpectEquality(t, f.Right&^cfg.Mask(), uint32(0), n)
	}
}

func TestRandom(t *testing.T) {
	cfg := i2s.ChannelConfig{DataBits: 12}
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	gen, err := pattern.New(pattern.Random, cfg, rnd)
	test.DemandSuccess(t, err)
	for n := range 100 {
		f := gen(n)
		test.ExpectEquality(t, f.Left&^cfg.Mask(), uint32(0), n)
		test.ExpectEquality(t, f.Right&^cfg.Mask(), uint32(0), n)
	}
}

func TestSource(t *testing.T) {
	gen, err := pattern.New(pattern.Ramp, i2s.ChannelConfig{DataBits: 24}, nil)
	test.DemandSuccess(t, err)

	src := pattern.Source(gen, 3)
	for i := range 3 {
		f, ok := src()
		test.ExpectEquality(t, ok, true)
		test.ExpectEquality(t, f.Left, uint32(i))
	}
	_, ok := src()
	test.ExpectEquality(t, ok, false)

	frames := pattern.Frames(gen, 5)
	test.ExpectEquality(t, len(frames), 5)
	test.ExpectEquality(t, frames[4], gen(4))
}

func TestRandomRepeatable(t *testing.T) {
	cfg := i2s.ChannelConfig{DataBits: 24}

	frames := func() []i2s.Frame {
		rnd := random.NewRandom(nil)
		rnd.ZeroSeed = true
		gen, err := pattern.New(pattern.Random, cfg, rnd)
		test.DemandSuccess(t, err)
		return pattern.Frames(gen, 20)
	}

	a := frames()
	b := frames()
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}
	test.ExpectInequality(t, a[0], a[1])
}
