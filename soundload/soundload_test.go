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

package soundload_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/soundload"
	"github.com/gopheri2s/gopheri2s/test"
	"github.com/gopheri2s/gopheri2s/wavwriter"
)

func writeWAV(t *testing.T, frames []i2s.Frame, cfg i2s.ChannelConfig) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.wav")
	aw, err := wavwriter.New(fn, 48000, cfg)
	test.DemandSuccess(t, err)
	for _, f := range frames {
		test.DemandSuccess(t, aw.AddFrame(f))
	}
	test.DemandSuccess(t, aw.EndMixing())

	return fn
}

func TestRoundTrip(t *testing.T) {
	for _, bits := range []int{8, 12, 16, 20, 24, 31} {
		cfg := i2s.ChannelConfig{DataBits: bits}

		frames := []i2s.Frame{
			{Left: 0, Right: cfg.Mask()},
			{Left: cfg.Mask() >> 1, Right: (cfg.Mask() >> 1) + 1},
			{Left: 0x5a5a5a5a & cfg.Mask(), Right: 0xa5a5a5a5 & cfg.Mask()},
		}

		snd, err := soundload.Load(writeWAV(t, frames, cfg), cfg)
		test.DemandSuccess(t, err, "bits", bits)
		test.ExpectEquality(t, snd.SampleRate, 48000, "bits", bits)
		test.ExpectEquality(t, snd.SourceBits, wavwriter.BitDepth(cfg), "bits", bits)
		test.DemandEquality(t, len(snd.Frames), len(frames), "bits", bits)
		for i := range frames {
			test.ExpectEquality(t, snd.Frames[i], frames[i], "bits", bits, "frame", i)
		}
	}
}

func TestRescale(t *testing.T) {
	fn := writeWAV(t, []i2s.Frame{{Left: 0x7fff, Right: 0x8000}}, i2s.ChannelConfig{DataBits: 16})

	// widening keeps the sign and moves the sample to the top of the word
	snd, err := soundload.Load(fn, i2s.ChannelConfig{DataBits: 24})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snd.Frames[0], i2s.Frame{Left: 0x7fff00, Right: 0x800000})

	// narrowing drops the least significant bits
	snd, err = soundload.Load(fn, i2s.ChannelConfig{DataBits: 8})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snd.Frames[0], i2s.Frame{Left: 0x7f, Right: 0x80})
}

func TestMono(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mono.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, 22050, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 22050},
		Data:           []int{100, -100, 0},
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	cfg := i2s.ChannelConfig{DataBits: 16}
	snd, err := soundload.Load(fn, cfg)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snd.Frames), 3)
	test.ExpectEquality(t, snd.SampleRate, 22050)

	for i, v := range []int32{100, -100, 0} {
		p := cfg.FromSigned(v)
		test.ExpectEquality(t, snd.Frames[i], i2s.Frame{Left: p, Right: p}, "frame", i)
	}
}

func TestDuration(t *testing.T) {
	snd := &soundload.Sound{
		Frames:     make([]i2s.Frame, 24000),
		SampleRate: 48000,
	}
	test.ExpectEquality(t, snd.Duration(), 500*time.Millisecond)

	snd.SampleRate = 0
	test.ExpectEquality(t, snd.Duration(), time.Duration(0))
}

func TestUnsupported(t *testing.T) {
	cfg := i2s.ChannelConfig{DataBits: 16}

	_, err := soundload.Decode(bytes.NewReader([]byte{0x00}), ".flac", cfg)
	test.ExpectSuccess(t, curated.Is(err, soundload.UnsupportedFile))

	_, err = soundload.Decode(bytes.NewReader([]byte("not a wav file at all")), "WAV", cfg)
	test.ExpectSuccess(t, curated.Is(err, soundload.DecodeError))

	_, err = soundload.Decode(bytes.NewReader(make([]byte, 64)), "mp3", cfg)
	test.ExpectSuccess(t, curated.Is(err, soundload.DecodeError))

	_, err = soundload.Load(filepath.Join(t.TempDir(), "missing.wav"), cfg)
	test.ExpectSuccess(t, curated.Is(err, soundload.DecodeError))

	// an invalid sample width is an i2s error
	_, err = soundload.Decode(bytes.NewReader(nil), "wav", i2s.ChannelConfig{})
	test.ExpectSuccess(t, curated.Is(err, i2s.InvalidConfig))
}
