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

// Package soundload reads audio files and converts them into frames suitable
// for sending through the link. WAV files are decoded with go-audio/wav and
// MP3 files with go-mp3.
//
// Samples are rescaled from the bit depth of the source file to the
// configured sample width and stored as the two's complement bit pattern of
// that width. Mono files are duplicated into both channels. Files with more
// than two channels use the first two channels.
package soundload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
	"github.com/hajimehoshi/go-mp3"
)

// Sentinal errors.
const (
	UnsupportedFile = "soundload: unsupported file type (%s)"
	DecodeError     = "soundload: %s: %v"
)

const soundloadLogTag = "soundload"

// Sound is the result of loading an audio file.
type Sound struct {
	Frames     []i2s.Frame
	SampleRate int

	// bit depth of the source data
	SourceBits int
}

func (snd *Sound) String() string {
	return fmt.Sprintf("%d frames at %dHz (%s)", len(snd.Frames), snd.SampleRate, snd.Duration())
}

// Duration returns the length of the sound.
func (snd *Sound) Duration() time.Duration {
	if snd.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(snd.Frames)) * time.Second / time.Duration(snd.SampleRate)
}

// Load the file. The type of the file is decided by the file extension.
func Load(filename string, cfg i2s.ChannelConfig) (*Sound, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(filename), cfg)
}

// Decode audio data from the reader. The ext argument is a file extension
// (with or without the leading dot) and decides how the data is decoded.
func Decode(r io.ReadSeeker, ext string, cfg i2s.ChannelConfig) (*Sound, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")

	var snd *Sound
	var err error

	switch ext {
	case "wav":
		snd, err = decodeWAV(r, cfg)
	case "mp3":
		snd, err = decodeMP3(r, cfg)
	default:
		return nil, curated.Errorf(UnsupportedFile, ext)
	}

	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, soundloadLogTag, "%s: %s", ext, snd)

	return snd, nil
}

// rescale a signed sample of srcBits width to the configured width and
// return the bit pattern
func rescale(v int, srcBits int, cfg i2s.ChannelConfig) uint32 {
	if d := cfg.DataBits - srcBits; d >= 0 {
		v <<= d
	} else {
		v >>= -d
	}
	return cfg.FromSigned(int32(v))
}

func decodeWAV(r io.ReadSeeker, cfg i2s.ChannelConfig) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, curated.Errorf(DecodeError, "wav", "no channels")
	}

	srcBits := int(dec.BitDepth)

	// 8 bit wav data is unsigned
	var bias int
	if srcBits == 8 {
		bias = 128
	}

	snd := &Sound{
		Frames:     make([]i2s.Frame, 0, len(buf.Data)/chans),
		SampleRate: int(dec.SampleRate),
		SourceBits: srcBits,
	}

	for i := 0; i+chans <= len(buf.Data); i += chans {
		left := buf.Data[i] - bias
		right := left
		if chans > 1 {
			right = buf.Data[i+1] - bias
		}
		snd.Frames = append(snd.Frames, i2s.Frame{
			Left:  rescale(left, srcBits, cfg),
			Right: rescale(right, srcBits, cfg),
		})
	}

	return snd, nil
}

func decodeMP3(r io.Reader, cfg i2s.ChannelConfig) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels
	// even if the source is single channel MP3. Thus, a sample always
	// consists of 4 bytes."
	const srcBits = 16

	snd := &Sound{
		SampleRate: dec.SampleRate(),
		SourceBits: srcBits,
	}

	if length := dec.Length(); length > 0 {
		snd.Frames = make([]i2s.Frame, 0, length/4)
	}

	chunk := make([]byte, 4096)
	var pending []byte
	for {
		n, err := dec.Read(chunk)
		pending = append(pending, chunk[:n]...)

		for len(pending) >= 4 {
			left := int(int16(uint16(pending[0]) | uint16(pending[1])<<8))
			right := int(int16(uint16(pending[2]) | uint16(pending[3])<<8))
			snd.Frames = append(snd.Frames, i2s.Frame{
				Left:  rescale(left, srcBits, cfg),
				Right: rescale(right, srcBits, cfg),
			})
			pending = pending[4:]
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	return snd, nil
}
