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

// Package wavwriter allows writing of recovered frames to disk as a stereo
// WAV file. Note that the frames are buffered in memory in their entirety,
// and written to disk when EndMixing() is called. It is therefore probably
// only suitable for testing purposes.
//
// Samples are interpreted as two's complement values of the configured
// width. The bit depth of the WAV file is the smallest of 16, 24 or 32 bits
// that can hold the sample. Samples are shifted so that the most significant
// bit of the sample is the most significant bit of the WAV sample.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
)

// the audio format value for uncompressed PCM data
const pcmFormat = 1

// BitDepth returns the bit depth of the WAV file used for samples of the
// configured width.
func BitDepth(cfg i2s.ChannelConfig) int {
	switch {
	case cfg.DataBits <= 16:
		return 16
	case cfg.DataBits <= 24:
		return 24
	}
	return 32
}

// WavWriter collects frames and writes them to a WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	cfg        i2s.ChannelConfig
	depth      int

	// interleaved left and right samples
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int, cfg i2s.ChannelConfig) (*WavWriter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", fmt.Sprintf("bad sample rate (%d)", sampleRate))
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		cfg:        cfg,
		depth:      BitDepth(cfg),
		buffer:     make([]int, 0, sampleRate*2),
	}

	return aw, nil
}

// Frames returns the number of frames added so far.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer) / 2
}

// AddFrame adds a recovered frame to the WAV data. The function signature
// matches the hardware.FrameSink type.
func (aw *WavWriter) AddFrame(f i2s.Frame) error {
	shift := aw.depth - aw.cfg.DataBits
	aw.buffer = append(aw.buffer,
		int(aw.cfg.SignExtend(f.Left))<<shift,
		int(aw.cfg.SignExtend(f.Right))<<shift,
	)
	return nil
}

// EndMixing writes the collected frames to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, aw.depth, 2, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: aw.depth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d frames (%d bit) to %s", aw.Frames(), aw.depth, aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
