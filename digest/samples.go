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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/gopheri2s/gopheri2s/hardware/i2s"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const samplesBufferLength = 8192

// to allow us to create digests on streams longer than samplesBufferLength,
// we'll stuff the previous digest value into the first part of the buffer
// array and make sure we include it when we create the next digest value
const samplesBufferStart = sha1.Size

// the number of bytes used by each frame in the buffer
const frameLength = 8

// Samples creates a digest of recovered frames.
type Samples struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int

	// number of frames added since the digest was last reset
	Frames int
}

// NewSamples is the preferred method of initialisation for the Samples type.
func NewSamples() *Samples {
	dig := &Samples{
		buffer: make([]byte, samplesBufferLength),
	}
	dig.ResetDigest()
	return dig
}

func (dig *Samples) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Frames that have not yet been
// flushed are included in the hash.
func (dig *Samples) Hash() string {
	if dig.bufferCt == samplesBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Samples) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = samplesBufferStart
	dig.Frames = 0
}

// AddFrame adds a recovered frame to the digest. The function signature
// matches the hardware.FrameSink type.
func (dig *Samples) AddFrame(f i2s.Frame) error {
	if dig.bufferCt+frameLength > len(dig.buffer) {
		dig.flush()
	}
	binary.BigEndian.PutUint32(dig.buffer[dig.bufferCt:], f.Left)
	binary.BigEndian.PutUint32(dig.buffer[dig.bufferCt+4:], f.Right)
	dig.bufferCt += frameLength
	dig.Frames++
	return nil
}

func (dig *Samples) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = samplesBufferStart
}
