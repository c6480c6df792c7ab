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

package hardware

import (
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
)

// FrameSource returns the next frame to be sent through the link. The bool
// return value is false when there are no more frames.
type FrameSource func() (i2s.Frame, bool)

// FrameSink receives frames recovered from the link. Returning an error stops
// the stream.
type FrameSink func(i2s.Frame) error

// Stream resets the link and sends the frames through it. Recovered frames
// are sent to the sink in order. Stream returns when every frame has been
// recovered or when the sink returns an error.
//
// See StreamFrom() for details of how frames are presented to the link.
func (lnk *Link) Stream(frames []i2s.Frame, sink FrameSink) error {
	var i int
	return lnk.StreamFrom(func() (i2s.Frame, bool) {
		if i >= len(frames) {
			return i2s.Frame{}, false
		}
		i++
		return frames[i-1], true
	}, sink)
}

// StreamFrom resets the link and sends frames from the source through it.
//
// The link is held at the zero frame after reset. A new frame is presented
// on the tick the transmitter loads the right slot of the previous frame so
// the left and right samples of a frame are always sent one after the other.
// The first completed slot after reset is the right slot of the zero frame.
// This slot is discarded and a recovered frame is only sent to the sink when
// a right slot follows a left slot.
//
// Once the source is exhausted the link is presented with the zero frame
// until all frames in flight have been recovered.
func (lnk *Link) StreamFrom(source FrameSource, sink FrameSink) error {
	lnk.Reset()

	var in Inputs
	var inFlight int
	var exhausted bool
	var haveLeft bool
	var left uint32
	var count int

	for !exhausted || inFlight > 0 {
		out := lnk.Step(in)

		if out.RX.LeftValid {
			left = out.RX.Left
			haveLeft = true
		}

		if out.RX.RightValid && haveLeft {
			haveLeft = false
			inFlight--
			count++
			if err := sink(i2s.Frame{Left: left, Right: out.RX.Right}); err != nil {
				return err
			}
		}

		// the frame for the next left slot is presented once the right slot
		// of the current frame has been loaded
		if lnk.TX.Loaded && lnk.TX.Active == i2s.Right {
			in.Frame = i2s.Frame{}
			if !exhausted {
				f, ok := source()
				if ok {
					in.Frame = f
					inFlight++
				} else {
					exhausted = true
				}
			}
		}
	}

	logger.Logf(lnk.env, "link", "streamed %d frames", count)

	return nil
}
