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
	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/govern"
)

// The continueCheck() function is called after every tick. It can be
// expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 1000

// InputFunc returns the inputs for the next tick. A nil InputFunc is the
// same as a function that always returns the zero Inputs value.
type InputFunc func() Inputs

// Run sets the link running as quickly as possible. The link is not stepped
// while the continueCheck() function returns govern.Paused.
func (lnk *Link) Run(input InputFunc, continueCheck func() (govern.State, error)) error {
	if input == nil {
		input = func() Inputs { return Inputs{} }
	}
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			lnk.Step(input())
		case govern.Paused:
		default:
			return curated.Errorf("link: unsupported state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrames sets the link running for the specified number of frames.
// Frames are counted by the receiver.
func (lnk *Link) RunForFrames(numFrames int, input InputFunc, continueCheck func(frame int) (govern.State, error)) error {
	if input == nil {
		input = func() Inputs { return Inputs{} }
	}
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := lnk.coords.Frame
	targetFrame := frameNum + numFrames

	var err error

	state := govern.Running
	for frameNum < targetFrame && state != govern.Ending {
		out := lnk.Step(input())
		frameNum = lnk.coords.Frame

		if out.RX.RightValid {
			state, err = continueCheck(frameNum)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
