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

package hardware_test

import (
	"testing"

	"github.com/gopheri2s/gopheri2s/govern"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestRun(t *testing.T) {
	lnk := newLink(t, 2, 24)
	start := lnk.GetCoords().Tick

	var checks int
	err := lnk.Run(nil, func() (govern.State, error) {
		checks++
		if checks >= 1000 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lnk.GetCoords().Tick-start, int64(1000))
}

func TestRunPaused(t *testing.T) {
	lnk := newLink(t, 2, 24)
	start := lnk.GetCoords().Tick

	// ten running ticks and then ten paused checks
	var checks int
	err := lnk.Run(nil, func() (govern.State, error) {
		checks++
		switch {
		case checks < 10:
			return govern.Running, nil
		case checks < 20:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lnk.GetCoords().Tick-start, int64(10))
}

func TestRunUnsupportedState(t *testing.T) {
	lnk := newLink(t, 2, 24)
	err := lnk.Run(nil, func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunInput(t *testing.T) {
	lnk := newLink(t, 2, 24)

	in := func() hardware.Inputs {
		return hardware.Inputs{Frame: i2s.Frame{Left: 0x123456, Right: 0x654321}}
	}

	var perf int
	err := lnk.Run(in, func() (govern.State, error) {
		perf++
		if perf >= hardware.PerformanceBrake {
			perf = 0
			if lnk.GetCoords().Frame >= 3 {
				return govern.Ending, nil
			}
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lnk.RX.Outputs().Frame(), i2s.Frame{Left: 0x123456, Right: 0x654321})
}

func TestRunForFrames(t *testing.T) {
	lnk := newLink(t, 1, 24)

	var seen []int
	err := lnk.RunForFrames(10, nil, func(frame int) (govern.State, error) {
		seen = append(seen, frame)
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lnk.GetCoords().Frame, 10)
	test.DemandEquality(t, len(seen), 10)
	for i, f := range seen {
		test.ExpectEquality(t, f, i+1)
	}

	// ending early
	err = lnk.RunForFrames(10, nil, func(frame int) (govern.State, error) {
		if frame == 12 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lnk.GetCoords().Frame, 12)
}
