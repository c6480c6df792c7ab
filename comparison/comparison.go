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


package comparison

import (
	"errors"
	"fmt"

	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
)

// the number of recovered frames the main link can be ahead of the
// reference link
const syncBuffer = 64

// sentinal error used to stop the reference link when the main link has
// stopped sending frames
var driverEnded = errors.New("comparison: main link ended")

// Result of a comparison.
type Result struct {
	// number of frames compared
	Frames int

	// number of frames that were different
	Diffs int

	// the index of the first frame that was different. -1 if there were no
	// differences
	FirstDiff int

	// difference in the number of frames recovered by the two links. positive
	// if the reference link recovered more frames
	Missing int
}

func (res Result) String() string {
	if res.Diffs == 0 && res.Missing == 0 {
		return fmt.Sprintf("%d frames compared: no differences", res.Frames)
	}
	s := fmt.Sprintf("%d frames compared: %d differ", res.Frames, res.Diffs)
	if res.FirstDiff >= 0 {
		s = fmt.Sprintf("%s (first at frame %d)", s, res.FirstDiff)
	}
	if res.Missing != 0 {
		s = fmt.Sprintf("%s, %d frames unmatched", s, res.Missing)
	}
	return s
}

// Comparison runs a reference link alongside the main link.
type Comparison struct {
	// the reference link
	Link *hardware.Link

	driverEnv *environment.Environment

	// frames recovered by the main link
	frames chan i2s.Frame

	// closed when the reference link has finished
	quit chan struct{}

	res Result
	err error

	started bool
	ended   bool
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The reference link shares the preferences of the main link.
func NewComparison(driver *hardware.Link) (*Comparison, error) {
	env, err := environment.NewEnvironment(environment.Comparison, driver.Env().Prefs)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}
	env.Random.ZeroSeed = driver.Env().Random.ZeroSeed

	cmp := &Comparison{
		driverEnv: driver.Env(),
		frames:    make(chan i2s.Frame, syncBuffer),
		quit:      make(chan struct{}),
		res:       Result{FirstDiff: -1},
	}

	cmp.Link, err = hardware.NewLink(env)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	return cmp, nil
}

// Start streaming the frames through the reference link. The frames should
// be the same frames that are sent through the main link.
func (cmp *Comparison) Start(frames []i2s.Frame) {
	if cmp.started {
		panic("comparison: already started")
	}
	cmp.started = true

	go func() {
		defer close(cmp.quit)

		err := cmp.Link.Stream(frames, func(ref i2s.Frame) error {
			drv, ok := <-cmp.frames
			if !ok {
				return driverEnded
			}
			if drv != ref {
				if cmp.res.FirstDiff == -1 {
					cmp.res.FirstDiff = cmp.res.Frames
				}
				cmp.res.Diffs++
			}
			cmp.res.Frames++
			return nil
		})

		if errors.Is(err, driverEnded) {
			// count the frames the reference was still to recover
			cmp.res.Missing = len(frames) - cmp.res.Frames
			return
		}
		cmp.err = err
	}()
}

// Sink returns a FrameSink for the main link. Frames are passed to the
// reference link for comparison before being sent to the next sink, which
// may be nil.
func (cmp *Comparison) Sink(next hardware.FrameSink) hardware.FrameSink {
	return func(f i2s.Frame) error {
		select {
		case cmp.frames <- f:
		case <-cmp.quit:
			// the reference link has finished so the frame can't be
			// matched
			cmp.res.Missing--
		}
		if next != nil {
			return next(f)
		}
		return nil
	}
}

// End waits for the reference link to finish and returns the result of the
// comparison. It should only be called once the main link has finished.
func (cmp *Comparison) End() (Result, error) {
	if !cmp.started {
		return cmp.res, fmt.Errorf("comparison: not started")
	}
	if !cmp.ended {
		cmp.ended = true
		close(cmp.frames)
		<-cmp.quit

		// frames from the main link that the reference never asked for
		for range cmp.frames {
			cmp.res.Missing--
		}

		logger.Logf(cmp.driverEnv, "comparison", "%s", cmp.res)
	}
	return cmp.res, cmp.err
}
