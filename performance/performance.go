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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/govern"
	"github.com/gopheri2s/gopheri2s/hardware"
	"github.com/gopheri2s/gopheri2s/hardware/i2s"
	"github.com/gopheri2s/gopheri2s/logger"
)

// LeadTime is how long the link runs before measurement begins. This allows
// the rate to settle down.
var LeadTime = 2 * time.Second

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the frame presented to the transmitter during the measurement. the value
// doesn't matter but it's more representative than silence
var testFrame = i2s.Frame{Left: 0x00a5a5a5, Right: 0x005a5a5a}

// CalcTickRate takes the number of ticks and the duration (in seconds) and
// returns the ticks-per-second and the accuracy of that value as a percentage
// of the tick frequency.
func CalcTickRate(numTicks int64, duration float64, tickFrequency int) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numTicks) / duration
	if tickFrequency > 0 {
		accuracy = 100 * rate / float64(tickFrequency)
	}
	return rate, accuracy
}

// Check the performance of the link described by the environment.
//
// The link will run for the specified duration and will create a cpu and
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, env *environment.Environment, duration string) error {
	lnk, err := hardware.NewLink(env)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	lnk.HoldReset(1)

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startTick := lnk.GetCoords().Tick
	startFrame := lnk.GetCoords().Frame

	runner := func() error {
		// false is sent when the lead time has elapsed. true is sent when the
		// measurement period has finished
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(LeadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		input := func() hardware.Inputs {
			return hardware.Inputs{Frame: testFrame}
		}

		// checking the timerChan is relatively expensive so only check every
		// PerformanceBrake ticks
		performanceBrake := 0

		return lnk.Run(input, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				c := lnk.GetCoords()
				startTick = c.Tick
				startFrame = c.Frame
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	end := lnk.GetCoords()
	numTicks := end.Tick - startTick
	numFrames := end.Frame - startFrame

	rate, accuracy := CalcTickRate(numTicks, dur.Seconds(), env.Prefs.TickFrequency.Get().(int))
	fmt.Fprintf(output, "%.0f ticks/sec (%d ticks in %.2f seconds) %.1f%%\n", rate, numTicks, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%d frames recovered (%.0f frames/sec)\n", numFrames, float64(numFrames)/dur.Seconds())

	logger.Logf(env, "performance", "%d ticks in %v", numTicks, dur)

	return nil
}
