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


// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. It is used to pace the link so that frames are recovered at
// the sample rate rather than as quickly as possible.
//
// Events are counted in batches. Sleeping once per event is far too fine
// grained at audio rates so the limiter only sleeps when a batch of events
// has completed, and then for however long it takes for the batch to be on
// schedule.
//
//	lim, _ := limiter.NewLimiter(48000, 480)
//	for {
//		lim.Wait()
//		recoverFrame()
//	}
package limiter

import (
	"fmt"
	"time"
)

// Limiter paces events to a fixed rate.
type Limiter struct {
	rate  int
	batch int

	// the duration of one batch of events
	period time.Duration

	count int
	next  time.Time

	// the number of batches that finished late
	Late int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// Rate is the number of events per second.
func NewLimiter(rate int, batch int) (*Limiter, error) {
	lim := &Limiter{}
	if err := lim.SetLimit(rate, batch); err != nil {
		return nil, err
	}
	return lim, nil
}

func (lim *Limiter) String() string {
	return fmt.Sprintf("%d/sec (batch %d)", lim.rate, lim.batch)
}

// SetLimit changes the rate and the batch size. The schedule is restarted.
func (lim *Limiter) SetLimit(rate int, batch int) error {
	if rate <= 0 {
		return fmt.Errorf("limiter: rate must be positive (%d)", rate)
	}
	if batch <= 0 {
		return fmt.Errorf("limiter: batch must be positive (%d)", batch)
	}
	lim.rate = rate
	lim.batch = batch
	lim.period = time.Duration(float64(time.Second) * float64(batch) / float64(rate))
	lim.count = 0
	lim.next = time.Time{}
	return nil
}

// Wait counts an event and blocks if the current batch has completed ahead
// of schedule.
func (lim *Limiter) Wait() {
	now := time.Now()
	if lim.next.IsZero() {
		lim.next = now.Add(lim.period)
	}

	lim.count++
	if lim.count < lim.batch {
		return
	}
	lim.count = 0

	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
		lim.next = lim.next.Add(lim.period)
		return
	}

	// the batch was late. start the schedule again from now rather than
	// trying to catch up
	lim.Late++
	lim.next = now.Add(lim.period)
}
