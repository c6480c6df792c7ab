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


package limiter_test

import (
	"testing"
	"time"

	"github.com/gopheri2s/gopheri2s/performance/limiter"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewLimiter(0, 1)
	test.ExpectFailure(t, err)
	_, err = limiter.NewLimiter(100, 0)
	test.ExpectFailure(t, err)
}

func TestPacing(t *testing.T) {
	// 1000 events per second in batches of 10. 50 events is five batches and
	// should take at least 40ms (the first batch starts the schedule)
	lim, err := limiter.NewLimiter(1000, 10)
	test.DemandSuccess(t, err)

	start := time.Now()
	for range 50 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	if elapsed < 40*time.Millisecond {
		t.Errorf("limiter too fast: %v", elapsed)
	}
	test.ExpectEquality(t, lim.String(), "1000/sec (batch 10)")
}
