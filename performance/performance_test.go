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


package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/performance"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestCalcTickRate(t *testing.T) {
	rate, accuracy := performance.CalcTickRate(50000000, 2.0, 25000000)
	test.ExpectApproximate(t, rate, 25000000.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	rate, accuracy = performance.CalcTickRate(1000, 0, 25000000)
	test.ExpectEquality(t, rate, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfileString("disk")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	ran := false
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectFailure(t, err)

	// errors from the run function are returned unchanged
	sentinal := errors.New("sentinal")
	err = performance.RunProfiler(performance.ProfileNone, header, func() error {
		return sentinal
	})
	test.ExpectEquality(t, errors.Is(err, sentinal), true)
}

func TestCheck(t *testing.T) {
	lead := performance.LeadTime
	performance.LeadTime = 10 * time.Millisecond
	defer func() { performance.LeadTime = lead }()

	env, err := environment.NewEnvironment(environment.Comparison, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	w := &test.CompareWriter{}
	err = performance.Check(w, performance.ProfileNone, env, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.Contains("ticks/sec"), true)
	test.ExpectEquality(t, w.Contains("frames recovered"), true)

	err = performance.Check(w, performance.ProfileNone, env, "fifty")
	test.ExpectFailure(t, err)

	_ = env.Prefs.ClockDivisor.Set(0)
	err = performance.Check(w, performance.ProfileNone, env, "50ms")
	test.ExpectFailure(t, err)
}
