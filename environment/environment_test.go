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

package environment_test

import (
	"strings"
	"testing"

	"github.com/gopheri2s/gopheri2s/environment"
	"github.com/gopheri2s/gopheri2s/logger"
	"github.com/gopheri2s/gopheri2s/test"
)

func TestNewEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainLink, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainLink())
	test.ExpectSuccess(t, env.IsLink(environment.MainLink))
	test.ExpectFailure(t, env.IsLink(environment.Comparison))

	// preferences can be shared
	cmp, err := environment.NewEnvironment(environment.Comparison, env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cmp.IsMainLink())
	test.ExpectEquality(t, cmp.Prefs, env.Prefs)
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainLink, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, env.Prefs.DataBits.Set(8))
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.DataBits.String(), "24")
	test.ExpectSuccess(t, env.Random.ZeroSeed)
}

func TestLoggingPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainLink, nil)
	test.DemandSuccess(t, err)
	cmp, err := environment.NewEnvironment(environment.Comparison, nil)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	log.Log(main, "env", "main")
	log.Log(cmp, "env", "comparison")

	s := &strings.Builder{}
	log.Write(s)
	test.ExpectEquality(t, s.String(), "env: main\n")
}
