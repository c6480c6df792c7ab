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


package test_test

import (
	"fmt"
	"testing"

	"github.com/gopheri2s/gopheri2s/test"
)

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	w, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)

	n, _ := fmt.Fprint(w, "LRCLK")
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, w.Full(), false)

	n, _ = fmt.Fprint(w, "BCLK")
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, w.String(), "LRCLKBCL")
	test.ExpectEquality(t, w.Full(), true)

	n, _ = fmt.Fprint(w, "SDATA")
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, w.String(), "LRCLKBCL")

	w.Reset()
	test.ExpectEquality(t, w.String(), "")
	test.ExpectEquality(t, w.Full(), false)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	fmt.Fprintf(w, "left %08x", 0x1234)
	test.ExpectEquality(t, w.Compare("left 00001234"), true)
	test.ExpectEquality(t, w.Contains("1234"), true)
	test.ExpectEquality(t, w.Contains("right"), false)
	w.Clear()
	test.ExpectEquality(t, w.Compare(""), true)
}
