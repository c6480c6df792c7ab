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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report a failure with t.Fatalf() and
// stop the test immediately. Use Demand*() when continuing would make the
// rest of the test meaningless, for instance when a constructor has failed.
//
// Each function accepts optional tags. The tags are prepended to the failure
// message and are useful for identifying the failing iteration in a loop:
//
//	for div := 1; div <= 8; div++ {
//		test.ExpectEquality(t, halfPeriod, div, "divisor", div)
//	}
package test
