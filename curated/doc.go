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

// Package curated is a helper package for the plain Go error type. Curated
// errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, the same as fmt.Errorf(), but the
// pattern is kept and is used to identify the error later on:
//
//	e := curated.Errorf(i2s.InvalidConfig, "data bits too wide")
//
//	if curated.Is(e, i2s.InvalidConfig) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of curated errors:
//
//	f := curated.Errorf("link: %v", e)
//
//	if curated.Has(f, i2s.InvalidConfig) {
//		fmt.Println("true")
//	}
//
// Packages should export the patterns they use as string constants so that
// callers can test for them.
//
// Error messages are normalised when they are printed. Message parts that
// repeat immediately are removed, so wrapping an error in a pattern with the
// same prefix does not result in a stuttering message.
package curated
