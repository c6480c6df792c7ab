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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the application.
//
// Random numbers are derived from the coordinates of the link the Random
// instance is plumbed into. The same coordinates always produce the same
// number, so two links that are run in parallel see the same sequence of
// random numbers.
//
// A base seed, chosen at program start, is mixed into every number. If the
// same random numbers are required every single time then set ZeroSeed to
// true. This is useful for testing purposes.
package random
