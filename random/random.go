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

package random

import (
	"math/rand"
	"time"

	"github.com/gopheri2s/gopheri2s/hardware/coords"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Source is the source of coordinates for the random number generator.
type Source interface {
	GetCoords() coords.Coords
}

// Random is a random number generator that is sensitive to the time of the
// link.
type Random struct {
	src Source

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised environments where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The source can be nil, in which case the coordinates are assumed to be
// zero until a source is plumbed in.
func NewRandom(src Source) *Random {
	return &Random{
		src: src,
	}
}

// Plumb a new source of coordinates into the Random instance.
func (rnd *Random) Plumb(src Source) {
	rnd.src = src
}

// translate link coordinates into a single value
func coordsSum(c coords.Coords) int64 {
	return c.Tick ^ (int64(c.Frame) << 40)
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var c coords.Coords
	if rnd.src != nil {
		c = rnd.src.GetCoords()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(coordsSum(c)))
	}
	return rand.New(rand.NewSource(baseSeed + coordsSum(c)))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint32 returns a random 32 bit value.
func (rnd *Random) Uint32() uint32 {
	return rnd.rand().Uint32()
}
