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

// Package prefs facilitates the storage of preferential values in the
// application. Values are registered with a Disk instance and are saved to
// and loaded from a file on disk.
//
// The preferences file is a plain text file. The first line is always
// WarningBoilerPlate. Every following line is a single key/value pair
// separated by KeySep:
//
//	i2s.clockDivisor :: 4
//	i2s.dataBits :: 24
//
// A preferences file can contain keys that are not registered with any
// single Disk instance. Those keys are preserved when the Disk is saved.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. Command line values take priority over
// values stored on disk and are consumed by the first Disk.Load() that asks
// for them.
package prefs
