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

// Package logger is the central log repository for GopherI2S. Log entries
// are tagged and each entry has a detail. The detail can be a string, an
// error, a fmt.Stringer or any value that can be printed with the %v verb.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count.
//
// Logging is controlled by the Permission interface. Callers pass a value
// that decides whether the log request is honoured. The logger.Allow value
// can be used when a log entry should always be made. The environment
// package provides a Permission implementation that prevents secondary links
// (snapshots, comparison links in tests) from flooding the log.
//
// The per-tick step functions of the hardware packages never log. Logging
// happens on construction, reset and in the drivers that sit around the
// link.
package logger
