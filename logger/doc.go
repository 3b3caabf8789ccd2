// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Log entries are
// made with a tag and a detail. The tag is usually the name of the package or
// component making the entry.
//
//	logger.Logf(logger.Allow, "CPU", "undefined opcode (%#02x)", opcode)
//
// Repeated entries are collapsed into a single entry with a repeat count. The
// log is capped to a maximum number of entries with the oldest entries being
// dropped first.
//
// The Permission argument allows the environment making the log request to
// decide whether logging should happen. The Allow value is a good default.
//
// The log can be echoed to an io.Writer as entries are made with SetEcho().
package logger
