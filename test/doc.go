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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure but allow the test to
// continue. They return true if the expectation was met, which is useful when
// a series of checks should be summarised before giving up. The Demand*()
// functions are fatal to the test.
//
// It is worth describing how the success and failure functions handle the nil
// value because it is not obvious. A nil value is considered a success. This
// may not be how we want to interpret nil in all situations but because of how
// errors usually work (nil to indicate no error) we need to interpret nil in
// this way.
//
// All functions accept an optional list of tags. The tags are printed at the
// start of any failure message and help to identify the failing case in table
// driven tests.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for later comparison.
package test
