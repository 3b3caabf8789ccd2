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


// Package terminal provides single key input from the controlling terminal.
// It is a wrapper for "github.com/pkg/term", which puts the terminal into
// cbreak mode, and "golang.org/x/term", which reports whether a file is a
// terminal and what size it is.
//
// The Terminal type satisfies the debugger.KeyReader interface.
package terminal
