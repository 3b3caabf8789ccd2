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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and then Parse()
// is called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "OPCODES")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special argument that puts the program into a different mode of
// operation, each with its own flags. After Parse() the selected mode is
// returned by Mode(). The first sub-mode in the list is the default and is
// selected when the argument after the flags is not a sub-mode. Sub-mode
// comparisons are case insensitive.
//
// Once a mode has been chosen, NewMode() starts a new set of flags for that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0000, "load address of image")
//		limit := md.AddInt("limit", 0, "maximum number of steps")
//		p, err := md.Parse()
//		...
//		run(*origin, *limit, md.GetArg(0))
//	}
//
// Address flags accept hexadecimal values with a "0x" or "$" prefix or
// decimal values with no prefix.
package modalflag
