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


// Package debugger is a simple host for the CPU. It loads a binary image into
// memory and then either runs it to completion or steps through it one
// instruction at a time under the control of the keyboard.
//
// Initialisation of the debugger is done with the NewDebugger() function:
//
//	mem := memory.NewRAM()
//	mc := cpu.NewCPU(mem)
//	dbg := debugger.NewDebugger(mc, mem, os.Stdout)
//
// A program image is loaded with Load() and run with Run(). Run() stops when
// the CPU encounters a trap, which is an instruction that leaves the PC
// unchanged. For example:
//
//	done:	JMP done
//
// This is the idiom used by most 6502 test programs to signal that testing is
// complete. Run() also stops when the CPU reports an error or when the step
// limit is reached.
//
// The Interactive() function is driven by a KeyReader. The terminal
// sub-package provides a KeyReader for POSIX terminals.
package debugger
