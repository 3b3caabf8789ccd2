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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The interface defines the
// memory operations required by the CPU.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// executes one instruction, or one interrupt sequence, and returns the number
// of cycles consumed.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	numCycles := 0
//	for {
//		n, err := mc.Step()
//		if err != nil {
//			break
//		}
//		numCycles += n
//	}
//
// An opcode that isn't part of the official instruction set causes Step() to
// return an error matching the UndefinedOpcode pattern. The PC is left
// pointing at the bad opcode and the CPU is halted; every subsequent call to
// Step() returns an error matching the Halted pattern until Reset() is called.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed. See the execution package for more information. Very useful for
// debuggers.
//
// Interrupts are raised with the NMI(), SetNMILine() and SetIRQLine()
// functions. A pending interrupt is serviced at the start of the next call to
// Step() instead of an instruction.
//
// The CPU is not safe for concurrent use. The Snapshot() function can be used
// to take a copy of the registers for inspection by another goroutine.
package cpu
