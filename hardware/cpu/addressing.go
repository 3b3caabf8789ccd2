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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// OperandKind indicates where the operand of an instruction is to be found.
type OperandKind int

// List of operand kinds.
const (
	// the instruction has no operand. implied and relative instructions
	// resolve to OperandNone and OperandAddress respectively
	OperandNone OperandKind = iota

	// the operand is the accumulator
	OperandAccumulator

	// the operand is in memory at the resolved address
	OperandAddress
)

// Operand is the result of resolving the addressing mode of an instruction.
type Operand struct {
	Kind    OperandKind
	Address uint16

	// whether indexing crossed a page boundary. for relative addressing, this
	// is whether the branch target is on a different page to the instruction
	// following the branch
	PageCrossed bool

	// any known CPU bug triggered while resolving the address
	Bug execution.Bug
}

// Resolve the effective operand for the addressing mode. The operandAddress
// argument is the address of the first byte following the opcode.
//
// Immediate mode resolves to the address of the literal value. Relative mode
// resolves to the branch target.
//
// Resolve reads memory but does not change the state of the CPU.
func (mc *CPU) Resolve(mode instructions.AddressingMode, operandAddress uint16) Operand {
	switch mode {
	case instructions.Implied:
		return Operand{Kind: OperandNone}

	case instructions.Accumulator:
		return Operand{Kind: OperandAccumulator}

	case instructions.Immediate:
		return Operand{Kind: OperandAddress, Address: operandAddress}

	case instructions.Relative:
		// the offset is relative to the address of the next instruction
		next := operandAddress + 1
		offset := int8(mc.mem.Read(operandAddress))
		target := next + uint16(offset)
		return Operand{
			Kind:        OperandAddress,
			Address:     target,
			PageCrossed: next&0xff00 != target&0xff00,
		}

	case instructions.Absolute:
		return Operand{Kind: OperandAddress, Address: mc.read16(operandAddress)}

	case instructions.ZeroPage:
		return Operand{Kind: OperandAddress, Address: uint16(mc.mem.Read(operandAddress))}

	case instructions.ZeroPageIndexedX:
		return mc.zeroPageIndexed(operandAddress, mc.X.Value())

	case instructions.ZeroPageIndexedY:
		return mc.zeroPageIndexed(operandAddress, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		return absoluteIndexed(mc.read16(operandAddress), mc.X.Address())

	case instructions.AbsoluteIndexedY:
		return absoluteIndexed(mc.read16(operandAddress), mc.Y.Address())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		indirectAddress := mc.read16(operandAddress)

		// handle indirect addressing JMP bug
		if indirectAddress&0x00ff == 0x00ff {
			// in this bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			lo := mc.mem.Read(indirectAddress)
			hi := mc.mem.Read(indirectAddress & 0xff00)
			return Operand{
				Kind:    OperandAddress,
				Address: uint16(hi)<<8 | uint16(lo),
				Bug:     execution.JmpIndirectAddressingBug,
			}
		}

		return Operand{Kind: OperandAddress, Address: mc.read16(indirectAddress)}

	case instructions.IndexedIndirect: // x indexing
		zp := mc.mem.Read(operandAddress)

		// using 8bit addition because the indexed pointer never extends past
		// the first page
		ptr := zp + mc.X.Value()

		var bug execution.Bug
		if uint16(zp)+mc.X.Address() > 0xff || ptr == 0xff {
			bug = execution.ZeroPageIndexBug
		}

		return Operand{Kind: OperandAddress, Address: mc.read16ZeroPage(ptr), Bug: bug}

	case instructions.IndirectIndexed: // y indexing
		zp := mc.mem.Read(operandAddress)

		var bug execution.Bug
		if zp == 0xff {
			bug = execution.ZeroPageIndexBug
		}

		op := absoluteIndexed(mc.read16ZeroPage(zp), mc.Y.Address())
		op.Bug = bug
		return op
	}

	return Operand{Kind: OperandNone}
}

// indexing in the zero page wraps around to the start of the zero page.
func (mc *CPU) zeroPageIndexed(operandAddress uint16, index uint8) Operand {
	base := mc.mem.Read(operandAddress)
	op := Operand{
		Kind:    OperandAddress,
		Address: uint16(base + index),
	}

	// make a note of zero page index bug
	if uint16(base)+uint16(index) > 0xff {
		op.Bug = execution.ZeroPageIndexBug
	}

	return op
}

// indexing of a 16 bit address wraps at the end of memory.
func absoluteIndexed(base uint16, index uint16) Operand {
	address := base + index
	return Operand{
		Kind:        OperandAddress,
		Address:     address,
		PageCrossed: base&0xff00 != address&0xff00,
	}
}

// read16 reads a little-endian word. the address of the high byte wraps at
// the end of memory.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16ZeroPage reads a little-endian word from the zero page. the address of
// the high byte wraps within the zero page.
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}
