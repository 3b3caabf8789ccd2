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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU step.
type Result struct {
	// the address at which the instruction began. for an interrupt sequence
	// this is the value of the PC when the sequence began
	Address uint16

	// the opcode read from Address and its definition. Defn is nil if the
	// result is for an interrupt sequence
	Opcode uint8
	Defn   *instructions.Definition

	// the operand bytes following the opcode, little-endian. so, for example,
	// in the case of a branch instruction, it is the offset value
	InstructionData uint16

	// the number of bytes read during instruction decode. should equal
	// Defn.Bytes once the result is final
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction was taken
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether a push or pull caused the stack pointer to wrap around
	StackWrapped bool

	// the resolved address of the operand, if the addressing mode has one
	EffectiveAddress uint16

	// the interrupt sequence performed instead of an instruction
	Interrupt Interrupt

	// whether this data has been finalised. the values of the other fields in
	// this struct may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("0x%04x <%s> [%d cycles]", r.Address, r.Interrupt, r.Cycles)
	}

	if r.Defn == nil || !r.Defn.Defined() {
		return fmt.Sprintf("0x%04x ??? (%02x)", r.Address, r.Opcode)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x %s", r.Address, r.Defn.Operator))

	if operand := r.operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	s.WriteString(fmt.Sprintf(" [%d cycles]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.Defn.IsBranch() && r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" *%s*", r.CPUBug))
	}
	if r.StackWrapped {
		s.WriteString(" stack-wrap")
	}

	return s.String()
}

// operand in the conventional assembler notation for the addressing mode.
func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.EffectiveAddress)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	}
	return ""
}
