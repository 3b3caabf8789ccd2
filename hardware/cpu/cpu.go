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
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinal error patterns.
const (
	UndefinedOpcode = "cpu: undefined opcode (%#02x) at %#04x"
	Halted          = "cpu: halted at %#04x (reset required)"
)

// CPU implements the MOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// last result. contains information about the most recent instruction or
	// interrupt sequence. see the execution package for details
	LastResult execution.Result

	// the cpu has encountered an undefined opcode. requires a Reset()
	halted bool

	// interrupt lines. an NMI is pending if the NMI() function has been called
	// or the NMI line has moved from inactive to active
	nmiPending bool
	nmiLine    bool
	irqLine    bool

	// state of interrupt controller
	state State
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU is not reset to a usable state by this function. Registers are
// all zero and the PC should be set before calling Step(), either with Reset()
// or directly with PC.Load().
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original and must not be stepped.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Step executes the next instruction or interrupt sequence and returns the
// number of cycles consumed.
//
// If the opcode at the PC is undefined an error is returned, the PC is left
// unchanged and the CPU is halted.
func (mc *CPU) Step() (int, error) {
	if mc.halted {
		return 0, curated.Errorf(Halted, mc.PC.Address())
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.serviceInterrupt() {
		return mc.LastResult.Cycles, nil
	}

	mc.state = Running

	// read next instruction
	opcode := mc.mem.Read(mc.PC.Address())
	defn := mc.instructions[opcode]
	mc.LastResult.Opcode = opcode
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	if !defn.Defined() {
		mc.halted = true
		mc.LastResult.Final = true
		logger.Logf(logger.Allow, "CPU", "undefined opcode (%#02x) at %#04x", opcode, mc.PC.Address())
		return 0, curated.Errorf(UndefinedOpcode, opcode, mc.PC.Address())
	}

	operandAddress := mc.PC.Address() + 1

	// instruction data is the actual instruction data. so, for example, in
	// the case of a branch instruction, it is the offset value
	switch defn.AddressingMode.Bytes() {
	case 1:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(operandAddress))
	case 2:
		mc.LastResult.InstructionData = mc.read16(operandAddress)
	}
	mc.LastResult.ByteCount = defn.Bytes

	operand := mc.Resolve(defn.AddressingMode, operandAddress)
	if operand.Kind == OperandAddress {
		mc.LastResult.EffectiveAddress = operand.Address
	}
	mc.LastResult.CPUBug = operand.Bug

	// the PC points to the next instruction before the instruction is
	// executed. flow control instructions will change the PC as required
	mc.PC.Add(uint16(defn.Bytes))

	mc.LastResult.Cycles = defn.Cycles
	if defn.PageSensitive && operand.PageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.execute(defn, operand)

	mc.LastResult.Final = true

	return mc.LastResult.Cycles, nil
}

// execute the instruction using the resolved operand. the PC has already been
// advanced past the instruction.
func (mc *CPU) execute(defn *instructions.Definition, operand Operand) {
	address := operand.Address

	// value is read from memory only when the instruction is a Read or RMW
	// instruction. for accumulator addressing, the value is the accumulator.
	// note that for instructions which are read-modify-write, the value will
	// change during execution and be written back to memory
	var value uint8

	switch operand.Kind {
	case OperandAccumulator:
		value = mc.A.Value()
	case OperandAddress:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.NOP:
		// does nothing

	case instructions.CLI:
		mc.Status.InterruptDisable = false

	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.CLC:
		mc.Status.Carry = false

	case instructions.SEC:
		mc.Status.Carry = true

	case instructions.CLD:
		mc.Status.DecimalMode = false

	case instructions.SED:
		mc.Status.DecimalMode = true

	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.PHA:
		mc.push(mc.A.Value())

	case instructions.PLA:
		mc.A.Load(mc.pull())
		mc.setZeroSign(mc.A)

	case instructions.PHP:
		// the break flag is always set in the pushed value
		mc.push(mc.Status.Value() | registers.StatusBreak)

	case instructions.PLP:
		mc.Status.Load(mc.pull())

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZeroSign(mc.A)

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZeroSign(mc.X)

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZeroSign(mc.Y)

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZeroSign(mc.A)

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZeroSign(mc.X)

	case instructions.TXS:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.EOR:
		mc.A.EOR(value)
		mc.setZeroSign(mc.A)

	case instructions.ORA:
		mc.A.ORA(value)
		mc.setZeroSign(mc.A)

	case instructions.AND:
		mc.A.AND(value)
		mc.setZeroSign(mc.A)

	case instructions.LDA:
		mc.A.Load(value)
		mc.setZeroSign(mc.A)

	case instructions.LDX:
		mc.X.Load(value)
		mc.setZeroSign(mc.X)

	case instructions.LDY:
		mc.Y.Load(value)
		mc.setZeroSign(mc.Y)

	case instructions.STA:
		mc.mem.Write(address, mc.A.Value())

	case instructions.STX:
		mc.mem.Write(address, mc.X.Value())

	case instructions.STY:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.INX:
		mc.X.Add(1, false)
		mc.setZeroSign(mc.X)

	case instructions.INY:
		mc.Y.Add(1, false)
		mc.setZeroSign(mc.Y)

	case instructions.DEX:
		mc.X.Add(0xff, false)
		mc.setZeroSign(mc.X)

	case instructions.DEY:
		mc.Y.Add(0xff, false)
		mc.setZeroSign(mc.Y)

	case instructions.ASL:
		mc.modify(operand, value, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})

	case instructions.LSR:
		mc.modify(operand, value, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})

	case instructions.ROL:
		mc.modify(operand, value, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})

	case instructions.ROR:
		mc.modify(operand, value, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})

	case instructions.INC:
		mc.modify(operand, value, func(r *registers.Register) {
			r.Add(1, false)
		})

	case instructions.DEC:
		mc.modify(operand, value, func(r *registers.Register) {
			r.Add(0xff, false)
		})

	case instructions.ADC:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.setZeroSign(mc.A)
		}

	case instructions.SBC:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.setZeroSign(mc.A)
		}

	case instructions.CMP:
		mc.compare(mc.A, value)

	case instructions.CPX:
		mc.compare(mc.X, value)

	case instructions.CPY:
		mc.compare(mc.Y, value)

	case instructions.BIT:
		r := mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.JMP:
		mc.PC.Load(address)

	case instructions.BCC:
		mc.branch(!mc.Status.Carry, operand)

	case instructions.BCS:
		mc.branch(mc.Status.Carry, operand)

	case instructions.BEQ:
		mc.branch(mc.Status.Zero, operand)

	case instructions.BMI:
		mc.branch(mc.Status.Sign, operand)

	case instructions.BNE:
		mc.branch(!mc.Status.Zero, operand)

	case instructions.BPL:
		mc.branch(!mc.Status.Sign, operand)

	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, operand)

	case instructions.BVS:
		mc.branch(mc.Status.Overflow, operand)

	case instructions.JSR:
		// the pushed address is the address of the last byte of the JSR
		// instruction. RTS adds one to the pulled address to compensate
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.RTS:
		mc.PC.Load(mc.pull16())
		mc.PC.Add(1)

	case instructions.BRK:
		// BRK is unusual in that it pushes the address of the opcode plus two
		// despite being a single byte instruction. the byte after the BRK is
		// the "signature" byte and is skipped on return
		mc.push16(mc.PC.Address() + 1)

		// the break flag is always set in the pushed value
		mc.push(mc.Status.Value() | registers.StatusBreak)
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16(cpubus.BRK))

	case instructions.RTI:
		mc.Status.Load(mc.pull())
		mc.PC.Load(mc.pull16())
	}
}

// setZeroSign sets the zero and sign flags according to the value in the
// register.
func (mc *CPU) setZeroSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// modify performs a read-modify-write operation on either the accumulator or
// memory, depending on the operand. the zero and sign flags are set according
// to the result.
func (mc *CPU) modify(operand Operand, value uint8, f func(r *registers.Register)) {
	var r *registers.Register
	if operand.Kind == OperandAccumulator {
		r = &mc.A
	} else {
		r = &mc.acc8
		r.Load(value)
	}

	f(r)
	mc.setZeroSign(*r)

	if operand.Kind == OperandAddress {
		mc.mem.Write(operand.Address, r.Value())
	}
}

// compare implements CMP, CPX and CPY. the comparison is a binary subtraction
// even if decimal mode is active (the meaning is the same).
func (mc *CPU) compare(reg registers.Register, value uint8) {
	r := mc.acc8
	r.Load(reg.Value())
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.setZeroSign(r)
}

// branch to the resolved operand address if the condition is true. a taken
// branch costs one extra cycle and a further cycle if the branch target is on
// a different page to the next instruction.
func (mc *CPU) branch(flag bool, operand Operand) {
	// note branching result
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	mc.LastResult.Cycles++
	if operand.PageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(operand.Address)
}
