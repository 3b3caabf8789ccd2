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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.Read(address), value, "memory %#04x", address)
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// newCPU returns a CPU that has been reset with an empty reset vector. the PC
// will be zero and the stack pointer initialised to the top of the stack.
func newCPU(mem *mockMem) *cpu.CPU {
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xff)
	mc.Reset()
	return mc
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	cycles, err := mc.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)
	return mc.LastResult
}

func TestStatusInstructions(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// interrupt flag is set after reset
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	mc.Status.Overflow = true
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	_ = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)

	// break flag and the unused bit are set in the pushed value
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register. the break flag is restored too
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")
}

func TestRegisterArithmetic(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// LDA immediate; CLC; ADC immediate
	_ = mem.putInstructions(origin, 0xa9, 0x50, 0x18, 0x69, 0x50)
	step(t, mc) // LDA #$50
	step(t, mc) // CLC
	step(t, mc) // ADC #$50
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Zero, false)
}

func TestRegisterBitwiseInstructions(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), 0)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 255)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 15)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 1)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 2)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	_ = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 128)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 64)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func TestImmediateImplied(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), 6)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), 5)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), 254)
	step(t, mc) // LDA #0
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 5)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	origin = mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 2)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), 3)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 2)

	// TSX; LDX immediate; TXS
	_ = mem.putInstructions(origin, 0xba, 0xa2, 100, 0x9a)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 255)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 100)

	// TXS does not affect the status register
	test.ExpectEquality(t, mc.Status.Sign, false)
}

func TestOtherAddressingModes(t *testing.T) {
	var r execution.Result
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	mem.putInstructions(0x0100, 123, 43)
	mem.putInstructions(0x01a2, 47)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x00)
	step(t, mc) // LDA $00
	test.ExpectEquality(t, mc.A.Value(), 0xa5)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x01)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $01,X
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// LDY immediate; LDX zero page,Y
	origin = mem.putInstructions(origin, 0xa0, 3, 0xb6, 0x01)
	step(t, mc) // LDY #3
	step(t, mc) // LDX $01,Y
	test.ExpectEquality(t, mc.X.Value(), 0xb5)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01)
	step(t, mc) // LDA $0100
	test.ExpectEquality(t, mc.A.Value(), 123)

	// LDX immediate; LDA absolute,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0x01, 0x00)
	step(t, mc) // LDX #1
	test.ExpectEquality(t, mc.X.Value(), 1)
	r = step(t, mc) // LDA $0001,X
	test.ExpectEquality(t, mc.A.Value(), 0xa2)
	test.ExpectEquality(t, r.Cycles, 4)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 1, 0xb9, 0x01, 0x00)
	step(t, mc) // LDY #1
	test.ExpectEquality(t, mc.Y.Value(), 1)
	step(t, mc) // LDA $0001,Y
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// pre-indexed indirect
	// X = 1
	// INX; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0x0b)
	step(t, mc)     // INX (x equals 2)
	r = step(t, mc) // LDA (0x0b,X)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
	test.ExpectEquality(t, r.EffectiveAddress, 0x01a2)
	test.ExpectEquality(t, mc.A.Value(), 47)

	// pre-indexed indirect (with wraparound)
	// X = 2
	// INX; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0xff)
	step(t, mc)     // INX (x equals 3)
	r = step(t, mc) // LDA (0xff,X)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)
	test.ExpectEquality(t, mc.A.Value(), 47)

	// post-indexed indirect (with page-fault)
	// Y = 1
	// INY; INY; LDA (Indirect), Y
	mem.putInstructions(0xc0, 0xfd, 0x00)
	_ = mem.putInstructions(origin, 0xc8, 0xc8, 0xb1, 0xc0)
	step(t, mc)     // INY (y = 2)
	step(t, mc)     // INY (y = 3)
	r = step(t, mc) // LDA (0xc0),Y
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 6)
}

func TestStorageInstructions(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// LDA immediate; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x01)
	step(t, mc) // LDA 0x54
	step(t, mc) // STA 0x0100
	mem.assert(t, 0x0100, 0x54)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x8e, 0x01, 0x01)
	step(t, mc) // LDX 0x63
	step(t, mc) // STX 0x0101
	mem.assert(t, 0x0101, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x8c, 0x02, 0x01)
	step(t, mc) // LDY 0x72
	step(t, mc) // STY 0x0102
	mem.assert(t, 0x0102, 0x72)

	// INC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x01)
	step(t, mc) // INC $01
	mem.assert(t, 0x01, 0x55)

	// DEC absolute
	origin = mem.putInstructions(origin, 0xce, 0x00, 0x01)
	step(t, mc) // DEC 0x0100
	mem.assert(t, 0x0100, 0x53)

	// ASL zero page
	origin = mem.putInstructions(origin, 0x06, 0x01)
	step(t, mc) // ASL $01
	mem.assert(t, 0x01, 0xaa)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// the accumulator is unaffected by a read-modify-write to memory
	test.ExpectEquality(t, mc.A.Value(), 0x54)

	// STA absolute,X is not page sensitive
	_ = mem.putInstructions(origin, 0xa2, 0x01, 0x9d, 0xff, 0x01)
	step(t, mc)      // LDX #$01
	r := step(t, mc) // STA $01ff,X
	mem.assert(t, 0x0200, 0x54)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestBranching(t *testing.T) {
	var r execution.Result
	var mem *mockMem
	var mc *cpu.CPU

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0x10, 0x10)
	r = step(t, mc) // BPL $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.Cycles, 3)

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0x50, 0x10)
	step(t, mc) // BVC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0x90, 0x10)
	step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0x38, 0xb0, 0x10)
	step(t, mc) // SEC
	step(t, mc) // BCS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0xe8, 0xd0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BNE $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0xca, 0x30, 0x10)
	step(t, mc) // DEX
	step(t, mc) // BMI $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem.putInstructions(0x13, 0xe8, 0xf0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BEQ $10
	test.ExpectEquality(t, mc.PC.Address(), 0x26)

	mem = newMockMem()
	mc = newCPU(mem)
	mc.Status.Overflow = true
	mem.putInstructions(0, 0x70, 0x10)
	step(t, mc) // BVS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	// branch not taken
	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0x80fd, 0xf0, 0x02)
	mc.PC.Load(0x80fd)
	r = step(t, mc) // BEQ $02
	test.ExpectEquality(t, mc.PC.Address(), 0x80ff)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 2)

	// branch taken across a page boundary
	mc.PC.Load(0x80fd)
	mc.Status.Zero = true
	r = step(t, mc) // BEQ $02
	test.ExpectEquality(t, mc.PC.Address(), 0x8101)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)

	// backwards branch
	mem.putInstructions(0x0210, 0xd0, 0xfc)
	mc.PC.Load(0x0210)
	mc.Status.Zero = false
	r = step(t, mc) // BNE $fc
	test.ExpectEquality(t, mc.PC.Address(), 0x020e)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 3)

	// backwards branch across a page boundary
	mem.putInstructions(0x0200, 0xd0, 0xf0)
	mc.PC.Load(0x0200)
	r = step(t, mc) // BNE $f0
	test.ExpectEquality(t, mc.PC.Address(), 0x01f2)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
}

func TestJumps(t *testing.T) {
	var r execution.Result
	var mem *mockMem
	var mc *cpu.CPU

	// JMP absolute
	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0, 0x4c, 0x00, 0x01)
	r = step(t, mc) // JMP $100
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)
	test.ExpectEquality(t, r.Cycles, 3)

	// JMP indirect
	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0x0050, 0x49, 0x01)
	mem.putInstructions(0, 0x6c, 0x50, 0x00)
	r = step(t, mc) // JMP ($50)
	test.ExpectEquality(t, mc.PC.Address(), 0x0149)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
	test.ExpectEquality(t, r.Cycles, 5)

	// JMP indirect (bug)
	mem = newMockMem()
	mc = newCPU(mem)
	mem.putInstructions(0x30ff, 0x40)
	mem.putInstructions(0x3000, 0x50)
	mem.putInstructions(0x3100, 0x99)
	mem.putInstructions(0, 0x6c, 0xff, 0x30)
	r = step(t, mc) // JMP ($30ff)
	test.ExpectEquality(t, mc.PC.Address(), 0x5040)
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestComparisonInstructions(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	// CMP immediate (equality)
	origin = mem.putInstructions(origin, 0xc9, 0x00)
	step(t, mc) // CMP $00
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc) // LDA $F6
	step(t, mc) // CMP $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")

	// LDX immediate; CPX immediate
	origin = mem.putInstructions(origin, 0xa2, 0xf6, 0xe0, 0x18)
	step(t, mc) // LDX $F6
	step(t, mc) // CPX $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")

	// LDY immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa0, 0xf6, 0xc0, 0x18)
	step(t, mc) // LDY $F6
	step(t, mc) // CPY $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0x18, 0xc9, 0xf6)
	step(t, mc) // LDA $18
	step(t, mc) // CMP $F6
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// BIT zero page
	origin = mem.putInstructions(origin, 0x24, 0x01)
	step(t, mc) // BIT $01
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")

	// BIT absolute
	mem.putInstructions(0x0200, 0xc0)
	_ = mem.putInstructions(origin, 0x2c, 0x00, 0x02)
	step(t, mc) // BIT $0200
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIZc")

	// comparison doesn't change the registers
	test.ExpectEquality(t, mc.A.Value(), 0x18)
}

func TestSubroutineInstructions(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(mem)

	// JSR absolute
	mem.putInstructions(0, 0x20, 0x00, 0x01)
	r := step(t, mc) // JSR $0100
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 253)

	mem.putInstructions(0x100, 0x60)
	r = step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.SP.Value(), 255)
}

func TestDecimalMode(t *testing.T) {
	var origin uint16
	mem := newMockMem()
	mc := newCPU(mem)

	origin = mem.putInstructions(origin, 0xf8, 0xa9, 0x20, 0x38, 0xe9, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$20
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x19)

	_ = mem.putInstructions(origin, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$09
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestString(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(mem)
	mc.A.Load(0x10)
	test.ExpectEquality(t, mc.String(), "PC=0x0000 A=0x10 X=0x00 Y=0x00 SP=0xff SR=nv-bdIzc")
}
