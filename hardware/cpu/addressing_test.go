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
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestResolveZeroPage(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0201, 0xff)
	mc.X.Load(0x02)
	mc.Y.Load(0x03)

	op := mc.Resolve(instructions.ZeroPage, 0x0201)
	test.ExpectEquality(t, op.Kind, cpu.OperandAddress)
	test.ExpectEquality(t, op.Address, 0x00ff)

	// indexing wraps within the zero page
	op = mc.Resolve(instructions.ZeroPageIndexedX, 0x0201)
	test.ExpectEquality(t, op.Address, 0x0001)
	test.ExpectEquality(t, op.Bug, execution.ZeroPageIndexBug)
	test.ExpectEquality(t, op.PageCrossed, false)

	op = mc.Resolve(instructions.ZeroPageIndexedY, 0x0201)
	test.ExpectEquality(t, op.Address, 0x0002)

	// no wrap
	mem.Write(0x0201, 0x10)
	op = mc.Resolve(instructions.ZeroPageIndexedX, 0x0201)
	test.ExpectEquality(t, op.Address, 0x0012)
	test.ExpectEquality(t, op.Bug, execution.NoBug)
}

func TestResolveAbsolute(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	mem.Write16(0x0300, 0x12f0)
	mc.X.Load(0x0f)
	mc.Y.Load(0x10)

	op := mc.Resolve(instructions.Absolute, 0x0300)
	test.ExpectEquality(t, op.Address, 0x12f0)

	op = mc.Resolve(instructions.AbsoluteIndexedX, 0x0300)
	test.ExpectEquality(t, op.Address, 0x12ff)
	test.ExpectEquality(t, op.PageCrossed, false)

	op = mc.Resolve(instructions.AbsoluteIndexedY, 0x0300)
	test.ExpectEquality(t, op.Address, 0x1300)
	test.ExpectEquality(t, op.PageCrossed, true)

	// indexing wraps at the end of memory
	mem.Write16(0x0300, 0xfff8)
	op = mc.Resolve(instructions.AbsoluteIndexedY, 0x0300)
	test.ExpectEquality(t, op.Address, 0x0008)
	test.ExpectEquality(t, op.PageCrossed, true)
}

func TestResolveIndirect(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	// JMP ($30ff) reads the high byte from $3000 and not $3100
	mem.Write16(0x0400, 0x30ff)
	mem.Write(0x30ff, 0x40)
	mem.Write(0x3000, 0x50)
	mem.Write(0x3100, 0x99)
	op := mc.Resolve(instructions.Indirect, 0x0400)
	test.ExpectEquality(t, op.Address, 0x5040)
	test.ExpectEquality(t, op.Bug, execution.JmpIndirectAddressingBug)

	mem.Write16(0x0400, 0x3080)
	mem.Write16(0x3080, 0xabcd)
	op = mc.Resolve(instructions.Indirect, 0x0400)
	test.ExpectEquality(t, op.Address, 0xabcd)
	test.ExpectEquality(t, op.Bug, execution.NoBug)
}

func TestResolveIndexedIndirect(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0500, 0xfe)
	mc.X.Load(0x01)

	// pointer is at $ff. the high byte of the pointer is read from $00
	mem.Write(0x00ff, 0x34)
	mem.Write(0x0000, 0x12)
	mem.Write(0x0100, 0x99)
	op := mc.Resolve(instructions.IndexedIndirect, 0x0500)
	test.ExpectEquality(t, op.Address, 0x1234)
	test.ExpectEquality(t, op.Bug, execution.ZeroPageIndexBug)

	// pointer wraps to $02
	mc.X.Load(0x04)
	mem.Write16(0x0002, 0x5678)
	op = mc.Resolve(instructions.IndexedIndirect, 0x0500)
	test.ExpectEquality(t, op.Address, 0x5678)
	test.ExpectEquality(t, op.PageCrossed, false)
}

func TestResolveIndirectIndexed(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0600, 0x20)
	mem.Write16(0x0020, 0x20ff)
	mc.Y.Load(0x01)

	op := mc.Resolve(instructions.IndirectIndexed, 0x0600)
	test.ExpectEquality(t, op.Address, 0x2100)
	test.ExpectEquality(t, op.PageCrossed, true)

	mc.Y.Load(0x00)
	op = mc.Resolve(instructions.IndirectIndexed, 0x0600)
	test.ExpectEquality(t, op.Address, 0x20ff)
	test.ExpectEquality(t, op.PageCrossed, false)

	// zero page pointer at $ff takes its high byte from $00
	mem.Write(0x0600, 0xff)
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x70)
	op = mc.Resolve(instructions.IndirectIndexed, 0x0600)
	test.ExpectEquality(t, op.Address, 0x7000)
	test.ExpectEquality(t, op.Bug, execution.ZeroPageIndexBug)
}

func TestResolveOther(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	op := mc.Resolve(instructions.Implied, 0x0700)
	test.ExpectEquality(t, op.Kind, cpu.OperandNone)

	op = mc.Resolve(instructions.Accumulator, 0x0700)
	test.ExpectEquality(t, op.Kind, cpu.OperandAccumulator)

	// immediate mode resolves to the address of the literal value
	op = mc.Resolve(instructions.Immediate, 0x0700)
	test.ExpectEquality(t, op.Kind, cpu.OperandAddress)
	test.ExpectEquality(t, op.Address, 0x0700)

	// relative mode resolves to the branch target
	mem.Write(0x0700, 0x7f)
	op = mc.Resolve(instructions.Relative, 0x0700)
	test.ExpectEquality(t, op.Address, 0x0780)
	test.ExpectEquality(t, op.PageCrossed, false)

	mem.Write(0x0700, 0x80)
	op = mc.Resolve(instructions.Relative, 0x0700)
	test.ExpectEquality(t, op.Address, 0x0681)
	test.ExpectEquality(t, op.PageCrossed, true)

	op = mc.Resolve(instructions.UndefinedMode, 0x0700)
	test.ExpectEquality(t, op.Kind, cpu.OperandNone)

	// resolving an address does not change the state of the CPU
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)
	test.ExpectEquality(t, mc.LastResult.Final, false)
}
