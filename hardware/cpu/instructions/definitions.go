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

package instructions

// definitions for all official opcodes. opcodes missing from the table are
// left as the zero value of Definition, which is the undefined definition.
var table = [256]Definition{
	0x00: {Operator: BRK, Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	0x01: {Operator: ORA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x05: {Operator: ORA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x06: {Operator: ASL, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x08: {Operator: PHP, Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Write},
	0x09: {Operator: ORA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x0a: {Operator: ASL, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x0d: {Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x0e: {Operator: ASL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x10: {Operator: BPL, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x11: {Operator: ORA, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x15: {Operator: ORA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x16: {Operator: ASL, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x18: {Operator: CLC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x19: {Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x1d: {Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x1e: {Operator: ASL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x20: {Operator: JSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	0x21: {Operator: AND, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x24: {Operator: BIT, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x25: {Operator: AND, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x26: {Operator: ROL, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x28: {Operator: PLP, Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	0x29: {Operator: AND, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x2a: {Operator: ROL, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x2c: {Operator: BIT, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x2d: {Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x2e: {Operator: ROL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x30: {Operator: BMI, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x31: {Operator: AND, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x35: {Operator: AND, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x36: {Operator: ROL, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x38: {Operator: SEC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x39: {Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x3d: {Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3e: {Operator: ROL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x40: {Operator: RTI, Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	0x41: {Operator: EOR, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x45: {Operator: EOR, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x46: {Operator: LSR, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x48: {Operator: PHA, Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Write},
	0x49: {Operator: EOR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x4a: {Operator: LSR, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x4c: {Operator: JMP, Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	0x4d: {Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x4e: {Operator: LSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x50: {Operator: BVC, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x51: {Operator: EOR, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x55: {Operator: EOR, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x56: {Operator: LSR, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x58: {Operator: CLI, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x59: {Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x5d: {Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x5e: {Operator: LSR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x60: {Operator: RTS, Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	0x61: {Operator: ADC, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x65: {Operator: ADC, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x66: {Operator: ROR, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x68: {Operator: PLA, Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	0x69: {Operator: ADC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x6a: {Operator: ROR, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x6c: {Operator: JMP, Bytes: 3, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	0x6d: {Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x6e: {Operator: ROR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x70: {Operator: BVS, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x71: {Operator: ADC, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x75: {Operator: ADC, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x76: {Operator: ROR, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x78: {Operator: SEI, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x79: {Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x7d: {Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x7e: {Operator: ROR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x81: {Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	0x84: {Operator: STY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x85: {Operator: STA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x86: {Operator: STX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x88: {Operator: DEY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x8a: {Operator: TXA, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x8c: {Operator: STY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8d: {Operator: STA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8e: {Operator: STX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x90: {Operator: BCC, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x91: {Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	0x94: {Operator: STY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x95: {Operator: STA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x96: {Operator: STX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	0x98: {Operator: TYA, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x99: {Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	0x9a: {Operator: TXS, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x9d: {Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	0xa0: {Operator: LDY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xa1: {Operator: LDA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xa2: {Operator: LDX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xa4: {Operator: LDY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xa5: {Operator: LDA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xa6: {Operator: LDX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xa8: {Operator: TAY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xa9: {Operator: LDA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xaa: {Operator: TAX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xac: {Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xad: {Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xae: {Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xb0: {Operator: BCS, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xb1: {Operator: LDA, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xb4: {Operator: LDY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xb5: {Operator: LDA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xb6: {Operator: LDX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	0xb8: {Operator: CLV, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xb9: {Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xba: {Operator: TSX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xbc: {Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbd: {Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbe: {Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xc0: {Operator: CPY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xc1: {Operator: CMP, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xc4: {Operator: CPY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xc5: {Operator: CMP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xc6: {Operator: DEC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xc8: {Operator: INY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xc9: {Operator: CMP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xca: {Operator: DEX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xcc: {Operator: CPY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xcd: {Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xce: {Operator: DEC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xd0: {Operator: BNE, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xd1: {Operator: CMP, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xd5: {Operator: CMP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xd6: {Operator: DEC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xd8: {Operator: CLD, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xd9: {Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xdd: {Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xde: {Operator: DEC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0xe0: {Operator: CPX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xe1: {Operator: SBC, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xe4: {Operator: CPX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xe5: {Operator: SBC, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xe6: {Operator: INC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xe8: {Operator: INX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xe9: {Operator: SBC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xea: {Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xec: {Operator: CPX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xed: {Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xee: {Operator: INC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xf0: {Operator: BEQ, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xf1: {Operator: SBC, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xf5: {Operator: SBC, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xf6: {Operator: INC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xf8: {Operator: SED, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xf9: {Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xfd: {Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xfe: {Operator: INC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
}

// the slice returned by GetDefinitions(). the table is never altered after
// initialisation.
var definitions []*Definition

func init() {
	definitions = make([]*Definition, len(table))
	for i := range table {
		table[i].OpCode = uint8(i)
		definitions[i] = &table[i]
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The returned definitions must not be altered.
func GetDefinitions() []*Definition {
	return definitions
}
