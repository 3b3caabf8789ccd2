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

// Package instructions defines the 256 entry table of 6502 instruction
// definitions. Each definition describes the operator, the addressing mode,
// the number of bytes and the base number of cycles of an opcode.
//
// Opcodes that are not part of the official 6502 instruction set have an
// Undefined operator and a byte and cycle count of zero. Executing an
// undefined opcode is an error.
package instructions
