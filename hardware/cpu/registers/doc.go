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

// Package registers implements the 6502 registers: the 8 bit data registers
// (A, X and Y), the 16 bit program counter, the stack pointer and the status
// register.
//
// The Register type provides the arithmetic and logic operations the CPU needs
// for its data registers. Results are returned as carry and overflow values;
// it is up to the caller to update the status register.
//
//	carry, overflow := mc.A.Add(v, mc.Status.Carry)
//	mc.Status.Carry = carry
//	mc.Status.Overflow = overflow
//
// Decimal mode arithmetic follows the NMOS 6502. See AddDecimal() and
// SubtractDecimal() for details.
package registers
