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

package registers

// the decimal mode algorithms are those described by Bruce Clark in "Decimal
// Mode" (appendix A) for the NMOS 6502. values that aren't valid BCD produce
// the same results as the real chip.

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry, zero, overflow and sign bits.
//
// The zero flag is set according to the binary result. The sign and overflow
// flags are taken after the low nibble has been adjusted but before the high
// nibble has been adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	zero = uint8(a+b+c) == 0x00

	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	s := (a & 0xf0) + (b & 0xf0) + al
	sign = s&0x80 == 0x80
	overflow = ^(a^b)&(a^s)&0x80 != 0

	if s >= 0xa0 {
		s += 0x60
	}
	rcarry = s >= 0x100

	r.value = uint8(s)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry, zero, overflow and sign bits.
//
// On the NMOS 6502 all flags are set as though the subtraction was binary.
// Only the value in the register is adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	// flags come from the binary operation
	bin := NewAnonRegister(r.value)
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	s := (a & 0xf0) - (b & 0xf0) + al
	if s < 0 {
		s -= 0x60
	}

	r.value = uint8(s & 0xff)

	return rcarry, zero, overflow, sign
}
