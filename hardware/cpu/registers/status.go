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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions of the flags in the packed value.
const (
	StatusSign             = uint8(0x80)
	StatusOverflow         = uint8(0x40)
	StatusUnused           = uint8(0x20)
	StatusBreak            = uint8(0x10)
	StatusDecimalMode      = uint8(0x08)
	StatusInterruptDisable = uint8(0x04)
	StatusZero             = uint8(0x02)
	StatusCarry            = uint8(0x01)
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in the order of the packed value. Set flags are
// upper case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 'a' - 'A')
		}
	}

	flag(sr.Sign, 'N')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status register to the power on state.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= StatusSign
	}
	if sr.Overflow {
		v |= StatusOverflow
	}
	if sr.Break {
		v |= StatusBreak
	}
	if sr.DecimalMode {
		v |= StatusDecimalMode
	}
	if sr.InterruptDisable {
		v |= StatusInterruptDisable
	}
	if sr.Zero {
		v |= StatusZero
	}
	if sr.Carry {
		v |= StatusCarry
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= StatusUnused

	return v
}

// Load converts an 8 bit value (taken from the stack, for example) to the
// StatusRegister struct.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&StatusSign == StatusSign
	sr.Overflow = v&StatusOverflow == StatusOverflow
	sr.Break = v&StatusBreak == StatusBreak
	sr.DecimalMode = v&StatusDecimalMode == StatusDecimalMode
	sr.InterruptDisable = v&StatusInterruptDisable == StatusInterruptDisable
	sr.Zero = v&StatusZero == StatusZero
	sr.Carry = v&StatusCarry == StatusCarry
}
