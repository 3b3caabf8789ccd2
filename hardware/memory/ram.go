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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// Size of the address space.
const Size = 0x10000

// Sentinal error patterns.
const (
	MountOverflow = "memory: image of %d bytes at %#04x does not fit in address space"
)

// RAM is the entire 64KB address space of the CPU.
type RAM struct {
	memory [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	ram.Dump(&s, 0x0000, 0x00ff)
	return strings.TrimSuffix(s.String(), "\n")
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Read16 reads a little-endian word from memory. If the address is 0xffff the
// high byte is read from 0x0000.
func (ram *RAM) Read16(address uint16) uint16 {
	lo := ram.memory[address]
	hi := ram.memory[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian word to memory. If the address is 0xffff the
// high byte is written to 0x0000.
func (ram *RAM) Write16(address uint16, data uint16) {
	ram.memory[address] = uint8(data)
	ram.memory[address+1] = uint8(data >> 8)
}

// Peek is the same as Read() but is intended for use by the debugger and
// other tools that inspect memory.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke is the same as Write() but is intended for use by the debugger and
// other tools that alter memory.
func (ram *RAM) Poke(address uint16, data uint8) {
	ram.memory[address] = data
}

// Mount copies data into memory starting at the origin address. Memory is
// left unchanged if the data will not fit in the address space.
func (ram *RAM) Mount(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(MountOverflow, len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// Clear sets every address to zero.
func (ram *RAM) Clear() {
	clear(ram.memory[:])
}

// Dump writes the inclusive range of memory to the io.Writer. Each line
// contains sixteen bytes and is prefixed by the address of the first byte.
// Lines are aligned to sixteen byte boundaries.
func (ram *RAM) Dump(w io.Writer, from uint16, to uint16) {
	if to < from {
		from, to = to, from
	}

	s := strings.Builder{}
	for line := int(from) &^ 0x0f; line <= int(to); line += 16 {
		s.WriteString(fmt.Sprintf("%04x |", line))
		for x := 0; x < 16; x++ {
			a := line + x
			if a < int(from) || a > int(to) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", ram.memory[a]))
			}
		}
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}
