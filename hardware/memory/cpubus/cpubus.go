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

// Package cpubus defines the interface the CPU uses to access memory, along
// with the addresses in the memory map that have special meaning to the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Reading and writing is total: every address in the 16 bit address
// space can be read from and written to.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
