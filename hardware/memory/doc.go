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

// Package memory implements the flat 64KB memory used by the CPU. The RAM type
// satisfies the cpubus.Memory interface and provides additional functions for
// loading program images and for inspection by the debugger.
//
// Memory is zero filled when created. Loading a program image is done with
// the Mount() function:
//
//	mem := memory.NewRAM()
//	err := mem.Mount(0x8000, image)
//
// Mount() fails without writing anything if the image would extend beyond the
// end of the address space.
package memory
