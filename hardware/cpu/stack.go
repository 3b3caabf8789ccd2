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

package cpu

// the stack is in page one of memory. stack overflow and underflow is not an
// error, the stack pointer wraps around within the page. any wrap is noted in
// LastResult.

func (mc *CPU) push(data uint8) {
	address, wrapped := mc.SP.Push()
	mc.mem.Write(address, data)
	mc.LastResult.StackWrapped = mc.LastResult.StackWrapped || wrapped
}

func (mc *CPU) pull() uint8 {
	address, wrapped := mc.SP.Pull()
	mc.LastResult.StackWrapped = mc.LastResult.StackWrapped || wrapped
	return mc.mem.Read(address)
}

// push16 pushes the high byte first so that the word is stored little-endian
// in memory.
func (mc *CPU) push16(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}
