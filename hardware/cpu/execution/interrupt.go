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

package execution

// Interrupt records the interrupt sequence (if any) performed by the CPU
// instead of an instruction.
type Interrupt int

// List of interrupt sequences. BRK is an instruction and is not listed here.
const (
	NoInterrupt Interrupt = iota
	Reset
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NoInterrupt:
		return ""
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown interrupt"
}
