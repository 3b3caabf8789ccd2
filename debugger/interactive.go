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


package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// KeyReader is the source of key presses for Interactive().
type KeyReader interface {
	ReadKey() (rune, error)
}

// KeyReaders that also implement Width() will have the ruler printed between
// steps sized to fit.
type widther interface {
	Width() int
}

// the width of the ruler if the KeyReader does not implement widther.
const defaultWidth = 40

// the help line printed at the start of an interactive session.
const interactiveHelp = "space/enter: step  r: reset  n: NMI  i: IRQ line  m: memory  q: quit"

// Interactive steps through the program one instruction at a time. Each key
// press read from the KeyReader is a command:
//
//	space, enter	step one instruction
//	r		reset the CPU
//	n		raise an NMI
//	i		toggle the IRQ line
//	m		dump the memory page containing the PC
//	q		quit
//
// Unrecognised keys are ignored. The session ends with a nil error when q is
// pressed or when the KeyReader returns an error (including io.EOF).
//
// An error from the CPU does not end the session. The error is printed and
// the user is expected to reset the CPU.
func (dbg *Debugger) Interactive(keys KeyReader) error {
	width := defaultWidth
	if w, ok := keys.(widther); ok && w.Width() > 0 {
		width = w.Width()
	}
	ruler := strings.Repeat("-", width)

	fmt.Fprintln(dbg.out, interactiveHelp)
	fmt.Fprintln(dbg.out, dbg.Registers())

	for {
		key, err := keys.ReadKey()
		if err != nil {
			return nil
		}

		switch key {
		case ' ', '\n', '\r':
			trap, err := dbg.Step()
			fmt.Fprintln(dbg.out, ruler)
			if err != nil {
				if curated.Is(err, cpu.Halted) {
					fmt.Fprintln(dbg.out, "cpu halted. press r to reset")
				} else {
					fmt.Fprintln(dbg.out, err)
				}
				continue
			}
			fmt.Fprintln(dbg.out, dbg.mc.LastResult.String())
			if trap {
				fmt.Fprintln(dbg.out, "trap")
			}

		case 'r', 'R':
			dbg.mc.Reset()
			fmt.Fprintln(dbg.out, ruler)
			fmt.Fprintln(dbg.out, "reset")

		case 'n', 'N':
			dbg.mc.NMI()
			fmt.Fprintln(dbg.out, ruler)
			fmt.Fprintln(dbg.out, "NMI pending")

		case 'i', 'I':
			dbg.mc.SetIRQLine(!dbg.mc.IRQLine())
			fmt.Fprintln(dbg.out, ruler)
			if dbg.mc.IRQLine() {
				fmt.Fprintln(dbg.out, "IRQ line asserted")
			} else {
				fmt.Fprintln(dbg.out, "IRQ line released")
			}

		case 'm', 'M':
			page := dbg.mc.PC.Address() & 0xff00
			fmt.Fprintln(dbg.out, ruler)
			dbg.mem.Dump(dbg.out, page, page|0x00ff)

		case 'q', 'Q':
			return nil

		default:
			continue
		}

		fmt.Fprintln(dbg.out, dbg.Registers())
	}
}
