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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// the CPU type holds a reference to memory. memviz would follow that reference
// and produce a graph with sixty-four thousand nodes so the graph is made of a
// snapshot containing only the interesting parts of the CPU.
type vizSnapshot struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status string
	State  string

	LastResult execution.Result

	Cycles       int
	Instructions int
	Interrupts   int
}

// WriteMemviz writes a Graphviz description of the CPU state to w.
func (dbg *Debugger) WriteMemviz(w io.Writer) {
	snapshot := &vizSnapshot{
		PC:           dbg.mc.PC.Address(),
		A:            dbg.mc.A.Value(),
		X:            dbg.mc.X.Value(),
		Y:            dbg.mc.Y.Value(),
		SP:           dbg.mc.SP.Value(),
		Status:       dbg.mc.Status.String(),
		State:        dbg.mc.State().String(),
		LastResult:   dbg.mc.LastResult,
		Cycles:       dbg.Cycles,
		Instructions: dbg.Instructions,
		Interrupts:   dbg.Interrupts,
	}
	memviz.Map(w, snapshot)
}
