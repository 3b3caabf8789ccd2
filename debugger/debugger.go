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
	"io"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinal error patterns.
const (
	StepLimit = "debugger: step limit (%d) reached at %#04x"
	LoadError = "debugger: %v"
)

// Debugger drives the CPU and keeps count of what it has done.
type Debugger struct {
	mc  *cpu.CPU
	mem *memory.RAM
	out io.Writer

	// write the result of every instruction to the output
	Trace bool

	// totals since the debugger was created. the counts are not affected by
	// a CPU reset
	Cycles       int
	Instructions int
	Interrupts   int
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(mc *cpu.CPU, mem *memory.RAM, out io.Writer) *Debugger {
	return &Debugger{
		mc:  mc,
		mem: mem,
		out: out,
	}
}

// Load the image into memory at the origin address. If reset is not nil the
// value is written to the reset vector, overwriting anything the image placed
// there. The CPU is reset once the image has been loaded.
func (dbg *Debugger) Load(origin uint16, image []uint8, reset *uint16) error {
	if err := dbg.mem.Mount(origin, image); err != nil {
		return curated.Errorf(LoadError, err)
	}

	if reset != nil {
		dbg.mem.Write16(cpubus.Reset, *reset)
	}

	logger.Logf(logger.Allow, "debugger", "loaded %d bytes at %#04x", len(image), origin)

	dbg.mc.Reset()

	return nil
}

// Step the CPU once and update the counters. Returns true if the step was a
// trap.
func (dbg *Debugger) Step() (bool, error) {
	cycles, err := dbg.mc.Step()
	if err != nil {
		return false, err
	}

	dbg.Cycles += cycles

	res := dbg.mc.LastResult
	if res.Interrupt != execution.NoInterrupt {
		dbg.Interrupts++
		if dbg.Trace {
			fmt.Fprintln(dbg.out, res.String())
		}
		return false, nil
	}

	dbg.Instructions++
	if dbg.Trace {
		fmt.Fprintln(dbg.out, res.String())
	}

	return dbg.mc.PC.Address() == res.Address, nil
}

// Run the CPU until a trap is encountered. A limit of zero means that the
// number of steps is unlimited. Returns nil if a trap was encountered and the
// StepLimit error if the limit was reached first.
func (dbg *Debugger) Run(limit int) error {
	for steps := 0; limit == 0 || steps < limit; steps++ {
		trap, err := dbg.Step()
		if err != nil {
			return err
		}
		if trap {
			logger.Logf(logger.Allow, "debugger", "trap at %#04x", dbg.mc.PC.Address())
			return nil
		}
	}
	return curated.Errorf(StepLimit, limit, dbg.mc.PC.Address())
}

// Registers returns a one line summary of the CPU registers and the debugger
// counters.
func (dbg *Debugger) Registers() string {
	return fmt.Sprintf("%s [%s] cycles=%d instructions=%d", dbg.mc.String(), dbg.mc.State(), dbg.Cycles, dbg.Instructions)
}

// Summary writes the final state of the CPU to the output.
func (dbg *Debugger) Summary() {
	fmt.Fprintln(dbg.out, dbg.Registers())
	if dbg.mc.LastResult.Final {
		fmt.Fprintf(dbg.out, "last: %s\n", dbg.mc.LastResult.String())
	}
}
