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

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// State of the interrupt controller during the most recent step.
type State int

// List of valid State values.
const (
	Running State = iota
	Resetting
	ServicingNMI
	ServicingIRQ
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Resetting:
		return "resetting"
	case ServicingNMI:
		return "servicing NMI"
	case ServicingIRQ:
		return "servicing IRQ"
	}
	return "unknown state"
}

// the number of cycles taken by an NMI or IRQ sequence.
const interruptCycles = 7

// Reset the CPU. The interrupt disable flag is set and the PC is loaded from
// the reset vector. Memory and all other registers are left unchanged.
//
// Reset also clears any halted state and any pending NMI. The IRQ line is
// controlled by the device asserting it and is left as it is.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.halted = false
	mc.nmiPending = false
	mc.state = Resetting

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(cpubus.Reset))

	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.EffectiveAddress = cpubus.Reset
	mc.LastResult.Interrupt = execution.Reset
	mc.LastResult.Final = true

	logger.Logf(logger.Allow, "CPU", "reset to %#04x", mc.PC.Address())
}

// NMI raises a non-maskable interrupt. The interrupt is serviced at the start
// of the next call to Step() regardless of the interrupt disable flag.
func (mc *CPU) NMI() {
	mc.nmiPending = true
}

// SetNMILine sets the state of the NMI line. The NMI is edge triggered: an
// interrupt is raised only when the line changes from inactive to active.
func (mc *CPU) SetNMILine(asserted bool) {
	if asserted && !mc.nmiLine {
		mc.nmiPending = true
	}
	mc.nmiLine = asserted
}

// SetIRQLine sets the state of the IRQ line. The IRQ is level triggered: an
// interrupt is serviced at the start of every call to Step() for as long as
// the line is asserted and the interrupt disable flag is clear.
func (mc *CPU) SetIRQLine(asserted bool) {
	mc.irqLine = asserted
}

// IRQLine returns the current state of the IRQ line.
func (mc *CPU) IRQLine() bool {
	return mc.irqLine
}

// State returns the state of the interrupt controller during the most recent
// step.
func (mc *CPU) State() State {
	return mc.state
}

// Halted returns true if the CPU has encountered an undefined opcode. Only
// Reset() will restart the CPU.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// serviceInterrupt checks for a pending NMI or an active IRQ and performs the
// interrupt sequence if required. returns true if an interrupt has been
// serviced.
func (mc *CPU) serviceInterrupt() bool {
	if mc.nmiPending {
		mc.nmiPending = false
		mc.state = ServicingNMI
		mc.interrupt(execution.NMI, cpubus.NMI)
		return true
	}

	if mc.irqLine && !mc.Status.InterruptDisable {
		mc.state = ServicingIRQ
		mc.interrupt(execution.IRQ, cpubus.IRQ)
		return true
	}

	return false
}

// interrupt sequence for NMI and IRQ. the PC is pushed as it is because an
// interrupt is serviced between instructions. the status register is pushed
// with the break flag clear.
func (mc *CPU) interrupt(kind execution.Interrupt, vector uint16) {
	mc.push16(mc.PC.Address())
	mc.push(mc.Status.Value() &^ registers.StatusBreak)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))

	mc.LastResult.Interrupt = kind
	mc.LastResult.EffectiveAddress = vector
	mc.LastResult.Cycles = interruptCycles
	mc.LastResult.Final = true
}
