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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

// exit values returned by launch().
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	// the value to use with os.Exit()
	exitVal := make(chan int)

	// ctrl-c ends the program even if the CPU is in a tight loop
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go func() {
		exitVal <- launch(os.Args[1:], os.Stdout)
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(exitOK)
	case v := <-exitVal:
		os.Exit(v)
	}
}

// launch parses the top-level arguments and runs the selected mode. returns
// the exit value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "OPCODES")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "STEP":
		err = step(md, output)
	case "OPCODES":
		err = opcodes(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

// prepare a CPU and memory, with the image named by the single remaining
// argument loaded into memory.
func load(md *modalflag.Modes, origin uint16, reset *uint16, output io.Writer) (*debugger.Debugger, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("binary image required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	image, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	// the stack pointer has no defined value after power on. starting at the
	// top of the stack page is what most programs expect
	mc.SP.Load(0xff)

	dbg := debugger.NewDebugger(mc, mem, output)
	if err := dbg.Load(origin, image, reset); err != nil {
		return nil, err
	}

	return dbg, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin, _ := md.AddAddress("origin", 0x0000, "load `address` of image")
	reset, resetSet := md.AddAddress("reset", 0x0000, "entry point `address`. written to the reset vector after loading")
	limit := md.AddInt("limit", 0, "maximum number of steps. zero for no limit")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	log := md.AddBool("log", false, "echo debugging log to output")
	viz := md.AddString("memviz", "", "write graphviz description of final CPU state to `file`")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(output)
	}

	var resetOverride *uint16
	if *resetSet {
		resetOverride = reset
	}

	dbg, err := load(md, *origin, resetOverride, output)
	if err != nil {
		return err
	}
	dbg.Trace = *trace

	runErr := dbg.Run(*limit)
	dbg.Summary()

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		dbg.WriteMemviz(f)
	}

	if runErr != nil {
		if curated.Is(runErr, debugger.StepLimit) {
			fmt.Fprintf(output, "! %v\n", runErr)
			return nil
		}
		return runErr
	}

	return nil
}

func step(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin, _ := md.AddAddress("origin", 0x0000, "load `address` of image")
	reset, resetSet := md.AddAddress("reset", 0x0000, "entry point `address`. written to the reset vector after loading")
	log := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	var resetOverride *uint16
	if *resetSet {
		resetOverride = reset
	}

	dbg, err := load(md, *origin, resetOverride, output)
	if err != nil {
		return err
	}

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	return dbg.Interactive(term)
}

func opcodes(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	undefined := md.AddBool("undefined", false, "include undefined opcodes")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	for _, defn := range instructions.GetDefinitions() {
		if defn.Defined() || *undefined {
			fmt.Fprintln(output, defn.String())
		}
	}

	return nil
}
