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


package terminal

import (
	"os"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
	pkgterm "github.com/pkg/term"
	"golang.org/x/term"
)

// Sentinal error patterns.
const (
	NotTerminal = "terminal: %s is not a terminal"
	OpenError   = "terminal: %v"
)

// the device opened for key input.
const ttyDevice = "/dev/tty"

// Terminal reads single key presses from the controlling terminal.
type Terminal struct {
	tty    *pkgterm.Term
	output *os.File
}

// Open the controlling terminal in cbreak mode. The input and output files
// must both be terminals. The output file is used to measure the width of
// the terminal.
func Open(input *os.File, output *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotTerminal, input.Name())
	}
	if !term.IsTerminal(int(output.Fd())) {
		return nil, curated.Errorf(NotTerminal, output.Name())
	}

	tty, err := pkgterm.Open(ttyDevice, pkgterm.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}

	return &Terminal{
		tty:    tty,
		output: output,
	}, nil
}

// Close restores the terminal to the mode it was in before Open() was called.
func (pt *Terminal) Close() error {
	if err := pt.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "terminal", err)
	}
	return pt.tty.Close()
}

// ReadKey blocks until a key is pressed. Multi-byte sequences (cursor keys
// for example) are returned one byte at a time.
func (pt *Terminal) ReadKey() (rune, error) {
	b := make([]byte, 1)
	_, err := pt.tty.Read(b)
	if err != nil {
		return 0, err
	}
	return rune(b[0]), nil
}

// Width of the output terminal in characters. Returns zero if the width can
// not be determined.
func (pt *Terminal) Width() int {
	w, _, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return 0
	}
	return w
}
