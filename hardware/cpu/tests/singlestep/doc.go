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


// Package singlestep runs the CPU against single instruction test cases in
// the JSON format popularised by Tom Harte's ProcessorTests project.
//
// Each test case describes the state of the CPU and of memory before and after
// a single instruction. The list of bus cycles is used only for its length,
// which must equal the number of cycles reported by the CPU for the
// instruction. The order of individual bus accesses is not compared.
//
// Additional test files can be dropped into the testdata directory. Files from
// the ProcessorTests project that cover undocumented opcodes will fail because
// those opcodes halt the CPU.
package singlestep
