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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and is used to identify the error. Sentinel
// patterns are declared as exported string constants in the package that
// raises them. For example, the cpu package declares:
//
//	const UndefinedOpcode = "cpu: undefined opcode (%#02x) at (%#04x)"
//
// and a caller can check for that condition with:
//
//	if curated.Is(err, cpu.UndefinedOpcode) {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs anywhere
// in the error chain. A chain is formed when a curated error is one of the
// values of another curated error:
//
//	e := curated.Errorf("debugger: %v", err)
//
//	curated.Is(e, cpu.UndefinedOpcode)  // false
//	curated.Has(e, cpu.UndefinedOpcode) // true
//
// The Error() function normalises the error message so that adjacent
// duplicate parts of the chain are removed. Parts are separated by ": ". This
// means that a package can wrap errors with its own prefix without worrying
// whether the error has already been given that prefix.
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions in the standard library see any error values given to
// Errorf().
package curated
