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


package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for a 16 bit address.
type address struct {
	value *uint16

	// whether the flag was present on the command line
	set *bool
}

func (a address) String() string {
	if a.value == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", *a.value)
}

// Set parses hexadecimal values with a "0x" or "$" prefix and decimal values
// with no prefix.
func (a address) Set(s string) error {
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit address")
	}

	*a.value = uint16(v)
	*a.set = true
	return nil
}
