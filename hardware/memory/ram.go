// This file is part of Gophercody.
//
// Gophercody is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercody is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercody.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"strings"
)

// RAM is a read/write memory area.
type RAM struct {
	label  string
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		label:  label,
		memory: make([]uint8, size),
	}
}

// String returns a hex dump of the first 256 bytes of RAM.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16 && y*16 < len(ram.memory); y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16 && y*16+x < len(ram.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Label implements the Area interface.
func (ram *RAM) Label() string {
	return ram.label
}

// Size returns the number of bytes in the area.
func (ram *RAM) Size() int {
	return len(ram.memory)
}

// Read implements the Area interface.
func (ram *RAM) Read(offset uint16) uint8 {
	return ram.memory[offset]
}

// Write implements the Area interface.
func (ram *RAM) Write(offset uint16, data uint8) {
	ram.memory[offset] = data
}

// Peek implements the Peeker interface.
func (ram *RAM) Peek(offset uint16) uint8 {
	return ram.memory[offset]
}

// Poke implements the Poker interface.
func (ram *RAM) Poke(offset uint16, data uint8) {
	ram.memory[offset] = data
}
