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

// ROM is a read-only memory area. Writes from the CPU are ignored but the
// area can be poked.
type ROM struct {
	label  string
	memory []uint8
}

// NewROM is the preferred method of initialisation for the ROM memory area.
func NewROM(label string, size int) *ROM {
	return &ROM{
		label:  label,
		memory: make([]uint8, size),
	}
}

// Label implements the Area interface.
func (rom *ROM) Label() string {
	return rom.label
}

// Size returns the number of bytes in the area.
func (rom *ROM) Size() int {
	return len(rom.memory)
}

// Read implements the Area interface.
func (rom *ROM) Read(offset uint16) uint8 {
	return rom.memory[offset]
}

// Write implements the Area interface. Writing to ROM has no effect.
func (rom *ROM) Write(_ uint16, _ uint8) {
}

// Peek implements the Peeker interface.
func (rom *ROM) Peek(offset uint16) uint8 {
	return rom.memory[offset]
}

// Poke implements the Poker interface.
func (rom *ROM) Poke(offset uint16, data uint8) {
	rom.memory[offset] = data
}
