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

// Area defines the operations for a memory area on the bus. The offset
// argument is the address relative to the origin of the region the area has
// been mapped to.
type Area interface {
	Label() string
	Read(offset uint16) uint8
	Write(offset uint16, data uint8)
}

// Peeker is implemented by areas that can be read without side effects.
type Peeker interface {
	Peek(offset uint16) uint8
}

// Poker is implemented by areas that can be written to outside of the normal
// operation of the machine.
type Poker interface {
	Poke(offset uint16, data uint8)
}
