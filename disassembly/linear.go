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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
)

// the data being disassembled by Linear(). addresses outside of the data are
// an error
type linearMem struct {
	data   []byte
	origin uint16
}

func (mem linearMem) Peek(address uint16) (uint8, error) {
	idx := int(address) - int(mem.origin)
	if idx < 0 || idx >= len(mem.data) {
		return 0, fmt.Errorf("address %04x outside of data", address)
	}
	return mem.data[idx], nil
}

// Linear disassembles data as though it were loaded at the origin address.
// Disassembly starts at the first byte and each instruction is assumed to
// follow immediately after the previous one.
//
// An instruction that is cut short by the end of the data is written as a
// sequence of bytes.
//
// The number of instructions written is returned along with any error from
// the io.Writer.
func Linear(data []byte, origin uint16, output io.Writer, attr WriteAttr) (int, error) {
	mem := linearMem{data: data, origin: origin}

	var n int
	idx := 0
	for idx < len(data) {
		address := origin + uint16(idx)
		defn := instructions.Definitions[data[idx]]

		if idx+defn.Bytes > len(data) {
			for ; idx < len(data); idx++ {
				if _, err := fmt.Fprintf(output, "$%04x .byte $%02x\n", origin+uint16(idx), data[idx]); err != nil {
					return n, err
				}
			}
			break
		}

		if err := WriteEntry(output, attr, Decode(mem, address)); err != nil {
			return n, err
		}

		n++
		idx += defn.Bytes
	}

	return n, nil
}
