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

package cartridgeloader

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gophercody/curated"
)

// HeaderSize is the number of bytes in a cartridge header.
const HeaderSize = 4

// Header is the header of a Cody cartridge.
type Header struct {
	// the address of the first byte of the payload
	Start uint16

	// the address of the last byte of the payload
	Last uint16
}

func (h Header) String() string {
	return fmt.Sprintf("%04x -> %04x (%d bytes)", h.Start, h.Last, h.Len())
}

// Len returns the length of the payload declared by the header.
func (h Header) Len() int {
	return int(h.Last) - int(h.Start) + 1
}

// ParseHeader checks that data begins with a valid header and returns it. The
// header is valid if the start address is not after the last address and if
// data is long enough to contain the payload described by the header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(curated.FormatError, fmt.Errorf("cartridge header must be at least %d bytes", HeaderSize))
	}

	h := Header{
		Start: binary.LittleEndian.Uint16(data[0:]),
		Last:  binary.LittleEndian.Uint16(data[2:]),
	}

	if h.Start > h.Last {
		return Header{}, curated.Errorf(curated.FormatError, fmt.Errorf("cartridge start address (%04x) is after last address (%04x)", h.Start, h.Last))
	}

	if len(data)-HeaderSize < h.Len() {
		return Header{}, curated.Errorf(curated.FormatError, fmt.Errorf("cartridge payload is %d bytes but header implies %d bytes", len(data)-HeaderSize, h.Len()))
	}

	return h, nil
}
