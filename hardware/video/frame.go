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

package video

import (
	"fmt"
	"strings"
)

// Dimensions of the visible screen area, excluding the border.
const (
	ContentWidth  = 160
	ContentHeight = 200
)

// Size of the border.
const (
	BorderX = 4
	BorderY = 8
)

// Dimensions of a Frame.
const (
	Width  = ContentWidth + 2*BorderX
	Height = ContentHeight + 2*BorderY
)

// NumColours is the number of entries in the palette.
const NumColours = 16

// Dimensions of the character grid.
const (
	TextColumns = 40
	TextRows    = 25
)

// Frame is a complete decoded screen. Pixels are palette indices in the range
// 0 to 15.
type Frame struct {
	// incremented once per frame. the first frame produced by the generator
	// has a generation of one
	Generation uint64

	Pixels [Height][Width]uint8

	// the character codes of the screen. all zero when the display is
	// disabled or in bitmap mode
	Text [TextRows][TextColumns]uint8
}

func (f *Frame) String() string {
	return fmt.Sprintf("frame %d", f.Generation)
}

// Pixel returns the palette index at the coordinates. Coordinates outside the
// frame return zero.
func (f *Frame) Pixel(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return f.Pixels[y][x]
}

func (f *Frame) set(x, y int, idx uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	f.Pixels[y][x] = idx & (NumColours - 1)
}

func (f *Frame) fill(idx uint8) {
	idx &= NumColours - 1
	for y := range f.Pixels {
		for x := range f.Pixels[y] {
			f.Pixels[y][x] = idx
		}
	}
}

// Dump returns the frame as rows of hexadecimal digits. Useful for debugging
// and testing.
func (f *Frame) Dump() string {
	var s strings.Builder
	for y := range f.Pixels {
		for x := range f.Pixels[y] {
			fmt.Fprintf(&s, "%x", f.Pixels[y][x])
		}
		s.WriteString("\n")
	}
	return s.String()
}
