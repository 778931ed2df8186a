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

package render

import (
	"image/color"

	"github.com/jetsetilly/gophercody/hardware/video"
)

// Palette of the Cody Computer. The palette index of a pixel in a video.Frame
// is an index into this array.
var Palette = [video.NumColours]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0x88, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0xaa, G: 0xff, B: 0xee, A: 0xff}, // cyan
	{R: 0xcc, G: 0x44, B: 0xcc, A: 0xff}, // purple
	{R: 0x00, G: 0xcc, B: 0x55, A: 0xff}, // green
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, // blue
	{R: 0xee, G: 0xee, B: 0x77, A: 0xff}, // yellow
	{R: 0xdd, G: 0x88, B: 0x55, A: 0xff}, // orange
	{R: 0x66, G: 0x44, B: 0x00, A: 0xff}, // brown
	{R: 0xff, G: 0x77, B: 0x77, A: 0xff}, // light red
	{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, // dark gray
	{R: 0x77, G: 0x77, B: 0x77, A: 0xff}, // gray
	{R: 0xaa, G: 0xff, B: 0x66, A: 0xff}, // light green
	{R: 0x00, G: 0x88, B: 0xff, A: 0xff}, // light blue
	{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, // light gray
}
