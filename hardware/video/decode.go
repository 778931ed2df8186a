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

// saturating subtraction
func sub(a, b int) int {
	return max(a-b, 0)
}

// decode the current state of video memory into the frame
func (gen *Generator) decode(f *Frame) {
	control := gen.vram(Control)
	colour := gen.vram(Colour)

	f.fill(colour & 0x0f)

	if control&ControlDisable == ControlDisable {
		return
	}

	vScrollEnabled := control&ControlVScroll == ControlVScroll
	hScrollEnabled := control&ControlHScroll == ControlHScroll
	bitmap := control&ControlBitmap == ControlBitmap

	base := gen.vram(Base)
	screenColours := gen.vram(ScreenColours)

	var vScroll, hScroll int
	if vScrollEnabled {
		vScroll = int(gen.vram(Scroll) & 0x07)
	}
	if hScrollEnabled {
		hScroll = int(gen.vram(Scroll)>>4) & 0x03
	}

	colourMemory := uint16(screenUnit) * uint16(colour>>4)
	screenMemory := uint16(screenUnit) * uint16(base>>4)
	characterMemory := uint16(characterUnit) * uint16(base&0x0f)

	// the visible area shrinks when fine scrolling is enabled
	width := ContentWidth
	height := ContentHeight
	borderX := BorderX
	borderY := BorderY
	columns := TextColumns
	const rows = TextRows

	if hScrollEnabled {
		width -= 8
		borderX += 4
		columns--
	}
	if vScrollEnabled {
		height -= 8
		borderY += 4
	}

	for cy := range rows {
		for cx := range columns {
			i := uint16(cy*40 + cx)

			var character uint16
			if !bitmap {
				character = uint16(gen.vram(screenMemory + i))
				f.Text[cy][cx] = uint8(character)
			}
			local := gen.vram(colourMemory + i)

			xStart, xEnd := 0, 4
			if hScrollEnabled {
				if cx == 0 {
					xStart = hScroll
				}
				if cx == columns-1 {
					xEnd = hScroll
				}
			}

			yStart, yEnd := 0, 8
			if vScrollEnabled {
				if cy == 0 {
					yStart = vScroll
				}
				if cy == rows-1 {
					yEnd = vScroll
				}
			}

			for yy := yStart; yy < yEnd; yy++ {
				var data uint8
				if bitmap {
					data = gen.vram(screenMemory + 8*i + uint16(yy))
				} else {
					data = gen.vram(characterMemory + 8*character + uint16(yy))
				}

				for xx := xStart; xx < xEnd; xx++ {
					var idx uint8
					switch (data >> (2 * (3 - xx))) & 0x03 {
					case 0:
						idx = local & 0x0f
					case 1:
						idx = local >> 4
					case 2:
						idx = screenColours & 0x0f
					case 3:
						idx = screenColours >> 4
					}

					f.set(cx*4+xx+borderX-hScroll, cy*8+yy+borderY-vScroll, idx)
				}
			}
		}
	}

	gen.decodeSprites(f, width, height, borderX, borderY)
}

func (gen *Generator) decodeSprites(f *Frame, width, height, borderX, borderY int) {
	sprite := gen.vram(SpriteControl)
	common := sprite & 0x0f
	bank := uint16(SpriteBanks) + spriteBankSize*uint16(sprite>>4)

	for s := range NumSprites {
		record := bank + uint16(s*spriteRecordSize)
		x := int(gen.vram(record))
		y := int(gen.vram(record + 1))
		colours := gen.vram(record + 2)
		location := spriteDataUnit * uint16(gen.vram(record+3))

		// a coordinate of zero hides the sprite
		if x == 0 || x >= width+SpriteWidth {
			continue
		}
		if y == 0 || y >= height+SpriteHeight {
			continue
		}

		xStart := sub(SpriteWidth, x)
		xEnd := SpriteWidth - sub(x, width)
		yStart := sub(SpriteHeight, y)
		yEnd := SpriteHeight - sub(y, height)

		for sy := yStart; sy < yEnd; sy++ {
			for sx := xStart; sx < xEnd; sx++ {
				p := sy*SpriteWidth + sx
				data := gen.vram(location + uint16(p/4))

				var idx uint8
				switch (data >> (2 * (3 - p%4))) & 0x03 {
				case 0:
					continue
				case 1:
					idx = colours & 0x0f
				case 2:
					idx = colours >> 4
				case 3:
					idx = common
				}

				f.set(x+sx+borderX-SpriteWidth, y+sy+borderY-SpriteHeight, idx)
			}
		}
	}
}
