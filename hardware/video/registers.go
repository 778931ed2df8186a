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

import "github.com/jetsetilly/gophercody/hardware/memory/memorymap"

// Register offsets from the origin of the video area.
const (
	Blanking      = 0xd000 - memorymap.OriginVideo
	Control       = 0xd001 - memorymap.OriginVideo
	Colour        = 0xd002 - memorymap.OriginVideo
	Base          = 0xd003 - memorymap.OriginVideo
	Scroll        = 0xd004 - memorymap.OriginVideo
	ScreenColours = 0xd005 - memorymap.OriginVideo
	SpriteControl = 0xd006 - memorymap.OriginVideo
	SpriteBanks   = 0xd080 - memorymap.OriginVideo
)

// Size is the number of addresses covered by the video area.
const Size = int(memorymap.MemtopVideo-memorymap.OriginVideo) + 1

// Bits in the Control register.
const (
	ControlDisable   = 0x01
	ControlVScroll   = 0x02
	ControlHScroll   = 0x04
	ControlRowEffect = 0x08
	ControlBitmap    = 0x10
)

// Sprite geometry. Each sprite bank contains eight sprites of four bytes:
// x, y, colours and the location of the sprite data in units of 64 bytes.
const (
	NumSprites       = 8
	SpriteWidth      = 12
	SpriteHeight     = 21
	spriteBankSize   = 0x20
	spriteRecordSize = 4
	spriteDataUnit   = 0x40
)

// Memory units selected by the Colour and Base registers.
const (
	screenUnit    = 0x400
	characterUnit = 0x800
)
