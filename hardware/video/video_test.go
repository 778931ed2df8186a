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

package video_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophercody/hardware/memory"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/test"
)

func TestInterfaces(t *testing.T) {
	gen := video.NewGenerator()
	test.ExpectImplements[memory.Area](t, gen)
	test.ExpectImplements[memory.Peeker](t, gen)
	test.ExpectImplements[memory.Poker](t, gen)
	test.ExpectEquality(t, video.Size, 0x3480)
}

func TestBlanking(t *testing.T) {
	gen := video.NewGenerator()
	test.ExpectEquality(t, gen.Read(video.Blanking), 1)
	test.ExpectEquality(t, gen.Frame().Generation, 0)

	gen.Tick(video.BlankingCycles - 1)
	test.ExpectEquality(t, gen.Read(video.Blanking), 1)
	gen.Tick(1)
	test.ExpectEquality(t, gen.Read(video.Blanking), 0)

	// the blanking register is read only
	gen.Write(video.Blanking, 0x01)
	test.ExpectEquality(t, gen.Read(video.Blanking), 0)

	gen.Tick(video.FrameCycles - video.BlankingCycles)
	test.ExpectEquality(t, gen.Read(video.Blanking), 1)
	test.ExpectEquality(t, gen.Frame().Generation, 1)

	// more than one frame in a single tick
	gen.Tick(video.FrameCycles * 3)
	test.ExpectEquality(t, gen.Generation(), 4)
	test.ExpectEquality(t, gen.Frame().Generation, 4)
}

func TestDisabled(t *testing.T) {
	gen := video.NewGenerator()
	gen.Write(video.Control, video.ControlDisable)
	gen.Write(video.Colour, 0x0e)
	gen.Tick(video.FrameCycles)

	f := gen.Frame()
	row := strings.Repeat("e", video.Width) + "\n"
	test.ExpectEquality(t, f.Dump(), strings.Repeat(row, video.Height))
}

// characterScreen sets up a screen in character mode with a single character
// in the top left of the screen
func characterScreen(gen *video.Generator) {
	// border colour 2 and colour memory at 0x0400
	gen.Write(video.Colour, 0x12)

	// screen memory at 0x0800 and character memory at 0x1800
	gen.Write(video.Base, 0x23)

	gen.Write(video.ScreenColours, 0x54)

	// character 1 in the top left and the local colours for that position
	gen.Write(0x0800, 0x01)
	gen.Write(0x0400, 0x76)

	// first row of character 1 uses all four colours
	gen.Write(0x1808, 0x1b)
}

func TestCharacterMode(t *testing.T) {
	gen := video.NewGenerator()
	characterScreen(gen)
	gen.Tick(video.FrameCycles)
	f := gen.Frame()

	// border
	test.ExpectEquality(t, f.Pixel(0, 0), 2)
	test.ExpectEquality(t, f.Pixel(3, 8), 2)
	test.ExpectEquality(t, f.Pixel(video.Width-1, video.Height-1), 2)

	test.ExpectEquality(t, f.Pixel(4, 8), 6)
	test.ExpectEquality(t, f.Pixel(5, 8), 7)
	test.ExpectEquality(t, f.Pixel(6, 8), 4)
	test.ExpectEquality(t, f.Pixel(7, 8), 5)

	// second row of the character is empty and uses the first local colour
	test.ExpectEquality(t, f.Pixel(4, 9), 6)

	// next character position has no local colour
	test.ExpectEquality(t, f.Pixel(8, 8), 0)

	test.ExpectEquality(t, f.Text[0][0], 1)
	test.ExpectEquality(t, f.Text[0][1], 0)
}

func TestDecodeThroughBus(t *testing.T) {
	gen := video.NewGenerator()
	characterScreen(gen)

	// character memory at 0x7800 from the start of the video area, which
	// wraps around the top of the address space to 0x1800
	gen.Write(video.Base, 0x2f)

	// without a bus the character data reads as zero
	gen.Tick(video.FrameCycles)
	test.ExpectEquality(t, gen.Frame().Pixel(4, 8), 6)
	test.ExpectEquality(t, gen.Frame().Pixel(6, 8), 6)

	ram := memory.NewRAM("RAM", 0xa000)
	bus := memory.NewBus()
	test.DemandSuccess(t, bus.Map(0x0000, 0x9fff, ram))
	test.DemandSuccess(t, bus.Map(0xa000, 0xd47f, gen))
	test.DemandSuccess(t, bus.Poke(0x1808, 0x1b))
	gen.Plumb(bus)

	gen.Tick(video.FrameCycles)
	f := gen.Frame()
	test.ExpectEquality(t, f.Pixel(4, 8), 6)
	test.ExpectEquality(t, f.Pixel(5, 8), 7)
	test.ExpectEquality(t, f.Pixel(6, 8), 4)
	test.ExpectEquality(t, f.Pixel(7, 8), 5)
	test.ExpectEquality(t, f.Text[0][0], 1)

	// character memory at 0xd800, which is not mapped on this bus
	gen.Write(video.Base, 0x27)
	gen.Tick(video.FrameCycles)
	test.ExpectEquality(t, gen.Frame().Pixel(6, 8), 6)
}

func TestHorizontalScroll(t *testing.T) {
	gen := video.NewGenerator()
	characterScreen(gen)
	gen.Write(video.Control, video.ControlHScroll)
	gen.Write(video.Scroll, 0x20)
	gen.Tick(video.FrameCycles)
	f := gen.Frame()

	// the border is wider and the first two pixels of the character are
	// scrolled off the screen
	test.ExpectEquality(t, f.Pixel(7, 8), 2)
	test.ExpectEquality(t, f.Pixel(8, 8), 4)
	test.ExpectEquality(t, f.Pixel(9, 8), 5)
}

func TestVerticalScroll(t *testing.T) {
	gen := video.NewGenerator()
	characterScreen(gen)
	gen.Write(video.Control, video.ControlVScroll)
	gen.Write(video.Scroll, 0x00)
	gen.Tick(video.FrameCycles)
	f := gen.Frame()

	// the border is taller
	test.ExpectEquality(t, f.Pixel(4, 11), 2)
	test.ExpectEquality(t, f.Pixel(4, 12), 6)
	test.ExpectEquality(t, f.Pixel(5, 12), 7)
}

func TestBitmapMode(t *testing.T) {
	gen := video.NewGenerator()
	gen.Write(video.Control, video.ControlBitmap)
	gen.Write(video.Base, 0x20)
	gen.Write(video.ScreenColours, 0x54)
	gen.Write(0x0800, 0xff)
	gen.Write(0x0801, 0xaa)
	gen.Tick(video.FrameCycles)
	f := gen.Frame()

	for x := 4; x < 8; x++ {
		test.ExpectEquality(t, f.Pixel(x, 8), 5)
		test.ExpectEquality(t, f.Pixel(x, 9), 4)
	}
	test.ExpectEquality(t, f.Pixel(8, 8), 0)
}

func TestSprites(t *testing.T) {
	gen := video.NewGenerator()

	// common sprite colour 0x0c and sprite bank zero
	gen.Write(video.SpriteControl, 0x0c)

	// sprite zero in the top left of the screen with data at 0x1000
	gen.Write(video.SpriteBanks, 12)
	gen.Write(video.SpriteBanks+1, 21)
	gen.Write(video.SpriteBanks+2, 0x9a)
	gen.Write(video.SpriteBanks+3, 0x40)
	gen.Write(0x1000, 0x6c)

	// sprite one is hidden
	gen.Write(video.SpriteBanks+4, 0)
	gen.Write(video.SpriteBanks+5, 50)
	gen.Write(video.SpriteBanks+6, 0xff)
	gen.Write(video.SpriteBanks+7, 0x40)

	gen.Tick(video.FrameCycles)
	f := gen.Frame()

	test.ExpectEquality(t, f.Pixel(4, 8), 0x0a)
	test.ExpectEquality(t, f.Pixel(5, 8), 0x09)
	test.ExpectEquality(t, f.Pixel(6, 8), 0x0c)
	test.ExpectEquality(t, f.Pixel(7, 8), 0x00)

	// sprite partially off the left edge of the screen
	gen.Write(video.SpriteBanks, 11)
	gen.Tick(video.FrameCycles)
	f = gen.Frame()
	test.ExpectEquality(t, f.Pixel(3, 8), 0x00)
	test.ExpectEquality(t, f.Pixel(4, 8), 0x09)
	test.ExpectEquality(t, f.Pixel(5, 8), 0x0c)
}

func TestFrameIsStable(t *testing.T) {
	gen := video.NewGenerator()
	characterScreen(gen)
	gen.Tick(video.FrameCycles)
	a := gen.Frame()

	gen.Write(video.Colour, 0x13)
	gen.Tick(video.FrameCycles)
	b := gen.Frame()

	test.ExpectEquality(t, a.Pixel(0, 0), 2)
	test.ExpectEquality(t, b.Pixel(0, 0), 3)
	test.ExpectInequality(t, a, b)
	test.ExpectEquality(t, a.Generation, 1)
	test.ExpectEquality(t, b.Generation, 2)
}
