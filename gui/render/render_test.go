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

package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui/render"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/test"
)

// a frame from the generator with the border set to the palette index
func frame(t *testing.T, border uint8) *video.Frame {
	t.Helper()
	gen := video.NewGenerator()
	gen.Write(video.Colour, border)
	gen.Write(video.Control, video.ControlDisable)
	gen.Tick(video.FrameCycles)
	f := gen.Frame()
	test.DemandSuccess(t, f != nil)
	return f
}

func TestRGBA(t *testing.T) {
	f := frame(t, 2)

	pixels := make([]byte, render.PixelsSize)
	render.RGBA(f, pixels)
	test.ExpectEquality(t, pixels[0], 0x88)
	test.ExpectEquality(t, pixels[1], 0x00)
	test.ExpectEquality(t, pixels[2], 0x00)
	test.ExpectEquality(t, pixels[3], 0xff)

	last := render.PixelsSize - render.PixelDepth
	test.ExpectEquality(t, pixels[last], 0x88)

	// nil frame is black
	render.RGBA(nil, pixels)
	test.ExpectEquality(t, pixels[0], 0x00)
	test.ExpectEquality(t, pixels[3], 0xff)
}

func TestImage(t *testing.T) {
	img := render.Image(frame(t, 3))
	test.ExpectEquality(t, img.Bounds().Dx(), video.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height)
	test.ExpectEquality(t, img.RGBAAt(10, 10), render.Palette[3])

	img = render.Scaled(frame(t, 4), 3)
	test.ExpectEquality(t, img.Bounds().Dx(), video.Width*3)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height*3)
	test.ExpectEquality(t, img.RGBAAt(video.Width*3-1, video.Height*3-1), render.Palette[4])
}

func TestScreenshot(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, render.Screenshot(frame(t, 5), &b, 2))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), video.Width*2)

	r, g, bl, _ := img.At(0, 0).RGBA()
	test.ExpectEquality(t, r>>8, 0x00)
	test.ExpectEquality(t, g>>8, 0xcc)
	test.ExpectEquality(t, bl>>8, 0x55)
}

func TestSaveScreenshot(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "screenshot.png")
	test.DemandSuccess(t, render.SaveScreenshot(frame(t, 1), fn, 1))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), video.Width)

	err = render.SaveScreenshot(frame(t, 1), filepath.Join(t.TempDir(), "missing", "screenshot.png"), 1)
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))
}
