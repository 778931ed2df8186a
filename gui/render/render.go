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
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware/video"
	"golang.org/x/image/draw"
)

// PixelDepth is the number of bytes used by each pixel in the slice given to
// RGBA().
const PixelDepth = 4

// PixelsSize is the minimum size of the slice given to RGBA().
const PixelsSize = video.Width * video.Height * PixelDepth

// RGBA writes the frame to the pixels slice, four bytes per pixel in the order
// red, green, blue, alpha. This is the same layout as the ABGR8888 pixel
// format of SDL on little-endian machines and as the Pix field of an
// image.RGBA.
//
// A nil frame is rendered as black. The slice must be at least PixelsSize in
// length.
func RGBA(frame *video.Frame, pixels []byte) {
	i := 0
	for y := range video.Height {
		for x := range video.Width {
			var c color.RGBA
			if frame != nil {
				c = Palette[frame.Pixels[y][x]&(video.NumColours-1)]
			} else {
				c = Palette[0]
			}
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
			i += PixelDepth
		}
	}
}

// Image returns the frame as an image.RGBA with one image pixel for each
// frame pixel.
func Image(frame *video.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	RGBA(frame, img.Pix)
	return img
}

// Scaled returns the frame as an image scaled by the integer scale factor.
// Scaling is nearest-neighbour so that the pixels remain sharp.
func Scaled(frame *video.Frame, scale int) *image.RGBA {
	scale = max(scale, 1)
	src := Image(frame)
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, video.Width*scale, video.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Screenshot encodes the scaled frame as a PNG image.
func Screenshot(frame *video.Frame, w io.Writer, scale int) error {
	if err := png.Encode(w, Scaled(frame, scale)); err != nil {
		return curated.Errorf(curated.IOError, err)
	}
	return nil
}

// SaveScreenshot creates the named file and writes the scaled frame to it as
// a PNG image.
func SaveScreenshot(frame *video.Frame, filename string, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(curated.IOError, err)
	}
	defer f.Close()

	err = Screenshot(frame, f, scale)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(curated.IOError, err)
	}
	return nil
}
