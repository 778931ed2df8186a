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

package sdlplay

import (
	"io"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/gui/render"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/logger"
	"github.com/jetsetilly/gophercody/version"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultScale is the scaling applied to the video frame if no other value
// is specified.
const DefaultScale = 3

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// the emulation being shown. nil until a ReqSetEmulation request
	cody *hardware.Cody

	// events are sent to the emulation goroutine on this channel
	events chan gui.Event

	// feature requests are serviced in the main thread
	featureReq chan featureRequest
	featureErr chan error

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels are copied to the texture whenever the generation of the video
	// frame changes
	pixels     []byte
	generation uint64

	scale int

	// refresh rate of the display the window was created on. zero if the
	// refresh rate is unknown
	refreshRate float32

	// the symbol produced when a key was pressed, keyed by scancode. the same
	// symbol is used for the release of the key even if the state of the
	// shift key has changed
	held map[sdl.Scancode]rune
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The window
// is hidden until a ReqSetVisibility request.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error),
		pixels:     make([]byte, render.PixelsSize),
		scale:      max(scale, 1),
		held:       make(map[sdl.Scancode]rune),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(video.Width * scr.scale)
	h := int32(video.Height * scr.scale)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to fit the window
	err = scr.renderer.SetLogicalSize(video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		scr.refreshRate = float32(mode.RefreshRate)
		logger.Logf(logger.Allow, "sdlplay", "display refresh rate: %dHz", mode.RefreshRate)
	}

	// we're not interested in mouse events
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	// show a black screen until the first frame is ready
	err = scr.update(nil)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.texture.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	if err := scr.renderer.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	if err := scr.window.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	sdl.Quit()
}

// DisplayRefreshRate implements the limiter.Display interface.
func (scr *SdlPlay) DisplayRefreshRate() (float32, bool) {
	return scr.refreshRate, scr.refreshRate > 0
}

// update the texture with the frame and present it
func (scr *SdlPlay) update(frame *video.Frame) error {
	render.RGBA(frame, scr.pixels)

	err := scr.texture.Update(nil, scr.pixels, video.Width*render.PixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// send an event to the emulation goroutine without blocking the main thread
func (scr *SdlPlay) send(ev gui.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "event channel full: dropped %T", ev)
	}
}
