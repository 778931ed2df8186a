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
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// wait for the first event for a short time. this stops the main thread
	// from spinning when there is nothing to do
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.keyboard(ev)
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequest(r)
	default:
	}

	if scr.cody == nil {
		return
	}

	frame := scr.cody.Video.Frame()
	if frame == nil || frame.Generation == scr.generation {
		return
	}
	scr.generation = frame.Generation

	if err := scr.update(frame); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}

func (scr *SdlPlay) keyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	pressed := ev.Type == sdl.KEYDOWN

	// keys used by the front end are not passed to the emulation
	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		if pressed {
			scr.send(gui.EventQuit{})
		}
		return
	case sdl.K_F12:
		if pressed {
			scr.send(scr.screenshot(""))
		}
		return
	}

	if scr.cody == nil {
		return
	}

	scr.cody.QueueEvent(scr.translate(ev.Keysym, pressed))
}
