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
	"fmt"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/gui/render"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/paths"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface. The request is serviced by the
// main thread during the next call to Service().
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

func (scr *SdlPlay) serviceFeatureRequest(r featureRequest) {
	scr.featureErr <- scr.featureRequest(r)
}

func (scr *SdlPlay) featureRequest(r featureRequest) error {
	if err := gui.CheckArgs(r.request, r.args, 1); err != nil {
		return err
	}

	switch r.request {
	case gui.ReqSetEmulation:
		cody, ok := r.args[0].(*hardware.Cody)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		scr.cody = cody
		scr.generation = 0

	case gui.ReqSetEventChan:
		events, ok := r.args[0].(chan gui.Event)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		scr.events = events

	case gui.ReqSetVisibility:
		show, ok := r.args[0].(bool)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		scr.showWindow(show)

	case gui.ReqScreenshot:
		filename, ok := r.args[0].(string)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		scr.send(scr.screenshot(filename))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, r.request)
	}

	return nil
}

// save the current frame. an empty filename means that a unique filename is
// created
func (scr *SdlPlay) screenshot(filename string) gui.EventScreenshot {
	if scr.cody == nil {
		return gui.EventScreenshot{Err: fmt.Errorf("screenshot: no emulation")}
	}
	if filename == "" {
		filename = paths.UniqueFilename("screenshot", "", "png")
	}
	err := render.SaveScreenshot(scr.cody.Video.Frame(), filename, scr.scale)
	return gui.EventScreenshot{Filename: filename, Err: err}
}
