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

package termplay

import (
	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/hardware"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	tp.featureReq <- featureRequest{request: request, args: args}
	return <-tp.featureErr
}

func (tp *TermPlay) serviceFeatureRequest(r featureRequest) {
	tp.featureErr <- tp.featureRequest(r)
}

func (tp *TermPlay) featureRequest(r featureRequest) error {
	if err := gui.CheckArgs(r.request, r.args, 1); err != nil {
		return err
	}

	switch r.request {
	case gui.ReqSetEmulation:
		cody, ok := r.args[0].(*hardware.Cody)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		tp.cody = cody
		tp.generation = 0
		tp.drawn = ""

	case gui.ReqSetEventChan:
		events, ok := r.args[0].(chan gui.Event)
		if !ok {
			return gui.WrongType(r.request, r.args[0])
		}
		tp.events = events

	case gui.ReqSetVisibility:
		// the terminal is always visible

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, r.request)
	}

	return nil
}
