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

package gui

import (
	"fmt"

	"github.com/jetsetilly/gophercody/curated"
)

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. Arguments must be of the type specified or
// else an error is returned.
const (
	// the Cody instance to be presented by the GUI. the GUI will show the
	// most recent video frame and send key events to the Cody
	ReqSetEmulation FeatureReq = "ReqSetEmulation" // *hardware.Cody

	// the channel on which the GUI sends events
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// whether the gui is visible or not
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// save the current frame as a PNG file. the result is sent as an
	// EventScreenshot. the filename can be empty in which case a unique
	// filename is created
	ReqScreenshot FeatureReq = "ReqScreenshot" // string
)

// CheckArgs returns an error if the number of arguments is not as expected.
func CheckArgs(request FeatureReq, args []FeatureReqData, n int) error {
	if len(args) != n {
		return curated.Errorf("gui: %v", fmt.Errorf("%s: expected %d arguments, got %d", request, n, len(args)))
	}
	return nil
}

// WrongType is the error returned when an argument is of the wrong type.
func WrongType(request FeatureReq, arg FeatureReqData) error {
	return curated.Errorf("gui: %v", fmt.Errorf("%s: argument of wrong type (%T)", request, arg))
}
