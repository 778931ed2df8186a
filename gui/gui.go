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

// Package gui is an abstraction layer for front ends that present the Cody
// emulation to the user. The front ends themselves are in sub-packages.
//
// Many GUI frameworks (notably SDL) require all window handling to happen in
// the main thread of the program. For this reason the GUI interface has a
// Service() function, which is called repeatedly from the main thread, while
// the emulation runs in a different goroutine.
//
// Communication from the emulation side to the GUI is with the SetFeature()
// function. Communication in the other direction is with an Event channel,
// given to the GUI with the ReqSetEventChan request. Key presses are given
// directly to the emulation with the QueueEvent() function of the Cody.
package gui

import "io"

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Service should not pause or loop longer than necessary. It MUST ONLY be
	// called as part of a larger loop from the main thread.
	Service()

	// Destroy cleans up resources used by the GUI. Any problems are written
	// to the output.
	Destroy(output io.Writer)

	// Send a request to set a GUI feature. Safe to call from any goroutine.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
