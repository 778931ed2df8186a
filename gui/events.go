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

// Event is sent by the GUI over the event channel. The underlying type
// indicates the kind of event.
type Event interface{}

// EventQuit is sent when the user has asked to quit. For example, by closing
// the window.
type EventQuit struct{}

// EventScreenshot is sent after a screenshot has been saved or has failed
// to be saved.
type EventScreenshot struct {
	Filename string
	Err      error
}
