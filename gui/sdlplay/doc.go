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

// Package sdlplay is a simple SDL front end for the Cody emulation. It shows
// the video frame in a scaled window and sends key events to the emulation.
//
// The Escape key and closing the window both cause an EventQuit to be sent.
// The F12 key saves a screenshot in the current directory.
//
// Keys are translated into keyboard.Event values with both the physical
// position of the key (the SDL scancode) and the symbolic meaning of the key
// (the SDL keycode, shifted as for a US layout keyboard) filled in. The mode
// of the keyboard matrix decides which is used.
//
// All functions other than SetFeature() and DisplayRefreshRate() must be
// called from the main thread.
package sdlplay
