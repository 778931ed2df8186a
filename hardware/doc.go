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

// Package hardware is the base package for the Cody Computer emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Cody type is the root of the emulation and contains external references
// to all the Cody sub-systems. From here, the emulation can either be started
// to run continuously (with optional frame limiting) or it can be stepped one
// instruction at a time.
//
// The Cody type knows nothing about how the emulation is presented to the
// user. The video frame is available through the Video field and key events
// are given to the emulation with the QueueEvent() function.
package hardware
