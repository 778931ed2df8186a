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

// Package performance measures the speed of the emulation. The emulation is
// run, without a display, for a period of time after a short lead time and
// the number of frames generated is compared to the refresh rate of the Cody.
//
// The emulation can optionally be run through the CPU profiler and a memory
// profile taken at the end of the measurement period.
package performance
