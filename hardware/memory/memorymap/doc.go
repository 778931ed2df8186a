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

// Package memorymap describes the layout of the Cody Computer's address space.
//
// Unlike the memory of some other machines there are no mirrors. Every address
// belongs to exactly one area and MapAddress() reports which.
//
//	area := memorymap.MapAddress(0xd480)
//
// The VIA area is the exception in that the sixteen VIA registers repeat
// throughout the area. The VIA implementation handles that itself.
package memorymap
