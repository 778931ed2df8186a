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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/hardware/memory/memorymap"
	"github.com/jetsetilly/gophercody/test"
)

const validMemMap = `0000 -> 9eff	RAM
9f00 -> 9fff	VIA
a000 -> d47f	Video
d480 -> d49f	UART1
d4a0 -> d4bf	UART2
d4c0 -> dfff	HighRAM
e000 -> ffff	ROM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x0000), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x9f0f), memorymap.VIA)
	test.ExpectEquality(t, memorymap.MapAddress(0xd000), memorymap.Video)
	test.ExpectEquality(t, memorymap.MapAddress(0xd4a3), memorymap.UART2)
	test.ExpectEquality(t, memorymap.MapAddress(0xfffc), memorymap.ROM)
	test.ExpectSuccess(t, memorymap.IsArea(memorymap.BankSelect, memorymap.HighRAM))

	origin, memtop := memorymap.Range(memorymap.UART1)
	test.ExpectEquality(t, origin, 0xd480)
	test.ExpectEquality(t, memtop, 0xd49f)
}
