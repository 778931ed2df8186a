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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/hardware/cpu/registers"
	"github.com/jetsetilly/gophercody/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)

	pc.Load(0x12fe)
	test.ExpectEquality(t, pc.Hi(), 0x12)
	test.ExpectEquality(t, pc.Lo(), 0xfe)

	// wrap around
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 0x0001)
}
