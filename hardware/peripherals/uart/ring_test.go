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

package uart

import (
	"testing"

	"github.com/jetsetilly/gophercody/test"
)

func TestRingCapacity(t *testing.T) {
	var r ringBuffer
	test.ExpectSuccess(t, r.empty())

	for i := 1; i < BufferSize; i++ {
		test.ExpectFailure(t, r.full())
		test.ExpectSuccess(t, r.push(uint8(i)))
		test.ExpectEquality(t, r.len(), i)
	}

	// one slot is always unused
	test.ExpectSuccess(t, r.full())
	test.ExpectFailure(t, r.push(8))
	test.ExpectEquality(t, r.len(), BufferSize-1)

	for i := 1; i < BufferSize; i++ {
		v, ok := r.pop()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, uint8(i))
	}

	_, ok := r.pop()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.len(), 0)
}

func TestRingWrap(t *testing.T) {
	var r ringBuffer
	for i := 1; i < 16; i++ {
		test.ExpectSuccess(t, r.push(uint8(i)))
		test.ExpectSuccess(t, r.push(uint8(i+1)))
		test.ExpectEquality(t, r.len(), 2)
		v, _ := r.pop()
		test.ExpectEquality(t, v, uint8(i))
		v, _ = r.pop()
		test.ExpectEquality(t, v, uint8(i+1))
	}
	test.ExpectSuccess(t, r.empty())

	r.setHead(9)
	test.ExpectEquality(t, r.head, 1)
}
