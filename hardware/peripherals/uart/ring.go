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

// BufferSize is the size of each ring buffer.
const BufferSize = 8

// ringBuffer is one of the UART's ring buffers. the head and tail registers
// are accessible to the CPU so there is one less usable slot than BufferSize
// so that a full buffer can be told apart from an empty one
type ringBuffer struct {
	buf  [BufferSize]uint8
	head uint8
	tail uint8
}

func (r *ringBuffer) empty() bool {
	return r.head == r.tail
}

func (r *ringBuffer) full() bool {
	return (r.head+1)%BufferSize == r.tail
}

func (r *ringBuffer) len() int {
	return int(r.head-r.tail) % BufferSize
}

func (r *ringBuffer) setHead(v uint8) {
	r.head = v % BufferSize
}

func (r *ringBuffer) setTail(v uint8) {
	r.tail = v % BufferSize
}

func (r *ringBuffer) push(v uint8) bool {
	if r.full() {
		return false
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % BufferSize
	return true
}

func (r *ringBuffer) pop() (uint8, bool) {
	if r.empty() {
		return 0, false
	}
	v := r.buf[r.tail]
	r.tail = (r.tail + 1) % BufferSize
	return v, true
}

func (r *ringBuffer) get(idx uint8) uint8 {
	return r.buf[idx%BufferSize]
}

func (r *ringBuffer) set(idx uint8, v uint8) {
	r.buf[idx%BufferSize] = v
}
