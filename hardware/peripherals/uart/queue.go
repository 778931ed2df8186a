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
	"io"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/logger"
)

// DefaultCapacity is a suitable capacity for a Queue.
const DefaultCapacity = 0x10000

// Queue is a bounded sequence of bytes waiting to be received by a UART.
type Queue struct {
	data     []uint8
	capacity int

	// a byte has been dropped because the queue was full
	Overrun bool

	// total number of bytes dropped
	Dropped int
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// negative capacity is treated as zero.
func NewQueue(capacity int) *Queue {
	capacity = max(capacity, 0)
	return &Queue{
		data:     make([]uint8, 0, min(capacity, DefaultCapacity)),
		capacity: capacity,
	}
}

// Load the queue with all data from the reader. If normalise is true then
// CR LF and lone CR are both turned into a single LF.
//
// Any error from the reader is an IOError.
func (q *Queue) Load(r io.Reader, normalise bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf("uart: %v", curated.Errorf(curated.IOError, err))
	}

	if normalise {
		data = normaliseNewlines(data)
	}

	var dropped int
	for _, b := range data {
		if !q.Push(b) {
			dropped++
		}
	}

	logger.Logf(logger.Allow, "uart", "%d bytes queued", q.Len())
	if dropped > 0 {
		logger.Logf(logger.Allow, "uart", "queue overrun: %d bytes dropped", dropped)
	}

	return nil
}

func normaliseNewlines(data []uint8) []uint8 {
	n := make([]uint8, 0, len(data))
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			n = append(n, '\n')
		default:
			n = append(n, data[i])
		}
	}
	return n
}

// Push a byte onto the end of the queue. Returns false and sets the Overrun
// flag if the queue is full.
func (q *Queue) Push(b uint8) bool {
	if len(q.data) >= q.capacity {
		q.Overrun = true
		q.Dropped++
		return false
	}
	q.data = append(q.data, b)
	return true
}

// Pop the next byte from the front of the queue. Returns false if the queue
// is empty.
func (q *Queue) Pop() (uint8, bool) {
	if len(q.data) == 0 {
		return 0, false
	}
	b := q.data[0]
	q.data = q.data[1:]
	return b, true
}

// Front returns the next byte without removing it from the queue.
func (q *Queue) Front() (uint8, bool) {
	if len(q.data) == 0 {
		return 0, false
	}
	return q.data[0], true
}

// Len returns the number of bytes in the queue.
func (q *Queue) Len() int {
	return len(q.data)
}
