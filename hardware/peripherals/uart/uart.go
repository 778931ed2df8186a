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
	"fmt"
	"io"

	"github.com/jetsetilly/gophercody/logger"
)

// Register offsets.
const (
	CNTL = 0x00
	CMND = 0x01
	STAT = 0x02
	DATA = 0x03
	RXHD = 0x04
	RXTL = 0x05
	TXHD = 0x06
	TXTL = 0x07
	RXBF = 0x08
	TXBF = RXBF + BufferSize
)

// Size is the number of addresses occupied by a UART. Addresses past the
// transmit buffer read as zero.
const Size = 0x20

// Bits in the STAT register.
const (
	DataAvailable = 0x01
	Overrun       = 0x02
	Enabled       = 0x40
)

// UART is a memory area on the bus.
type UART struct {
	label string
	queue *Queue
	tx    io.Writer

	control uint8
	command uint8

	rx  ringBuffer
	txb ringBuffer

	// any error from the tx writer is logged once and then further transmitted
	// data is discarded
	txErr error
}

// NewUART is the preferred method of initialisation for the UART type. The
// queue and tx arguments can both be nil.
func NewUART(label string, queue *Queue, tx io.Writer) *UART {
	if queue == nil {
		queue = NewQueue(0)
	}
	return &UART{
		label: label,
		queue: queue,
		tx:    tx,
	}
}

func (u *UART) String() string {
	return fmt.Sprintf("%s: stat=%02x rx=%d/%d tx=%d queue=%d", u.label, u.status(), u.rx.head, u.rx.tail, u.txb.len(), u.queue.Len())
}

// Label implements the memory.Area interface.
func (u *UART) Label() string {
	return u.label
}

// IsEnabled returns true if the UART has been enabled by the CMND register.
func (u *UART) IsEnabled() bool {
	return u.command&0x01 == 0x01
}

func (u *UART) status() uint8 {
	var s uint8
	if u.IsEnabled() {
		s |= Enabled
	}
	if u.queue.Len() > 0 {
		s |= DataAvailable
	}
	if u.queue.Overrun {
		s |= Overrun
	}
	return s
}

// Read implements the memory.Area interface.
func (u *UART) Read(offset uint16) uint8 {
	if offset == DATA {
		b, _ := u.queue.Pop()
		return b
	}
	return u.Peek(offset)
}

// Peek implements the memory.Peeker interface.
func (u *UART) Peek(offset uint16) uint8 {
	switch {
	case offset == CNTL:
		return u.control
	case offset == CMND:
		return u.command
	case offset == STAT:
		return u.status()
	case offset == DATA:
		b, _ := u.queue.Front()
		return b
	case offset == RXHD:
		return u.rx.head
	case offset == RXTL:
		return u.rx.tail
	case offset == TXHD:
		return u.txb.head
	case offset == TXTL:
		return u.txb.tail
	case offset >= RXBF && offset < TXBF:
		return u.rx.get(uint8(offset - RXBF))
	case offset >= TXBF && offset < TXBF+BufferSize:
		return u.txb.get(uint8(offset - TXBF))
	}
	return 0
}

// Write implements the memory.Area interface.
func (u *UART) Write(offset uint16, data uint8) {
	switch {
	case offset == CNTL:
		u.control = data
	case offset == CMND:
		u.command = data
		if !u.IsEnabled() {
			u.rx.setHead(0)
			u.txb.setTail(0)
		}
	case offset == RXHD:
		u.rx.setHead(data)
	case offset == RXTL:
		u.rx.setTail(data)
	case offset == TXHD:
		u.txb.setHead(data)
	case offset == TXTL:
		u.txb.setTail(data)
	case offset >= RXBF && offset < TXBF:
		u.rx.set(uint8(offset-RXBF), data)
	case offset >= TXBF && offset < TXBF+BufferSize:
		u.txb.set(uint8(offset-TXBF), data)
	}
}

// Poke implements the memory.Poker interface. The registers of the UART
// cannot be poked and the data is discarded. This allows a binary to be
// loaded across the UART area without error.
func (u *UART) Poke(_ uint16, _ uint8) {
}

// Tick should be called once per instruction. If the UART is enabled a single
// byte is moved from the queue into the receive buffer, if there is room, and
// the transmit buffer is emptied.
func (u *UART) Tick() {
	if !u.IsEnabled() {
		return
	}

	if !u.rx.full() {
		if b, ok := u.queue.Pop(); ok {
			u.rx.push(b)
		}
	}

	for {
		b, ok := u.txb.pop()
		if !ok {
			break
		}
		u.transmit(b)
	}
}

func (u *UART) transmit(b uint8) {
	if u.tx == nil || u.txErr != nil {
		return
	}
	if _, err := u.tx.Write([]byte{b}); err != nil {
		u.txErr = err
		logger.Logf(logger.Allow, "uart", "%s: transmit: %v", u.label, err)
	}
}
