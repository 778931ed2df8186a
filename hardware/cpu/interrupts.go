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

package cpu

// InterruptState is the state of the interrupt logic at the most recent
// instruction boundary.
type InterruptState int

// List of valid InterruptState values.
const (
	Idle InterruptState = iota
	NMIPending
	IRQPending
	Servicing
)

func (s InterruptState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case NMIPending:
		return "NMIPending"
	case IRQPending:
		return "IRQPending"
	case Servicing:
		return "Servicing"
	}
	return "unknown interrupt state"
}

// Interrupts models the NMI and IRQ inputs of the CPU.
//
// The NMI input is edge triggered. A transition from unasserted to asserted
// sets the latch and the latch is cleared when the interrupt is serviced.
// Holding the line asserted does not cause a second interrupt.
//
// The IRQ input is level triggered. An interrupt is serviced at every
// instruction boundary for which the line is asserted and the interrupt
// disable flag is clear. It is the responsibility of the interrupt handler to
// cause the device to release the line.
type Interrupts struct {
	nmiLine  bool
	nmiLatch bool
	irqLine  bool
	state    InterruptState
}

func (in *Interrupts) setNMI(asserted bool) {
	if asserted && !in.nmiLine {
		in.nmiLatch = true
	}
	in.nmiLine = asserted
}

func (in *Interrupts) setIRQ(asserted bool) {
	in.irqLine = asserted
}

// pending is true if any interrupt is requested, regardless of the interrupt
// disable flag. used to wake the CPU from WAI
func (in *Interrupts) pending() bool {
	return in.nmiLatch || in.irqLine
}

// boundary transitions the state machine at an instruction boundary
func (in *Interrupts) boundary(interruptDisable bool) InterruptState {
	switch {
	case in.nmiLatch:
		in.state = NMIPending
	case in.irqLine && !interruptDisable:
		in.state = IRQPending
	default:
		in.state = Idle
	}
	return in.state
}

// service marks the pending interrupt as being serviced
func (in *Interrupts) service() {
	if in.state == NMIPending {
		in.nmiLatch = false
	}
	in.state = Servicing
}

func (in *Interrupts) reset() {
	in.nmiLatch = false
	in.state = Idle
}
