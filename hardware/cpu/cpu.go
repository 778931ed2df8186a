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

import (
	"fmt"

	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercody/hardware/cpu/registers"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/logger"
)

// CPU implements the 65C02 found in the Cody Computer. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem      cpubus.Memory
	dispatch [256]dispatch

	interrupts Interrupts

	// last result. see the execution package
	LastResult execution.Result

	// the CPU has executed a WAI instruction and is waiting for an interrupt
	Waiting bool

	// the CPU has executed a STP instruction. requires a Reset()
	Stopped bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are zeroed. Reset() should be called before the first Step().
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.StatusRegister{},
	}

	for i := range instructions.Definitions {
		defn := &instructions.Definitions[i]
		mc.dispatch[i] = dispatch{
			defn:    defn,
			resolve: addressingModes[defn.AddressingMode],
			operate: operators[defn.Operator],
		}
	}

	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset the CPU. The PC is loaded from the reset vector, the stack pointer is
// set to 0xfd and interrupts are disabled. Other registers and the decimal
// flag are unchanged. Halts caused by WAI and STP are cleared, as are any
// pending interrupts.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Waiting = false
	mc.Stopped = false
	mc.interrupts.reset()

	mc.SP.Load(0xfd)
	mc.Status.InterruptDisable = true
	mc.Status.Break = true
	mc.PC.Load(mc.read16(cpubus.Reset))

	logger.Logf(logger.Allow, "cpu", "reset: PC=%s", mc.PC)
}

// SetNMI sets the state of the NMI input.
func (mc *CPU) SetNMI(asserted bool) {
	mc.interrupts.setNMI(asserted)
}

// SetIRQ sets the state of the IRQ input.
func (mc *CPU) SetIRQ(asserted bool) {
	mc.interrupts.setIRQ(asserted)
}

// InterruptState returns the state of the interrupt logic at the most recent
// instruction boundary.
func (mc *CPU) InterruptState() InterruptState {
	return mc.interrupts.state
}

// Step executes the next instruction and returns the number of cycles
// consumed.
//
// If an interrupt is pending and can be serviced then the interrupt sequence
// is performed instead of an instruction. If the CPU is halted then a single
// idle cycle is consumed.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.Stopped {
		return mc.idle()
	}

	if mc.Waiting {
		if !mc.interrupts.pending() {
			return mc.idle()
		}

		// an IRQ wakes the CPU even if interrupts are disabled. in that case
		// execution continues with the next instruction
		mc.Waiting = false
	}

	switch mc.interrupts.boundary(mc.Status.InterruptDisable) {
	case NMIPending:
		mc.interrupts.service()
		return mc.interrupt(execution.NMI, cpubus.NMI)
	case IRQPending:
		mc.interrupts.service()
		return mc.interrupt(execution.IRQ, cpubus.IRQ)
	}

	d := &mc.dispatch[mc.readPC()]
	mc.LastResult.Defn = d.defn

	ea := d.resolve(mc)
	d.operate(mc, ea)

	mc.LastResult.Cycles = d.defn.Cycles
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles++
	}
	if mc.LastResult.Decimal {
		mc.LastResult.Cycles++
	}

	mc.LastResult.Final = true

	return mc.LastResult.Cycles
}

func (mc *CPU) idle() int {
	mc.LastResult.Halted = true
	mc.LastResult.Cycles = 1
	mc.LastResult.Final = true
	return 1
}

// interrupt performs the interrupt sequence for hardware interrupts. the
// sequence for BRK is in the brk() operator
func (mc *CPU) interrupt(kind execution.Interrupt, vector uint16) int {
	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value() &^ registers.Break)
	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PC.Load(mc.read16(vector))

	mc.LastResult.Interrupt = kind
	mc.LastResult.Cycles = 7
	mc.LastResult.Final = true

	return 7
}

// read a byte from memory. memory errors are not fatal and are noted in the
// LastResult
func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	if err != nil {
		mc.LastResult.Error = err.Error()
	}
	return v
}

func (mc *CPU) write(address uint16, data uint8) {
	err := mc.mem.Write(address, data)
	if err != nil {
		mc.LastResult.Error = err.Error()
	}
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16ZeroPage reads a 16 bit pointer from the zero page. the high byte
// wraps around within the zero page
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := mc.read(uint16(address))
	hi := mc.read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// readPC reads the byte pointed to by the PC, advances the PC and notes the
// number of bytes read by the instruction
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) push(v uint8) {
	mc.write(0x0100|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read(0x0100 | mc.SP.Address())
}
