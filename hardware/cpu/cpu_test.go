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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
	"github.com/jetsetilly/gophercody/test"
)

func TestReset(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")

	// decimal flag is not changed by reset
	mem.putInstructions(0x0200, 0xf8, 0xa2, 0x10, 0x9a)
	step(t, mc) // SED
	step(t, mc) // LDX #$10
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 0x10)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.DecimalMode)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.X.Value(), 0x10)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0x0200, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8, 0x08, 0x28)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-Bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-BDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")

	// PHP; PLP
	test.ExpectEquality(t, step(t, mc), 3) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.Break = false

	test.ExpectEquality(t, step(t, mc), 4) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "nv-BdIzc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0xa9, 0x01, // LDA #$01
		0x69, 0x0a, // ADC #$0a
		0x38,       // SEC
		0xe9, 0x01, // SBC #$01
		0xa9, 0x7f, // LDA #$7f
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
		0xa9, 0xff, // LDA #$ff
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0b)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0a)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Overflow)
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xe9, 0x01, // SBC #$01
		0xa9, 0x98, // LDA #$98
		0x69, 0x01, // ADC #$01
		0xd8,       // CLD
		0x69, 0x01, // ADC #$01
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)

	// decimal mode arithmetic costs an additional cycle
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.LastResult.Decimal)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.A.Value(), 0x09)
	test.ExpectSuccess(t, mc.Status.Carry)

	// zero flag is set from the adjusted result
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)

	// binary arithmetic once more
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
}

func TestAddressingModes(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.internal[0x0015] = 0x11
	mem.internal[0x007f] = 0x22
	mem.putVector(0x0020, 0x3000)
	mem.internal[0x3000] = 0x33
	mem.internal[0x00ff] = 0x00
	mem.internal[0x0000] = 0x31
	mem.internal[0x3100] = 0x44
	mem.internal[0x1100] = 0x55

	mem.putInstructions(0x0200,
		0xa2, 0x05, // LDX #$05
		0xb5, 0x10, // LDA $10,X
		0xa2, 0xff, // LDX #$ff
		0xb5, 0x80, // LDA $80,X
		0xb2, 0x20, // LDA ($20)
		0xa2, 0x00, // LDX #$00
		0xa1, 0xff, // LDA ($ff,X)
		0xa0, 0xff, // LDY #$ff
		0xb9, 0x01, 0x10, // LDA $1001,Y
		0x9d, 0x00, 0x40, // STA $4000,X
		0x64, 0x15, // STZ $15
		0xad, 0x00, 0x40, // LDA $4000
	)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x11)

	// zero page indexing wraps around in the zero page
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x22)

	// zero page indirect
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x33)

	// pointer in indexed indirect wraps around in the zero page
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x44)

	// page fault on page sensitive instruction
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.A.Value(), 0x55)

	// store instructions always take the same number of cycles
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	mem.assert(t, 0x4000, 0x55)

	test.ExpectEquality(t, step(t, mc), 3)
	mem.assert(t, 0x0015, 0x00)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.PC.Address(), 0x021b)
}

func TestBranching(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	asm(0x0200).
		equ("first", 0x020b).
		op(0xa9, 0x00).     // LDA #$00
		rel(0xd0, "first"). // BNE first
		rel(0xf0, "first"). // BEQ first
		put(t, mem)
	asm(0x020b).
		equ("second", 0x028c).
		rel(0x80, "second"). // BRA second
		put(t, mem)
	asm(0x028c).
		equ("third", 0x030d).
		rel(0x80, "third"). // BRA third
		put(t, mem)
	asm(0x030d).
		label("self").
		rel(0x80, "self"). // BRA self
		put(t, mem)

	step(t, mc)

	// branch not taken
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x0204)

	// branch taken
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x020b)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x028c)

	// branch taken to another page
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.PC.Address(), 0x030d)

	// branch to self
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x030d)
}

func TestLoop(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	a := asm(0x0200).
		op(0xa2, 0x05). // LDX #$05
		op(0xa9, 0x00). // LDA #$00
		label("loop").
		op(0x18).          // CLC
		op(0x69, 0x03).    // ADC #$03
		op(0xca).          // DEX
		rel(0xd0, "loop"). // BNE loop
		abs(0x20, "sub").  // JSR sub
		label("done").
		op(0xdb). // STP
		label("sub").
		op(0x8d, 0x00, 0x30). // STA $3000
		op(0x60)              // RTS
	a.put(t, mem)

	// the branch is a backward branch within the page
	test.ExpectEquality(t, a.addr(t, "loop"), 0x0204)

	var cycles int
	for i := 0; i < 100 && !mc.Stopped; i++ {
		cycles += step(t, mc)
	}
	test.DemandSuccess(t, mc.Stopped)

	mem.assert(t, 0x3000, 0x0f)
	test.ExpectEquality(t, mc.LastResult.Address, a.addr(t, "done"))
	test.ExpectEquality(t, mc.X.Value(), 0x00)

	// LDX, LDA, five passes of the loop (the last branch not taken), JSR,
	// STA, RTS and STP
	test.ExpectEquality(t, cycles, 2+2+5*(2+2+2+3)-1+6+4+6+3)
}

func TestJumps(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0x20, 0x00, 0x30, // JSR $3000
		0x6c, 0xff, 0x30, // JMP ($30ff)
	)
	mem.putInstructions(0x3000, 0x60) // RTS
	mem.internal[0x30ff] = 0x00
	mem.internal[0x3100] = 0x40
	mem.putInstructions(0x4000,
		0xa2, 0x02, // LDX #$02
		0x7c, 0x00, 0x50, // JMP ($5000,X)
	)
	mem.putVector(0x5002, 0x6000)
	mem.putInstructions(0x6000, 0x4c, 0x00, 0x02) // JMP $0200

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)

	// no page wrapping bug when reading the indirect address
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x4000)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x6000)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
}

func TestBIT(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.internal[0x0010] = 0xc0
	mem.putInstructions(0x0200,
		0xa9, 0x01, // LDA #$01
		0x89, 0xc0, // BIT #$c0
		0x24, 0x10, // BIT $10
		0xa9, 0x40, // LDA #$40
		0x2c, 0x10, 0x00, // BIT $0010
	)

	step(t, mc)

	// immediate mode only affects the zero flag
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Overflow)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectEquality(t, mc.A.Value(), 0x40)
}

func TestTestAndSetBits(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.internal[0x0010] = 0x33
	mem.internal[0x0011] = 0xf0
	mem.putInstructions(0x0200,
		0xa9, 0x0f, // LDA #$0f
		0x04, 0x10, // TSB $10
		0x14, 0x11, // TRB $11
		0x14, 0x10, // TRB $10
	)

	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.Status.Zero)
	mem.assert(t, 0x0010, 0x3f)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	mem.assert(t, 0x0011, 0xf0)

	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	mem.assert(t, 0x0010, 0x30)

	test.ExpectEquality(t, mc.A.Value(), 0x0f)
}

func TestBitInstructions(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0x87, 0x10, // SMB0 $10
		0xf7, 0x10, // SMB7 $10
		0x17, 0x10, // RMB1 $10
		0x07, 0x10, // RMB0 $10
		0x5f, 0x10, 0x05, // BBR5 $10,+5
	)
	mem.putInstructions(0x0210,
		0xe7, 0x10, // SMB6 $10
		0x6f, 0x10, 0x05, // BBR6 $10,+5
		0x5f, 0x10, 0x03, // BBR5 $10,+3
	)
	mem.putInstructions(0x021b,
		0xff, 0x10, 0x02, // BBS7 $10,+2
	)

	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x0010, 0x01)
	step(t, mc)
	mem.assert(t, 0x0010, 0x81)
	step(t, mc)
	mem.assert(t, 0x0010, 0x81)
	step(t, mc)
	mem.assert(t, 0x0010, 0x80)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0210)

	step(t, mc)
	mem.assert(t, 0x0010, 0xc0)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x0215)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x021b)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0220)
}

func TestStackInstructions(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0xa2, 0x42, // LDX #$42
		0xda,       // PHX
		0x7a,       // PLY
		0xa9, 0x00, // LDA #$00
		0x48,       // PHA
		0xa9, 0x01, // LDA #$01
		0x68,       // PLA
		0xba,       // TSX
		0xa2, 0x80, // LDX #$80
		0x9a,       // TXS
	)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	mem.assert(t, 0x01fd, 0x42)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Y.Value(), 0x42)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.Sign)

	// TXS does not affect the status flags
	step(t, mc)
	mc.Status.Sign = false
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x80)
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.internal[0x0010] = 0x80
	mem.internal[0x10ff] = 0x01
	mem.putInstructions(0x0200,
		0x06, 0x10, // ASL $10
		0x26, 0x10, // ROL $10
		0xa2, 0x01, // LDX #$01
		0x1e, 0xfe, 0x10, // ASL $10fe,X
		0xfe, 0xfe, 0x10, // INC $10fe,X
		0x3a,       // DEC A
		0x1a,       // INC A
		0x4a,       // LSR A
	)

	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x0010, 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	mem.assert(t, 0x0010, 0x01)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	mem.assert(t, 0x10ff, 0x02)

	test.ExpectEquality(t, step(t, mc), 7)
	mem.assert(t, 0x10ff, 0x03)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestBRK(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putVector(0xfffe, 0x3000)
	mem.putInstructions(0x0200,
		0xf8,       // SED
		0x00, 0xea, // BRK (with signature byte)
	)
	mem.putInstructions(0x3000, 0x40) // RTI

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x03)
	mem.assert(t, 0x01fb, 0x3c)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectFailure(t, mc.Status.DecimalMode)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectSuccess(t, mc.Status.DecimalMode)
}

func TestUndefinedOpcodes(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0xa9, 0x42, // LDA #$42
		0x02, 0xaa, // undefined: 2 bytes, 2 cycles
		0x5c, 0x00, 0x00, // undefined: 3 bytes, 8 cycles
		0x03,       // undefined: 1 byte, 1 cycle
		0x44, 0x10, // undefined: 2 bytes, 3 cycles
		0xdc, 0x00, 0x10, // undefined: 3 bytes, 4 cycles
	)

	step(t, mc)
	status := mc.Status.Value()

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, step(t, mc), 1)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, step(t, mc), 4)

	test.ExpectEquality(t, mc.PC.Address(), 0x020d)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.Status.Value(), status)
}

func TestWAI(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200,
		0x78, // SEI
		0xcb, // WAI
		0xe8, // INX
	)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.Waiting)

	// no interrupt so the CPU idles
	test.ExpectEquality(t, step(t, mc), 1)
	test.ExpectSuccess(t, mc.LastResult.Halted)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)

	// a masked IRQ wakes the CPU but is not serviced
	mc.SetIRQ(true)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectFailure(t, mc.Waiting)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.X.Value(), 0x01)
}

func TestSTP(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.putInstructions(0x0200, 0xdb) // STP

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.Stopped)

	// interrupts do not restart a stopped CPU
	mc.SetNMI(true)
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, step(t, mc), 1)
		test.ExpectEquality(t, mc.PC.Address(), 0x0201)
	}

	mc.Reset()
	test.ExpectFailure(t, mc.Stopped)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
}
