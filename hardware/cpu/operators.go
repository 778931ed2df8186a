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
	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercody/hardware/cpu/registers"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/logger"
)

var operators = map[instructions.Operator]operator{
	instructions.ADC: (*CPU).adc,
	instructions.AND: (*CPU).and,
	instructions.ASL: (*CPU).asl,
	instructions.BBR: (*CPU).bbr,
	instructions.BBS: (*CPU).bbs,
	instructions.BCC: func(mc *CPU, ea effective) { mc.branch(!mc.Status.Carry, ea) },
	instructions.BCS: func(mc *CPU, ea effective) { mc.branch(mc.Status.Carry, ea) },
	instructions.BEQ: func(mc *CPU, ea effective) { mc.branch(mc.Status.Zero, ea) },
	instructions.BIT: (*CPU).bit,
	instructions.BMI: func(mc *CPU, ea effective) { mc.branch(mc.Status.Sign, ea) },
	instructions.BNE: func(mc *CPU, ea effective) { mc.branch(!mc.Status.Zero, ea) },
	instructions.BPL: func(mc *CPU, ea effective) { mc.branch(!mc.Status.Sign, ea) },
	instructions.BRA: func(mc *CPU, ea effective) { mc.branch(true, ea) },
	instructions.BRK: (*CPU).brk,
	instructions.BVC: func(mc *CPU, ea effective) { mc.branch(!mc.Status.Overflow, ea) },
	instructions.BVS: func(mc *CPU, ea effective) { mc.branch(mc.Status.Overflow, ea) },
	instructions.CLC: func(mc *CPU, _ effective) { mc.Status.Carry = false },
	instructions.CLD: func(mc *CPU, _ effective) { mc.Status.DecimalMode = false },
	instructions.CLI: func(mc *CPU, _ effective) { mc.Status.InterruptDisable = false },
	instructions.CLV: func(mc *CPU, _ effective) { mc.Status.Overflow = false },
	instructions.CMP: func(mc *CPU, ea effective) { mc.compare(mc.A, ea) },
	instructions.CPX: func(mc *CPU, ea effective) { mc.compare(mc.X, ea) },
	instructions.CPY: func(mc *CPU, ea effective) { mc.compare(mc.Y, ea) },
	instructions.DEC: (*CPU).dec,
	instructions.DEX: func(mc *CPU, _ effective) { mc.load(&mc.X, mc.X.Value()-1) },
	instructions.DEY: func(mc *CPU, _ effective) { mc.load(&mc.Y, mc.Y.Value()-1) },
	instructions.EOR: (*CPU).eor,
	instructions.INC: (*CPU).inc,
	instructions.INX: func(mc *CPU, _ effective) { mc.load(&mc.X, mc.X.Value()+1) },
	instructions.INY: func(mc *CPU, _ effective) { mc.load(&mc.Y, mc.Y.Value()+1) },
	instructions.JMP: func(mc *CPU, ea effective) { mc.PC.Load(ea.address) },
	instructions.JSR: (*CPU).jsr,
	instructions.LDA: func(mc *CPU, ea effective) { mc.load(&mc.A, mc.read(ea.address)) },
	instructions.LDX: func(mc *CPU, ea effective) { mc.load(&mc.X, mc.read(ea.address)) },
	instructions.LDY: func(mc *CPU, ea effective) { mc.load(&mc.Y, mc.read(ea.address)) },
	instructions.LSR: (*CPU).lsr,
	instructions.NOP: func(_ *CPU, _ effective) {},
	instructions.ORA: (*CPU).ora,
	instructions.PHA: func(mc *CPU, _ effective) { mc.push(mc.A.Value()) },
	instructions.PHP: func(mc *CPU, _ effective) { mc.push(mc.Status.Value() | registers.Break) },
	instructions.PHX: func(mc *CPU, _ effective) { mc.push(mc.X.Value()) },
	instructions.PHY: func(mc *CPU, _ effective) { mc.push(mc.Y.Value()) },
	instructions.PLA: func(mc *CPU, _ effective) { mc.load(&mc.A, mc.pull()) },
	instructions.PLP: func(mc *CPU, _ effective) { mc.pullStatus() },
	instructions.PLX: func(mc *CPU, _ effective) { mc.load(&mc.X, mc.pull()) },
	instructions.PLY: func(mc *CPU, _ effective) { mc.load(&mc.Y, mc.pull()) },
	instructions.RMB: (*CPU).rmb,
	instructions.ROL: (*CPU).rol,
	instructions.ROR: (*CPU).ror,
	instructions.RTI: (*CPU).rti,
	instructions.RTS: (*CPU).rts,
	instructions.SBC: (*CPU).sbc,
	instructions.SEC: func(mc *CPU, _ effective) { mc.Status.Carry = true },
	instructions.SED: func(mc *CPU, _ effective) { mc.Status.DecimalMode = true },
	instructions.SEI: func(mc *CPU, _ effective) { mc.Status.InterruptDisable = true },
	instructions.SMB: (*CPU).smb,
	instructions.STA: func(mc *CPU, ea effective) { mc.write(ea.address, mc.A.Value()) },
	instructions.STP: (*CPU).stp,
	instructions.STX: func(mc *CPU, ea effective) { mc.write(ea.address, mc.X.Value()) },
	instructions.STY: func(mc *CPU, ea effective) { mc.write(ea.address, mc.Y.Value()) },
	instructions.STZ: func(mc *CPU, ea effective) { mc.write(ea.address, 0x00) },
	instructions.TAX: func(mc *CPU, _ effective) { mc.load(&mc.X, mc.A.Value()) },
	instructions.TAY: func(mc *CPU, _ effective) { mc.load(&mc.Y, mc.A.Value()) },
	instructions.TRB: (*CPU).trb,
	instructions.TSB: (*CPU).tsb,
	instructions.TSX: func(mc *CPU, _ effective) { mc.load(&mc.X, mc.SP.Value()) },
	instructions.TXA: func(mc *CPU, _ effective) { mc.load(&mc.A, mc.X.Value()) },
	instructions.TXS: func(mc *CPU, _ effective) { mc.SP.Load(mc.X.Value()) },
	instructions.TYA: func(mc *CPU, _ effective) { mc.load(&mc.A, mc.Y.Value()) },
	instructions.WAI: func(mc *CPU, _ effective) { mc.Waiting = true },
}

// load value into register and set the sign and zero flags
func (mc *CPU) load(r *registers.Register, v uint8) {
	r.Load(v)
	mc.Status.SetNZ(v)
}

func (mc *CPU) branch(condition bool, ea effective) {
	if !condition {
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.LastResult.PageFault = mc.PC.Address()&0xff00 != ea.target&0xff00
	mc.PC.Load(ea.target)
}

func (mc *CPU) compare(r registers.Register, ea effective) {
	mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = r.Compare(mc.read(ea.address))
}

// modify performs a read-modify-write operation on the accumulator or on
// memory, depending on the addressing mode. the sign and zero flags are set
// from the result
func (mc *CPU) modify(ea effective, f func(r *registers.Register)) {
	if mc.LastResult.Defn.AddressingMode == instructions.Accumulator {
		f(&mc.A)
		mc.Status.SetNZ(mc.A.Value())
		return
	}

	r := registers.NewRegister(mc.read(ea.address), "")
	f(&r)
	mc.write(ea.address, r.Value())
	mc.Status.SetNZ(r.Value())
}

func (mc *CPU) adc(ea effective) {
	v := mc.read(ea.address)
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimal(v, mc.Status.Carry)
		mc.LastResult.Decimal = true
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	}
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) sbc(ea effective) {
	v := mc.read(ea.address)
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimal(v, mc.Status.Carry)
		mc.LastResult.Decimal = true
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	}
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) and(ea effective) {
	mc.A.AND(mc.read(ea.address))
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) eor(ea effective) {
	mc.A.EOR(mc.read(ea.address))
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) ora(ea effective) {
	mc.A.ORA(mc.read(ea.address))
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) asl(ea effective) {
	mc.modify(ea, func(r *registers.Register) { mc.Status.Carry = r.ASL() })
}

func (mc *CPU) lsr(ea effective) {
	mc.modify(ea, func(r *registers.Register) { mc.Status.Carry = r.LSR() })
}

func (mc *CPU) rol(ea effective) {
	mc.modify(ea, func(r *registers.Register) { mc.Status.Carry = r.ROL(mc.Status.Carry) })
}

func (mc *CPU) ror(ea effective) {
	mc.modify(ea, func(r *registers.Register) { mc.Status.Carry = r.ROR(mc.Status.Carry) })
}

func (mc *CPU) inc(ea effective) {
	mc.modify(ea, func(r *registers.Register) { r.Load(r.Value() + 1) })
}

func (mc *CPU) dec(ea effective) {
	mc.modify(ea, func(r *registers.Register) { r.Load(r.Value() - 1) })
}

// BIT sets the overflow flag from bit 6 of the operand. the immediate form
// only affects the zero flag
func (mc *CPU) bit(ea effective) {
	v := mc.read(ea.address)
	mc.Status.Zero = mc.A.Value()&v == 0
	if mc.LastResult.Defn.AddressingMode != instructions.Immediate {
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40
	}
}

// TRB and TSB set the zero flag from the AND of the accumulator and the
// operand as it was before modification
func (mc *CPU) trb(ea effective) {
	v := mc.read(ea.address)
	mc.Status.Zero = mc.A.Value()&v == 0
	mc.write(ea.address, v&^mc.A.Value())
}

func (mc *CPU) tsb(ea effective) {
	v := mc.read(ea.address)
	mc.Status.Zero = mc.A.Value()&v == 0
	mc.write(ea.address, v|mc.A.Value())
}

func (mc *CPU) rmb(ea effective) {
	v := mc.read(ea.address)
	mc.write(ea.address, v&^(0x01<<mc.LastResult.Defn.Bit()))
}

func (mc *CPU) smb(ea effective) {
	v := mc.read(ea.address)
	mc.write(ea.address, v|(0x01<<mc.LastResult.Defn.Bit()))
}

func (mc *CPU) bbr(ea effective) {
	v := mc.read(ea.address)
	mc.branch(v&(0x01<<mc.LastResult.Defn.Bit()) == 0x00, ea)
}

func (mc *CPU) bbs(ea effective) {
	v := mc.read(ea.address)
	mc.branch(v&(0x01<<mc.LastResult.Defn.Bit()) != 0x00, ea)
}

// BRK skips the byte following the opcode. the return address pushed to the
// stack is therefore the address of the BRK instruction plus two
func (mc *CPU) brk(_ effective) {
	mc.PC.Add(1)
	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value() | registers.Break)
	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PC.Load(mc.read16(cpubus.IRQ))
}

// the address pushed by JSR is the address of the last byte of the JSR
// instruction
func (mc *CPU) jsr(ea effective) {
	rtn := mc.PC.Address() - 1
	mc.push(uint8(rtn >> 8))
	mc.push(uint8(rtn))
	mc.PC.Load(ea.address)
}

func (mc *CPU) rts(_ effective) {
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load(((uint16(hi) << 8) | uint16(lo)) + 1)
}

func (mc *CPU) rti(_ effective) {
	mc.pullStatus()
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// the break flag is not a real flag and always reads as set
func (mc *CPU) pullStatus() {
	mc.Status.FromValue(mc.pull())
	mc.Status.Break = true
}

func (mc *CPU) stp(_ effective) {
	mc.Stopped = true
	logger.Logf(logger.Allow, "cpu", "STP at %04x", mc.LastResult.Address)
}
