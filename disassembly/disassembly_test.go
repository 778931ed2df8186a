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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophercody/disassembly"
	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
	"github.com/jetsetilly/gophercody/test"
)

type mem map[uint16]uint8

func (m mem) Peek(address uint16) (uint8, error) {
	return m[address], nil
}

func program(origin uint16, data ...uint8) mem {
	m := make(mem)
	for i, b := range data {
		m[origin+uint16(i)] = b
	}
	return m
}

func TestDecode(t *testing.T) {
	m := program(0x0200,
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0xd0, // STA $d000
		0xd0, 0xfb, // BNE $0202
		0x0f, 0x10, 0x02, // BBR0 $10,$020c
		0xbd, 0x00, 0x30, // LDA $3000,X
		0x02, 0x55, // undefined
	)

	e := disassembly.Decode(m, 0x0200)
	test.ExpectEquality(t, e.String(), "$0200 LDA #$01")
	test.ExpectEquality(t, e.Bytecode, "a9 01")
	test.ExpectEquality(t, e.Cycles(), "2")
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)

	e = disassembly.Decode(m, 0x0202)
	test.ExpectEquality(t, e.String(), "$0202 STA $d000")
	test.ExpectEquality(t, e.Bytecode, "8d 00 d0")

	e = disassembly.Decode(m, 0x0205)
	test.ExpectEquality(t, e.String(), "$0205 BNE $0202")

	e = disassembly.Decode(m, 0x0207)
	test.ExpectEquality(t, e.String(), "$0207 BBR0 $10,$020c")

	e = disassembly.Decode(m, 0x020a)
	test.ExpectEquality(t, e.String(), "$020a LDA $3000,X")
	test.ExpectEquality(t, e.Cycles(), "4*")

	e = disassembly.Decode(m, 0x020d)
	test.ExpectEquality(t, e.String(), "$020d NOP #$55")
	test.ExpectEquality(t, e.Notes(), "undefined")
}

func TestExecution(t *testing.T) {
	m := program(0x0200, 0xd0, 0xfe)
	e := disassembly.Decode(m, 0x0200)

	r := e.Result
	r.Cycles = 3
	r.BranchSuccess = true
	e.UpdateExecution(r)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.Cycles(), "3")
	test.ExpectEquality(t, e.Notes(), "branch succeeded")

	// result for a different address is ignored
	r.Address = 0x0300
	r.Cycles = 10
	e.UpdateExecution(r)
	test.ExpectEquality(t, e.Cycles(), "3")

	e = disassembly.FormatResult(execution.Result{Address: 0x1234, Interrupt: execution.IRQ, Cycles: 7})
	test.ExpectEquality(t, e.String(), "$1234 IRQ")
	test.ExpectEquality(t, e.Cycles(), "?")

	e = disassembly.FormatResult(execution.Result{Address: 0x1234, Halted: true, Cycles: 1})
	test.ExpectEquality(t, e.String(), "$1234 ---")
}

func TestLinear(t *testing.T) {
	data := []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0xd0, // STA $d000
		0xea,       // NOP
		0x8d, 0x00, // STA cut short
	}

	var s strings.Builder
	n, err := disassembly.Linear(data, 0x0200, &s, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	expected := []string{
		"$0200 LDA  #$01",
		"$0202 STA  $d000",
		"$0205 NOP",
		"$0206 .byte $8d",
		"$0207 .byte $00",
		"",
	}
	test.ExpectEquality(t, s.String(), strings.Join(expected, "\n"))
}

func TestWriteAttr(t *testing.T) {
	m := program(0xe000, 0xa9, 0x01)
	e := disassembly.Decode(m, 0xe000)

	var s strings.Builder
	err := disassembly.WriteEntry(&s, disassembly.WriteAttr{ByteCode: true, Cycles: true}, e)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "$e000 a9 01    LDA  #$01       2\n")
}
