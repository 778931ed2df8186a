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
	"fmt"
	"testing"

	"github.com/jetsetilly/gophercody/hardware/cpu"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// fill memory with NOP instructions
func (mem *mockMem) putNOPs(origin uint16, n int) {
	for i := 0; i < n; i++ {
		mem.internal[origin+uint16(i)] = 0xea
	}
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// newTestCPU creates a CPU with the reset vector pointing to origin. the CPU
// is reset before returning
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.putVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step the CPU and check the consistency of the result. the number of cycles
// consumed is returned
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles := mc.Step()
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult.String())
	}
	if cycles != mc.LastResult.Cycles {
		t.Fatalf("cycles returned by Step() do not match LastResult")
	}
	return cycles
}

// assembler builds a program from opcodes and operands. operands can refer to
// labels, which are resolved when the program is put into memory
type assembler struct {
	origin uint16
	code   []uint8
	labels map[string]uint16
	fixups []fixup
}

type fixup struct {
	label string

	// position of the operand in the code
	at int

	// for branches, the address of the next instruction. zero for absolute
	// operands
	next uint16
}

func asm(origin uint16) *assembler {
	return &assembler{
		origin: origin,
		labels: make(map[string]uint16),
	}
}

func (a *assembler) pc() uint16 {
	return a.origin + uint16(len(a.code))
}

// label the current address
func (a *assembler) label(name string) *assembler {
	a.labels[name] = a.pc()
	return a
}

// equ gives a name to an address outside of the program
func (a *assembler) equ(name string, address uint16) *assembler {
	a.labels[name] = address
	return a
}

// op adds an opcode and its literal operand bytes
func (a *assembler) op(opcode uint8, operand ...uint8) *assembler {
	a.code = append(a.code, opcode)
	a.code = append(a.code, operand...)
	return a
}

// abs adds an opcode with the address of a label as the operand
func (a *assembler) abs(opcode uint8, label string) *assembler {
	a.code = append(a.code, opcode)
	a.fixups = append(a.fixups, fixup{label: label, at: len(a.code)})
	a.code = append(a.code, 0x00, 0x00)
	return a
}

// rel adds a branch instruction to a label
func (a *assembler) rel(opcode uint8, label string) *assembler {
	a.code = append(a.code, opcode)
	a.fixups = append(a.fixups, fixup{label: label, at: len(a.code), next: a.pc() + 1})
	a.code = append(a.code, 0x00)
	return a
}

// zrel adds a BBR or BBS instruction testing the zero page address and
// branching to a label
func (a *assembler) zrel(opcode uint8, zp uint8, label string) *assembler {
	a.code = append(a.code, opcode, zp)
	a.fixups = append(a.fixups, fixup{label: label, at: len(a.code), next: a.pc() + 1})
	a.code = append(a.code, 0x00)
	return a
}

// addr returns the address of a label
func (a *assembler) addr(t *testing.T, label string) uint16 {
	t.Helper()
	v, ok := a.labels[label]
	if !ok {
		t.Fatalf("asm: unknown label %q", label)
	}
	return v
}

func (a *assembler) resolve() error {
	for _, f := range a.fixups {
		v, ok := a.labels[f.label]
		if !ok {
			return fmt.Errorf("unknown label %q", f.label)
		}
		if f.next == 0 {
			a.code[f.at] = uint8(v)
			a.code[f.at+1] = uint8(v >> 8)
			continue
		}
		d := int(v) - int(f.next)
		if d < -128 || d > 127 {
			return fmt.Errorf("branch to %q out of range (%d)", f.label, d)
		}
		a.code[f.at] = uint8(int8(d))
	}
	return nil
}

// put resolves the labels and writes the program to memory. the address
// following the program is returned
func (a *assembler) put(t *testing.T, mem *mockMem) uint16 {
	t.Helper()
	if err := a.resolve(); err != nil {
		t.Fatalf("asm: %v", err)
	}
	return mem.putInstructions(a.origin, a.code...)
}
