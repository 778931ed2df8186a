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

package hardware_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gophercody/cartridgeloader"
	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gophercody/test"
)

func ptr(v uint16) *uint16 {
	return &v
}

// create a Cody with the program loaded into ROM
func newCody(t *testing.T, cfg hardware.Config, program []byte, ldcfg cartridgeloader.Config) *hardware.Cody {
	t.Helper()

	cody, err := hardware.NewCody(cfg)
	test.DemandSuccess(t, err)

	if ldcfg.Reset == nil {
		ldcfg.Reset = ptr(0xe000)
	}

	ld, err := cartridgeloader.NewLoaderFromData("test.bin", program, ldcfg)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cody.Attach(ld))

	return cody
}

func peek(t *testing.T, cody *hardware.Cody, address uint16) uint8 {
	t.Helper()
	v, err := cody.Mem.Peek(address)
	test.DemandSuccess(t, err)
	return v
}

func TestMemoryMap(t *testing.T) {
	cody, err := hardware.NewCody(hardware.Config{})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cody.Mem.Label(0x0000), "RAM")
	test.ExpectEquality(t, cody.Mem.Label(0x9eff), "RAM")
	test.ExpectEquality(t, cody.Mem.Label(0x9f00), "VIA")
	test.ExpectEquality(t, cody.Mem.Label(0xa000), "Video")
	test.ExpectEquality(t, cody.Mem.Label(0xd47f), "Video")
	test.ExpectEquality(t, cody.Mem.Label(0xd480), "UART1")
	test.ExpectEquality(t, cody.Mem.Label(0xd4a0), "UART2")
	test.ExpectEquality(t, cody.Mem.Label(0xd4c0), "HighRAM")
	test.ExpectEquality(t, cody.Mem.Label(0xdfff), "HighRAM")
	test.ExpectEquality(t, cody.Mem.Label(0xe000), "ROM")
	test.ExpectEquality(t, cody.Mem.Label(0xffff), "ROM")
	test.ExpectEquality(t, len(cody.Mem.Regions()), 7)
	test.ExpectSuccess(t, strings.Contains(cody.Summary(), "HighRAM"))
}

func TestProgram(t *testing.T) {
	program := []byte{
		0xa9, 0x42, // LDA #$42
		0x8d, 0x00, 0x02, // STA $0200
		0xdb, // STP
	}
	cody := newCody(t, hardware.Config{}, program, cartridgeloader.Config{})
	test.ExpectEquality(t, cody.CPU.PC.Address(), 0xe000)

	test.DemandSuccess(t, cody.Run(context.Background(), nil, nil))
	test.ExpectSuccess(t, cody.CPU.Stopped)
	test.ExpectEquality(t, peek(t, cody, 0x0200), 0x42)
	test.ExpectEquality(t, cody.Cycles() >= 9, true)

	// reset clears the stopped state and the program runs again
	cody.Reset()
	test.ExpectFailure(t, cody.CPU.Stopped)
	test.ExpectEquality(t, cody.CPU.PC.Address(), 0xe000)
}

func TestRun(t *testing.T) {
	loop := []byte{0x4c, 0x00, 0xe0} // JMP $E000
	cody := newCody(t, hardware.Config{}, loop, cartridgeloader.Config{})

	var frames int
	err := cody.Run(context.Background(), nil, func() bool {
		frames++
		return frames < 3
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 3)
	test.ExpectEquality(t, cody.Video.Generation(), uint64(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = cody.Run(ctx, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))

	cody.RunForFrameCount(2)
	test.ExpectEquality(t, cody.Video.Generation(), uint64(5))
}

func TestUART(t *testing.T) {
	program := []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x81, 0xd4, // STA $D481
		0xdb, // STP
	}

	cfg := hardware.Config{
		UARTSource: strings.NewReader("AB"),
	}
	cody := newCody(t, cfg, program, cartridgeloader.Config{})
	test.DemandSuccess(t, cody.Run(context.Background(), nil, nil))

	// one byte is received after the STA and another after the STP
	test.ExpectEquality(t, peek(t, cody, 0xd488), 'A')
	test.ExpectEquality(t, peek(t, cody, 0xd489), 'B')
	test.ExpectEquality(t, peek(t, cody, 0xd484), 2)
	test.ExpectEquality(t, cody.UART1.IsEnabled(), true)
	test.ExpectEquality(t, cody.UART2.IsEnabled(), false)
}

func TestUARTTransmit(t *testing.T) {
	program := []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x81, 0xd4, // STA $D481
		0xa9, 'Z', // LDA #'Z'
		0x8d, 0x90, 0xd4, // STA $D490 (first byte of transmit buffer)
		0xa9, 0x01, // LDA #$01
		0x8d, 0x86, 0xd4, // STA $D486 (transmit head)
		0xdb, // STP
	}

	var out bytes.Buffer
	cody := newCody(t, hardware.Config{UARTOut: &out}, program, cartridgeloader.Config{})
	test.DemandSuccess(t, cody.Run(context.Background(), nil, nil))
	test.ExpectEquality(t, out.String(), "Z")
}

func TestBanked(t *testing.T) {
	// the first bank switches to the second bank, which continues from the
	// next address
	data := make([]byte, 0x4000)
	copy(data, []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0xc0, 0xd4, // STA $D4C0
	})
	copy(data[0x2005:], []byte{
		0xa9, 0x77, // LDA #$77
		0x8d, 0x00, 0x03, // STA $0300
		0xdb, // STP
	})

	cody := newCody(t, hardware.Config{Banks: 2}, data, cartridgeloader.Config{})
	test.ExpectEquality(t, cody.Mem.Label(0xd4c0), "ROM select")
	test.ExpectEquality(t, cody.Mem.Label(0xd4c1), "HighRAM")
	test.ExpectEquality(t, cody.BankedROM.Bank(), 0)

	test.DemandSuccess(t, cody.Run(context.Background(), nil, nil))
	test.ExpectEquality(t, cody.BankedROM.Bank(), 1)
	test.ExpectEquality(t, peek(t, cody, 0x0300), 0x77)
}

func TestIRQPulse(t *testing.T) {
	program := make([]byte, 0x20)
	copy(program, []byte{
		0x58,             // CLI
		0x4c, 0x01, 0xe0, // JMP $E001
	})
	copy(program[0x10:], []byte{
		0xa9, 0x55, // LDA #$55
		0x8d, 0x01, 0x02, // STA $0201
		0xdb, // STP
	})

	// without the pulse the loop never ends
	cody := newCody(t, hardware.Config{}, program, cartridgeloader.Config{IRQ: ptr(0xe010)})
	cody.RunForFrameCount(1)
	test.ExpectFailure(t, cody.CPU.Stopped)
	test.ExpectEquality(t, peek(t, cody, 0x0201), 0x00)

	cody = newCody(t, hardware.Config{IRQHz: 1000}, program, cartridgeloader.Config{IRQ: ptr(0xe010)})
	cody.RunForFrameCount(1)
	test.ExpectSuccess(t, cody.CPU.Stopped)
	test.ExpectEquality(t, peek(t, cody, 0x0201), 0x55)
}

func TestKeyEvents(t *testing.T) {
	loop := []byte{0x4c, 0x00, 0xe0} // JMP $E000
	cody := newCody(t, hardware.Config{Keyboard: keyboard.Physical}, loop, cartridgeloader.Config{})

	cody.QueueEvent(keyboard.Event{Position: keyboard.PosQ, Pressed: true})
	test.ExpectFailure(t, cody.Keyboard.Pressed(keyboard.KeyQ))
	cody.Step()
	test.ExpectSuccess(t, cody.Keyboard.Pressed(keyboard.KeyQ))

	// the key is visible through the VIA. DDRA is written first so that the
	// row selection is an output
	test.DemandSuccess(t, cody.Mem.Write(0x9f03, 0x07))
	test.DemandSuccess(t, cody.Mem.Write(0x9f01, 0x00))
	v, err := cody.Mem.Read(0x9f01)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0xf0)

	cody.Reset()
	test.ExpectFailure(t, cody.Keyboard.Pressed(keyboard.KeyQ))
}

func TestTrace(t *testing.T) {
	program := []byte{
		0xa9, 0x01, // LDA #$01
		0xdb, // STP
	}

	var trace bytes.Buffer
	cody := newCody(t, hardware.Config{Trace: &trace}, program, cartridgeloader.Config{})
	test.DemandSuccess(t, cody.Run(context.Background(), nil, nil))

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "$e000 a9 01    LDA  #$01"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "$e002 db       STP"))
}

func TestConfigErrors(t *testing.T) {
	_, err := hardware.NewCody(hardware.Config{Binary: "/nonexistent/binary.bin"})
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))

	cody, err := hardware.NewCody(hardware.Config{})
	test.DemandSuccess(t, err)

	// a binary too large for the address space
	ld, err := cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 0x2001), cartridgeloader.Config{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Has(cody.Attach(ld), curated.ConfigError))
	test.ExpectEquality(t, peek(t, cody, 0xe000), 0x00)
}

func TestBankedAttachWholeAddressSpace(t *testing.T) {
	cody, err := hardware.NewCody(hardware.Config{Banks: 2})
	test.DemandSuccess(t, err)

	// each bank covers the whole address space, including the bank select
	// register and the peripherals
	data := make([]byte, 0x20000)
	data[0x0100] = 0x11
	data[0xd4c0] = 0x01
	data[0xe000] = 0x10
	data[0x10000+0x0100] = 0x22
	data[0x10000+0xe000] = 0x20

	ld, err := cartridgeloader.NewLoaderFromData("test.bin", data, cartridgeloader.Config{LoadAddress: ptr(0x0000)})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cody.Attach(ld))

	// RAM is shared so the last bank wins
	test.ExpectEquality(t, peek(t, cody, 0x0100), 0x22)
	test.ExpectEquality(t, cody.BankedROM.Bank(), 0)
	test.ExpectEquality(t, peek(t, cody, 0xe000), 0x10)
	cody.BankedROM.SelectBank(1)
	test.ExpectEquality(t, peek(t, cody, 0xe000), 0x20)
}

func TestParseAddress(t *testing.T) {
	for _, tc := range []struct {
		s string
		v uint16
	}{
		{"$e000", 0xe000},
		{"0xE000", 0xe000},
		{"0X10", 0x10},
		{"100", 100},
		{" 65535 ", 0xffff},
	} {
		v, err := hardware.ParseAddress(tc.s)
		test.ExpectSuccess(t, err, tc.s)
		test.ExpectEquality(t, v, tc.v, tc.s)
	}

	for _, s := range []string{"", "$", "zz", "65536", "$10000", "-1"} {
		_, err := hardware.ParseAddress(s)
		test.ExpectSuccess(t, curated.Has(err, curated.ConfigError), s)
	}
}
