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

package functional_test

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jetsetilly/gophercody/hardware/cpu"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/test"
)

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

const programOrigin = uint16(0x0400)

func TestFunctional(t *testing.T) {
	path, ok := os.LookupEnv("GOPHERCODY_FUNCTIONAL")
	if !ok {
		t.Skip("GOPHERCODY_FUNCTIONAL not set")
	}
	s, ok := os.LookupEnv("GOPHERCODY_FUNCTIONAL_SUCCESS")
	if !ok {
		t.Skip("GOPHERCODY_FUNCTIONAL_SUCCESS not set")
	}
	v, err := strconv.ParseUint(s, 0, 16)
	test.DemandSuccess(t, err)
	successAddress := uint16(v)

	bin, err := os.ReadFile(path)
	test.DemandSuccess(t, err)

	mem := newTestMem()
	copy(mem.internal, bin)

	mem.internal[cpubus.Reset] = byte(programOrigin & 0xff)
	mem.internal[cpubus.Reset+1] = byte(programOrigin >> 8)

	mc := cpu.NewCPU(mem)

	// cpu snapshot to be examined in case of test failure
	type snapshot struct {
		mc    *cpu.CPU
		stack []byte
	}
	var history [15]snapshot

	var totalCycles int
	var startTime time.Time

	// the run function is run at least once with the record parameter set to
	// false. if the run() fails, the function is run again with the record
	// parameter set to true
	run := func(record bool) bool {
		totalCycles = 0
		startTime = time.Now()

		// the binary modifies itself so it must be reloaded for every run
		copy(mem.internal, bin)
		mc.Reset()

		for {
			addr := mc.PC.Address()

			totalCycles += mc.Step()
			if mc.LastResult.Error != "" {
				t.Fatal(mc.LastResult.Error)
			}

			if record {
				copy(history[:], history[1:])
				history[len(history)-1].mc = mc.Snapshot()
				history[len(history)-1].stack = append([]byte{}, mem.internal[0x0100|(mc.SP.Address()+1)&0xff:0x0200]...)
			}

			if mc.PC.Address() == successAddress {
				return true
			}

			// the test traps errors with a branch or jump to self
			if mc.PC.Address() == addr {
				return false
			}
		}
	}

	if run(false) {
		frames := totalCycles / video.FrameCycles
		if secs := time.Since(startTime).Seconds(); secs > 0 {
			t.Logf("approx FPS: %.0f", float64(frames)/secs)
		}
	} else {
		// the first run() failed so we run it again with the record parameter
		// set to true. note that we expect the execution to return false
		ok := run(true)
		test.DemandFailure(t, ok)

		for _, h := range history {
			if h.mc != nil {
				t.Logf("%s\t%s", h.mc.LastResult.String(), h.mc.String())
				t.Logf("stack: %v", h.stack)
			}
		}
		t.Fatalf("functional test trapped at %04x", mc.PC.Address())
	}
}
