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

package hardware

import (
	"github.com/jetsetilly/gophercody/logger"
)

// Step the emulation by one CPU instruction, or by one interrupt sequence or
// one idle cycle if that is what the CPU does instead. The peripherals are
// then advanced by the number of cycles consumed and the IRQ line is updated.
//
// Step does not interact with the wall clock. The number of cycles consumed
// is returned.
func (cody *Cody) Step() int {
	cody.handleEvents()

	if cody.tracer != nil {
		cody.tracer.before(cody)
	}

	cycles := cody.CPU.Step()

	if cody.tracer != nil {
		cody.tracer.after(cody)
	}

	cody.VIA.Tick(cycles)
	cody.UART1.Tick()
	cody.UART2.Tick()
	cody.Video.Tick(cycles)

	irq := cody.VIA.IRQ()
	if cody.irqPeriod > 0 {
		cody.irqCount += cycles
		if cody.irqCount >= cody.irqPeriod {
			cody.irqCount %= cody.irqPeriod
			irq = true
		}
	}
	cody.CPU.SetIRQ(irq)

	cody.cycles += uint64(cycles)

	if cody.CPU.Stopped && !cody.stopLogged {
		cody.stopLogged = true
		logger.Logf(logger.Allow, "cody", "CPU stopped at %04x", cody.CPU.LastResult.Address)
	}

	return cycles
}
