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
	"fmt"

	"github.com/jetsetilly/gophercody/cartridgeloader"
	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware/cpu"
	"github.com/jetsetilly/gophercody/hardware/memory"
	"github.com/jetsetilly/gophercody/hardware/memory/memorymap"
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gophercody/hardware/peripherals/uart"
	"github.com/jetsetilly/gophercody/hardware/peripherals/via"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/logger"
)

// the number of key events that can be queued before events are dropped
const eventQueueLen = 64

// the clock speed of the CPU
const cyclesPerSecond = 1000000

// Cody is the main container for the emulated components of the Cody
// Computer.
type Cody struct {
	CPU *cpu.CPU
	Mem *memory.Bus

	RAM     *memory.RAM
	HighRAM *memory.RAM

	// only one of ROM and BankedROM will be non-nil
	ROM       *memory.ROM
	BankedROM *memory.BankedROM

	VIA      *via.VIA
	Keyboard *keyboard.Matrix
	UART1    *uart.UART
	UART2    *uart.UART
	Video    *video.Generator

	// key events from the GUI goroutine
	events chan keyboard.Event

	// fixed frequency IRQ. the number of cycles between pulses and the count
	// since the last pulse
	irqPeriod int
	irqCount  int

	tracer *tracer

	// total number of cycles since the Cody was created
	cycles uint64

	// STP has been logged. reset with the CPU
	stopLogged bool
}

// NewCody creates a new Cody and everything associated with the hardware. If
// Config.Binary is not empty then the binary is loaded and the CPU is reset.
func NewCody(cfg Config) (*Cody, error) {
	cody := &Cody{
		Mem:      memory.NewBus(),
		RAM:      memory.NewRAM("RAM", int(memorymap.MemtopRAM-memorymap.OriginRAM)+1),
		Keyboard: keyboard.NewMatrix(cfg.Keyboard),
		Video:    video.NewGenerator(),
		events:   make(chan keyboard.Event, eventQueueLen),
	}

	cody.CPU = cpu.NewCPU(cody.Mem)
	cody.VIA = via.NewVIA("VIA", cody.Keyboard)

	queue := uart.NewQueue(uart.DefaultCapacity)
	if cfg.UARTSource != nil {
		if err := queue.Load(cfg.UARTSource, cfg.NormaliseNewlines); err != nil {
			return nil, err
		}
	}
	cody.UART1 = uart.NewUART("UART1", queue, cfg.UARTOut)
	cody.UART2 = uart.NewUART("UART2", nil, nil)

	if err := cody.mapMemory(cfg.Banks); err != nil {
		return nil, err
	}
	cody.Video.Plumb(cody.Mem)

	if cfg.IRQHz > 0 {
		cody.irqPeriod = max(int(cyclesPerSecond/cfg.IRQHz), 1)
		logger.Logf(logger.Allow, "cody", "IRQ pulse every %d cycles", cody.irqPeriod)
	}

	if cfg.Trace != nil {
		cody.tracer = newTracer(cfg.Trace)
		if cfg.TraceBus {
			cody.tracer.recorder = memory.NewRecorder(cody.Mem)
			cody.tracer.recorder.Output = cfg.Trace
			cody.CPU.Plumb(cody.tracer.recorder)
		}
	}

	if cfg.Binary != "" {
		ld, err := cartridgeloader.NewLoader(cfg.Binary, cfg.Loader)
		if err != nil {
			return nil, err
		}
		if err := cody.Attach(ld); err != nil {
			return nil, err
		}
	}

	return cody, nil
}

func (cody *Cody) mapMemory(banks int) error {
	highRAMOrigin := memorymap.OriginHighRAM
	if banks > 1 {
		highRAMOrigin++
	}
	cody.HighRAM = memory.NewRAM("HighRAM", int(memorymap.MemtopHighRAM-highRAMOrigin)+1)

	romSize := int(memorymap.MemtopROM-memorymap.OriginROM) + 1

	mapping := []struct {
		origin uint16
		memtop uint16
		area   memory.Area
	}{
		{memorymap.OriginRAM, memorymap.MemtopRAM, cody.RAM},
		{memorymap.OriginVIA, memorymap.MemtopVIA, cody.VIA},
		{memorymap.OriginVideo, memorymap.MemtopVideo, cody.Video},
		{memorymap.OriginUART1, memorymap.MemtopUART1, cody.UART1},
		{memorymap.OriginUART2, memorymap.MemtopUART2, cody.UART2},
		{highRAMOrigin, memorymap.MemtopHighRAM, cody.HighRAM},
	}

	if banks > 1 {
		cody.BankedROM = memory.NewBankedROM("ROM", romSize, banks)
		mapping = append(mapping,
			struct {
				origin uint16
				memtop uint16
				area   memory.Area
			}{memorymap.BankSelect, memorymap.BankSelect, cody.BankedROM.SelectRegister()},
			struct {
				origin uint16
				memtop uint16
				area   memory.Area
			}{memorymap.OriginROM, memorymap.MemtopROM, cody.BankedROM},
		)
	} else {
		cody.ROM = memory.NewROM("ROM", romSize)
		mapping = append(mapping, struct {
			origin uint16
			memtop uint16
			area   memory.Area
		}{memorymap.OriginROM, memorymap.MemtopROM, cody.ROM})
	}

	for _, m := range mapping {
		if err := cody.Mem.Map(m.origin, m.memtop, m.area); err != nil {
			return curated.Errorf("cody: %v", err)
		}
	}

	return nil
}

func (cody *Cody) String() string {
	return cody.CPU.String()
}

// Attach loads the binary into memory and resets the Cody.
func (cody *Cody) Attach(ld cartridgeloader.Loader) error {
	var err error
	if cody.BankedROM != nil {
		err = ld.LoadBanks(cody.Mem, cody.BankedROM)
	} else {
		err = ld.Load(cody.Mem)
	}
	if err != nil {
		return curated.Errorf("cody: %v", err)
	}

	logger.Logf(logger.Allow, "cody", "attached %s (sha1 %s)", ld.ShortName(), ld.Hash)

	cody.Reset()
	return nil
}

// Reset emulates the reset line of the Cody. The CPU and VIA are reset and
// all keys are released. Memory is unchanged.
func (cody *Cody) Reset() {
	cody.VIA.Reset()
	cody.Keyboard.Reset()
	cody.CPU.Reset()
	cody.CPU.SetIRQ(false)
	cody.irqCount = 0
	cody.stopLogged = false
}

// QueueEvent queues a key event. It is safe to call from any goroutine. The
// event will be handled before the next instruction is executed. If the queue
// is full the event is dropped.
func (cody *Cody) QueueEvent(ev keyboard.Event) {
	select {
	case cody.events <- ev:
	default:
		logger.Logf(logger.Allow, "cody", "key event queue full: dropped event")
	}
}

func (cody *Cody) handleEvents() {
	for {
		select {
		case ev := <-cody.events:
			cody.Keyboard.HandleEvent(ev)
		default:
			return
		}
	}
}

// Cycles returns the number of CPU cycles since the Cody was created.
func (cody *Cody) Cycles() uint64 {
	return cody.cycles
}

// Summary returns a description of the memory map.
func (cody *Cody) Summary() string {
	s := ""
	for _, r := range cody.Mem.Regions() {
		s += fmt.Sprintf("%s\n", r)
	}
	return s
}
