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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui/sdlplay"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gophercody/logger"
	"github.com/jetsetilly/gophercody/modalflag"
	"golang.design/x/clipboard"
)

// runFlags are the flags of the RUN and PERFORMANCE modes. pointer values are
// filled in by the call to Parse(). the display fields are nil in the
// PERFORMANCE mode
type runFlags struct {
	headered    *bool
	uart        *string
	uartClip    *bool
	uartOut     *string
	fixNewlines *bool
	physical    *bool
	banks       *int
	irqHz       *float64
	trace       *string
	traceBus    *bool

	fast       *bool
	term       *bool
	scale      *int
	screenshot *string
	memviz     *string
	statsview  *bool
	log        *bool

	// address flags are only set if they appear on the command line
	load  *uint16
	reset *uint16
	irq   *uint16
	nmi   *uint16
}

// addAddressFlag adds a flag that accepts an address in the format understood
// by hardware.ParseAddress(). the pointer is only set if the flag is used
func addAddressFlag(md *modalflag.Modes, name string, usage string, v **uint16) {
	md.AddFunc(name, usage, func(s string) error {
		a, err := hardware.ParseAddress(s)
		if err != nil {
			return err
		}
		*v = &a
		return nil
	})
}

// addMachineFlags adds the flags that are used to create the hardware.Config
func addMachineFlags(md *modalflag.Modes) *runFlags {
	opts := &runFlags{}

	opts.headered = md.AddBool("cartridge", false, "binary begins with a cartridge header")
	addAddressFlag(md, "load", "load address of the binary (default $e000)", &opts.load)
	addAddressFlag(md, "reset", "override reset vector", &opts.reset)
	addAddressFlag(md, "irq", "override IRQ vector", &opts.irq)
	addAddressFlag(md, "nmi", "override NMI vector", &opts.nmi)
	opts.banks = md.AddInt("banks", 1, "number of 8k banks in the ROM area")

	opts.uart = md.AddString("uart", "", "file to use as the source of UART1 data")
	opts.uartClip = md.AddBool("uartclip", false, "use the clipboard as the source of UART1 data")
	opts.uartOut = md.AddString("uartout", "", "file to write UART1 transmitted data to")
	opts.fixNewlines = md.AddBool("fixnewlines", false, "normalise newlines in UART1 source")

	opts.physical = md.AddBool("physical", false, "map keys by physical position rather than by symbol")
	opts.irqHz = md.AddFloat64("irqhz", 0, "frequency of IRQ pulse in addition to the VIA timer")
	opts.trace = md.AddString("trace", "", "file to write a trace of executed instructions to")
	opts.traceBus = md.AddBool("tracebus", false, "include memory accesses in trace")

	return opts
}

func addRunFlags(md *modalflag.Modes) *runFlags {
	opts := addMachineFlags(md)

	opts.fast = md.AddBool("fast", false, "run the emulation as quickly as possible")
	opts.term = md.AddBool("term", false, "run in the terminal rather than in a window")
	opts.scale = md.AddInt("scale", sdlplay.DefaultScale, "window and screenshot scaling")
	opts.screenshot = md.AddString("screenshot", "", "save a screenshot to file when the emulation ends")
	opts.memviz = md.AddString("memviz", "", "save a graph of the emulation state to file when the emulation ends")
	opts.statsview = md.AddBool("statsview", false, "launch runtime statistics server")
	opts.log = md.AddBool("log", false, "echo debugging log to stderr")

	return opts
}

// openFiles is the list of files opened by runFlags.config()
type openFiles []*os.File

func (files openFiles) close() {
	for _, f := range files {
		if err := f.Close(); err != nil {
			logger.Log(logger.Allow, "gophercody", err)
		}
	}
}

// config creates a hardware.Config from the flags. any files that are opened
// are returned even if there is an error and should be closed when the
// emulation has ended
func (opts *runFlags) config(binary string) (hardware.Config, openFiles, error) {
	var files openFiles

	cfg := hardware.Config{
		Binary:            binary,
		Banks:             *opts.banks,
		NormaliseNewlines: *opts.fixNewlines,
		IRQHz:             *opts.irqHz,
		TraceBus:          *opts.traceBus,
	}

	cfg.Loader.Headered = *opts.headered
	cfg.Loader.LoadAddress = opts.load
	cfg.Loader.Reset = opts.reset
	cfg.Loader.IRQ = opts.irq
	cfg.Loader.NMI = opts.nmi

	if *opts.physical {
		cfg.Keyboard = keyboard.Physical
	} else {
		cfg.Keyboard = keyboard.Symbolic
	}

	if opts.scale != nil && *opts.scale < 1 {
		return cfg, files, curated.Errorf(curated.ConfigError, fmt.Errorf("scale must be at least one"))
	}

	switch {
	case *opts.uart != "" && *opts.uartClip:
		return cfg, files, curated.Errorf(curated.ConfigError, fmt.Errorf("UART source can be a file or the clipboard but not both"))
	case *opts.uart != "":
		f, err := os.Open(*opts.uart)
		if err != nil {
			return cfg, files, curated.Errorf("uart: %v", curated.Errorf(curated.IOError, err))
		}
		files = append(files, f)
		cfg.UARTSource = f
	case *opts.uartClip:
		src, err := clipboardSource()
		if err != nil {
			return cfg, files, err
		}
		cfg.UARTSource = src
	}

	if *opts.uartOut != "" {
		f, err := os.Create(*opts.uartOut)
		if err != nil {
			return cfg, files, curated.Errorf("uart: %v", curated.Errorf(curated.IOError, err))
		}
		files = append(files, f)
		cfg.UARTOut = f
	}

	if *opts.trace != "" {
		f, err := os.Create(*opts.trace)
		if err != nil {
			return cfg, files, curated.Errorf("trace: %v", curated.Errorf(curated.IOError, err))
		}
		files = append(files, f)
		cfg.Trace = f
	}

	return cfg, files, nil
}

// clipboardSource returns the text content of the host clipboard
func clipboardSource() (io.Reader, error) {
	if err := clipboard.Init(); err != nil {
		return nil, curated.Errorf("clipboard: %v", curated.Errorf(curated.IOError, err))
	}
	data := clipboard.Read(clipboard.FmtText)
	logger.Logf(logger.Allow, "clipboard", "%d bytes for UART", len(data))
	return bytes.NewReader(data), nil
}
