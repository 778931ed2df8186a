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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gophercody/cartridgeloader"
	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/disassembly"
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/gui/render"
	"github.com/jetsetilly/gophercody/gui/sdlplay"
	"github.com/jetsetilly/gophercody/gui/termplay"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/limiter"
	"github.com/jetsetilly/gophercody/logger"
	"github.com/jetsetilly/gophercody/modalflag"
	"github.com/jetsetilly/gophercody/performance"
	"github.com/jetsetilly/gophercody/statedump"
	"github.com/jetsetilly/gophercody/statsview"
	"github.com/jetsetilly/gophercody/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handling of the interrupt signal.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(output io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator may have returned a nil pointer of a concrete
				// type, which does not compare equal to nil as an interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addRunFlags(md)

	md.AdditionalHelp(
		`Addresses can be given in decimal or in hex with either the $ or 0x prefix.

The emulation ends when the window is closed, when ESC is pressed or when the
program executes the STP instruction. F12 saves a screenshot to the current
directory.

The -term flag runs the emulation in the terminal rather than in a window. The
terminal shows screen memory as text and does not show graphics modes.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *opts.log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("Cody binary required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, files, err := opts.config(md.GetArg(0))
	defer files.close()
	if err != nil {
		return err
	}

	cody, err := hardware.NewCody(cfg)
	if err != nil {
		return err
	}

	if *opts.statsview {
		statsview.Launch(md.Output)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		if *opts.term {
			return termplay.NewTermPlay(os.Stdin, os.Stdout)
		}
		return sdlplay.NewSdlPlay(*opts.scale)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	events := make(chan gui.Event, 16)

	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetEmulation, cody)
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	if d, ok := scr.(limiter.Display); ok {
		lmtr.SetDisplay(d)
	}
	lmtr.Active = !*opts.fast

	// the emulation handles the interrupt signal itself so that the optional
	// output files are still written
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = cody.Run(ctx, lmtr, func() bool {
		return serviceEvents(events)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Logf(logger.Allow, "gophercody", "ended after %d cycles", cody.Cycles())

	if *opts.screenshot != "" {
		err = render.SaveScreenshot(cody.Video.Frame(), *opts.screenshot, *opts.scale)
		if err != nil {
			return err
		}
	}

	if *opts.memviz != "" {
		err = statedump.WriteFile(*opts.memviz, cody)
		if err != nil {
			return err
		}
	}

	return nil
}

// serviceEvents drains the event channel. returns false if the emulation
// should end
func serviceEvents(events chan gui.Event) bool {
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				return false
			case gui.EventScreenshot:
				if ev.Err != nil {
					logger.Log(logger.Allow, "screenshot", ev.Err)
				} else {
					logger.Logf(logger.Allow, "screenshot", "saved to %s", ev.Filename)
				}
			}
		default:
			return true
		}
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	var cfg cartridgeloader.Config
	addAddressFlag(md, "load", "load address of the binary", &cfg.LoadAddress)
	headered := md.AddBool("cartridge", false, "binary begins with a cartridge header")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("Cody binary required for %s mode", md)
	case 1:
		cfg.Headered = *headered

		ld, err := cartridgeloader.NewLoader(md.GetArg(0), cfg)
		if err != nil {
			return err
		}

		if ld.Header != nil {
			fmt.Fprintf(md.Output, "; %s\n", ld.Header)
		}

		attr := disassembly.WriteAttr{ByteCode: *bytecode}
		_, err = disassembly.Linear(ld.Payload, ld.LoadAddress, md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	opts := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE (comma separated)")
	capped := md.AddBool("capped", false, "limit emulation to the refresh rate of the Cody")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("Cody binary required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf(curated.ConfigError, err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cfg, files, err := opts.config(md.GetArg(0))
	defer files.close()
	if err != nil {
		return err
	}

	cody, err := hardware.NewCody(cfg)
	if err != nil {
		return err
	}

	var lmtr *limiter.Limiter
	if *capped {
		lmtr = limiter.NewLimiter()
		defer lmtr.Stop()
	}

	_, err = performance.Check(md.Output, cody, lmtr, dur, prf)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
