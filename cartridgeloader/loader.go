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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/hardware/memory/memorymap"
	"github.com/jetsetilly/gophercody/logger"
)

// Config specifies how a binary is to be loaded. Nil pointer fields indicate
// that no value has been specified.
type Config struct {
	// the binary begins with a cartridge header
	Headered bool

	// load address of the payload. if this is nil then the start address of
	// a cartridge header is used. headerless binaries are loaded at
	// memorymap.DefaultLoadAddress
	LoadAddress *uint16

	// vector overrides. these take precedence over the reset vector implied by
	// the cartridge header
	Reset *uint16
	IRQ   *uint16
	NMI   *uint16
}

// Loader is used to load a binary into the emulated machine.
type Loader struct {
	// filename of binary
	Filename string

	// hash of the binary file
	Hash string

	// the cartridge header. nil if the binary is headerless
	Header *Header

	// the data to be placed into memory and the address at which to place it
	Payload     []byte
	LoadAddress uint16

	cfg Config
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The binary is read and checked for validity. Filenames with a URL scheme of
// http or https will be fetched over the network.
func NewLoader(filename string, cfg Config) (Loader, error) {
	data, err := readData(filename)
	if err != nil {
		return Loader{}, curated.Errorf(curated.IOError, err)
	}
	return NewLoaderFromData(filename, data, cfg)
}

// NewLoaderFromData is the same as NewLoader but with the data provided
// directly. The name argument is used for logging.
func NewLoaderFromData(name string, data []byte, cfg Config) (Loader, error) {
	ld := Loader{
		Filename:    name,
		Hash:        fmt.Sprintf("%x", sha1.Sum(data)),
		LoadAddress: memorymap.DefaultLoadAddress,
		cfg:         cfg,
	}

	if cfg.Headered {
		h, err := ParseHeader(data)
		if err != nil {
			return Loader{}, curated.Errorf("cartridgeloader: %v", err)
		}
		ld.Header = &h
		ld.Payload = data[HeaderSize : HeaderSize+h.Len()]
		ld.LoadAddress = h.Start
	} else {
		ld.Payload = data
	}

	if cfg.LoadAddress != nil {
		ld.LoadAddress = *cfg.LoadAddress
	}

	if len(ld.Payload) == 0 {
		return Loader{}, curated.Errorf("cartridgeloader: %v", curated.Errorf(curated.FormatError, fmt.Errorf("no data to load")))
	}

	return ld, nil
}

func readData(filename string) ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", filename, resp.Status)
		}

		return io.ReadAll(resp.Body)

	case "file":
		fallthrough

	case "":
		return os.ReadFile(filename)
	}

	// a single letter scheme is probably a windows drive letter
	if len(scheme) == 1 {
		return os.ReadFile(filename)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", scheme)
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// Memtop returns the address of the last byte of the payload once loaded.
func (ld Loader) Memtop() uint16 {
	return ld.LoadAddress + uint16(len(ld.Payload)-1)
}

// Load the payload into memory using the Poke() function of the bus. The
// payload may span more than one memory area.
//
// It is a ConfigError if the payload does not fit between the load address
// and the top of memory. If the bus implements cpubus.PokeChecker then it is
// also a ConfigError if any byte of the payload or of the vectors cannot be
// poked. Nothing is loaded in either case.
//
// Once the payload has been loaded the vectors are set. A cartridge sets the
// reset vector to the load address. The vectors specified in the Config
// override that.
func (ld Loader) Load(bus cpubus.DebuggerBus) error {
	if err := ld.check(bus); err != nil {
		return err
	}
	return ld.load(bus, nil)
}

// load pokes the payload and the vectors without checking first. the after
// function, if not nil, is called after every poke.
func (ld Loader) load(bus cpubus.DebuggerBus, after func()) error {
	logger.Logf(logger.Allow, "cartridgeloader", "loading %s at %04x -> %04x", ld.ShortName(), ld.LoadAddress, ld.Memtop())
	for i, b := range ld.Payload {
		if err := ld.poke(bus, ld.LoadAddress+uint16(i), b, after); err != nil {
			return err
		}
	}

	for _, v := range ld.vectors() {
		logger.Logf(logger.Allow, "cartridgeloader", "setting %s vector to %04x", v.name, v.value)
		if err := ld.poke(bus, v.address, uint8(v.value), after); err != nil {
			return err
		}
		if err := ld.poke(bus, v.address+1, uint8(v.value>>8), after); err != nil {
			return err
		}
	}

	return nil
}

func (ld Loader) poke(bus cpubus.DebuggerBus, address uint16, data uint8, after func()) error {
	if err := bus.Poke(address, data); err != nil {
		return curated.Errorf("cartridgeloader: %v", curated.Errorf(curated.ConfigError, err))
	}
	if after != nil {
		after()
	}
	return nil
}

// check that every address touched by load() can be poked
func (ld Loader) check(bus cpubus.DebuggerBus) error {
	if int(ld.LoadAddress)+len(ld.Payload) > int(memorymap.Memtop)+1 {
		return curated.Errorf("cartridgeloader: %v", curated.Errorf(curated.ConfigError,
			fmt.Errorf("%d bytes loaded at %04x overflows memory", len(ld.Payload), ld.LoadAddress)))
	}

	c, ok := bus.(cpubus.PokeChecker)
	if !ok {
		return nil
	}

	canPoke := func(address uint16) error {
		if err := c.CanPoke(address); err != nil {
			return curated.Errorf("cartridgeloader: %v", curated.Errorf(curated.ConfigError, err))
		}
		return nil
	}

	for i := range ld.Payload {
		if err := canPoke(ld.LoadAddress + uint16(i)); err != nil {
			return err
		}
	}
	for _, v := range ld.vectors() {
		if err := canPoke(v.address); err != nil {
			return err
		}
		if err := canPoke(v.address + 1); err != nil {
			return err
		}
	}

	return nil
}

type vector struct {
	name    string
	address uint16
	value   uint16
}

// the vectors that will be set by load()
func (ld Loader) vectors() []vector {
	reset := ld.cfg.Reset
	if reset == nil && ld.Header != nil {
		v := ld.LoadAddress
		reset = &v
	}

	var vectors []vector
	for _, v := range []struct {
		name    string
		address uint16
		value   *uint16
	}{
		{name: "reset", address: cpubus.Reset, value: reset},
		{name: "irq", address: cpubus.IRQ, value: ld.cfg.IRQ},
		{name: "nmi", address: cpubus.NMI, value: ld.cfg.NMI},
	} {
		if v.value != nil {
			vectors = append(vectors, vector{name: v.name, address: v.address, value: *v.value})
		}
	}
	return vectors
}
