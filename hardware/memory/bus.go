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

package memory

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/logger"
)

// Region is a contiguous range of addresses served by a single Area.
type Region struct {
	Origin uint16
	Memtop uint16
	Area   Area
}

func (r Region) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", r.Origin, r.Memtop, r.Area.Label())
}

func (r Region) contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// values in the page cache that are not indexes into the regions slice
const (
	pageUnmapped = -1
	pageShared   = -2
)

// Bus is the memory bus of the Cody Computer. It implements the cpubus.Memory
// and cpubus.DebuggerBus interfaces.
type Bus struct {
	// sorted by origin
	regions []Region

	// the region index for every page of memory. a page that is served by
	// more than one region is marked as pageShared and requires a walk of the
	// regions table
	pages [256]int
}

// NewBus is the preferred method of initialisation for the Bus type. The
// returned bus has nothing mapped.
func NewBus() *Bus {
	bus := &Bus{}
	bus.rebuildPages()
	return bus
}

// Map registers an area with the bus. The area serves all addresses from
// origin to memtop inclusive.
//
// It is a ConfigError for the region to overlap an existing region.
func (bus *Bus) Map(origin uint16, memtop uint16, area Area) error {
	if memtop < origin {
		return curated.Errorf(curated.ConfigError, fmt.Errorf("bus: %s: memtop (%04x) is before origin (%04x)", area.Label(), memtop, origin))
	}

	for _, r := range bus.regions {
		if origin <= r.Memtop && memtop >= r.Origin {
			return curated.Errorf(curated.ConfigError, fmt.Errorf("bus: %s (%04x -> %04x) overlaps %s", area.Label(), origin, memtop, r))
		}
	}

	bus.regions = append(bus.regions, Region{
		Origin: origin,
		Memtop: memtop,
		Area:   area,
	})
	sort.Slice(bus.regions, func(i, j int) bool {
		return bus.regions[i].Origin < bus.regions[j].Origin
	})
	bus.rebuildPages()

	logger.Logf(logger.Allow, "bus", "mapped %s (%04x -> %04x)", area.Label(), origin, memtop)

	return nil
}

func (bus *Bus) rebuildPages() {
	for p := range bus.pages {
		lo := uint16(p) << 8
		hi := lo | 0xff

		bus.pages[p] = pageUnmapped
		for i, r := range bus.regions {
			if r.Origin <= lo && r.Memtop >= hi {
				bus.pages[p] = i
				break
			}
			if r.Origin <= hi && r.Memtop >= lo {
				bus.pages[p] = pageShared
			}
		}
	}
}

// lookup returns the region serving the address or nil if the address is not
// mapped
func (bus *Bus) lookup(address uint16) *Region {
	switch i := bus.pages[address>>8]; i {
	case pageUnmapped:
		return nil
	case pageShared:
		for j := range bus.regions {
			if bus.regions[j].contains(address) {
				return &bus.regions[j]
			}
		}
		return nil
	default:
		return &bus.regions[i]
	}
}

// Regions returns a copy of the region table, sorted by origin.
func (bus *Bus) Regions() []Region {
	r := make([]Region, len(bus.regions))
	copy(r, bus.regions)
	return r
}

// Label returns the label of the area serving the address. An empty string if
// the address is not mapped.
func (bus *Bus) Label(address uint16) string {
	if r := bus.lookup(address); r != nil {
		return r.Area.Label()
	}
	return ""
}

// Read is an implementation of cpubus.Memory. Unmapped addresses read as zero.
func (bus *Bus) Read(address uint16) (uint8, error) {
	r := bus.lookup(address)
	if r == nil {
		return 0, nil
	}
	return r.Area.Read(address - r.Origin), nil
}

// Write is an implementation of cpubus.Memory. Writes to unmapped addresses
// are ignored.
func (bus *Bus) Write(address uint16, data uint8) error {
	r := bus.lookup(address)
	if r == nil {
		return nil
	}
	r.Area.Write(address-r.Origin, data)
	return nil
}

// Peek is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Peek(address uint16) (uint8, error) {
	r := bus.lookup(address)
	if r == nil {
		return 0, curated.Errorf("bus: peek: %v: %04x", cpubus.AddressError, address)
	}
	p, ok := r.Area.(Peeker)
	if !ok {
		return 0, curated.Errorf("bus: peek: %v: %04x (%s)", cpubus.AddressError, address, r.Area.Label())
	}
	return p.Peek(address - r.Origin), nil
}

// Poke is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Poke(address uint16, value uint8) error {
	p, offset, err := bus.poker(address)
	if err != nil {
		return err
	}
	p.Poke(offset, value)
	return nil
}

// CanPoke is an implementation of cpubus.PokeChecker.
func (bus *Bus) CanPoke(address uint16) error {
	_, _, err := bus.poker(address)
	return err
}

func (bus *Bus) poker(address uint16) (Poker, uint16, error) {
	r := bus.lookup(address)
	if r == nil {
		return nil, 0, curated.Errorf("bus: poke: %v: %04x", cpubus.AddressError, address)
	}
	p, ok := r.Area.(Poker)
	if !ok {
		return nil, 0, curated.Errorf("bus: poke: %v: %04x (%s)", cpubus.AddressError, address, r.Area.Label())
	}
	return p, address - r.Origin, nil
}
