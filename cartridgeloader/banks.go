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
	"fmt"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercody/logger"
)

// BankSwitcher is implemented by memory areas with more than one bank.
type BankSwitcher interface {
	NumBanks() int
	SelectBank(bank int)
}

// LoadBanks divides the payload equally between the banks of the bank
// switcher. Each bank is loaded at the load address and has the vectors set.
// Bank zero is selected on return.
//
// It is a ConfigError if the payload does not divide equally between the
// banks. As with Load(), nothing is loaded if any bank would fail to load.
func (ld Loader) LoadBanks(bus cpubus.DebuggerBus, sw BankSwitcher) error {
	n := sw.NumBanks()
	if n <= 1 {
		return ld.Load(bus)
	}

	if len(ld.Payload)%n != 0 {
		return curated.Errorf("cartridgeloader: %v", curated.Errorf(curated.ConfigError,
			fmt.Errorf("%d bytes cannot be divided equally between %d banks", len(ld.Payload), n)))
	}

	sz := len(ld.Payload) / n

	// bank loader has a payload the size of a single bank. every bank is
	// loaded at the same addresses so a single check covers all of them
	bl := ld
	bl.Payload = ld.Payload[:sz]
	if err := bl.check(bus); err != nil {
		return err
	}

	defer sw.SelectBank(0)

	for b := 0; b < n; b++ {
		sw.SelectBank(b)
		bl.Payload = ld.Payload[b*sz : (b+1)*sz]
		logger.Logf(logger.Allow, "cartridgeloader", "bank %d", b)

		// the payload may cover the bank select register. the bank being
		// loaded is reselected after every poke so that the rest of the bank
		// is not loaded into the wrong place
		if err := bl.load(bus, func() { sw.SelectBank(b) }); err != nil {
			return err
		}
	}

	return nil
}
