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
	"context"

	"github.com/jetsetilly/gophercody/hardware/limiter"
	"github.com/jetsetilly/gophercody/logger"
)

// Run sets the emulation running. Instructions are executed in batches of one
// video frame. After every batch the limiter is consulted and then the
// continueCheck() function is called.
//
// The lmtr and continueCheck arguments can both be nil. With no limiter the
// emulation runs as quickly as possible.
//
// Run returns when the CPU executes the STP instruction or when
// continueCheck() returns false, in which cases the error is nil, or when the
// context is cancelled, in which case the error from the context is returned.
func (cody *Cody) Run(ctx context.Context, lmtr *limiter.Limiter, continueCheck func() bool) error {
	if continueCheck == nil {
		continueCheck = func() bool { return true }
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		generation := cody.Video.Generation()
		for generation == cody.Video.Generation() {
			cody.Step()
			if cody.CPU.Stopped {
				return nil
			}
		}

		if lmtr != nil {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}

		if !continueCheck() {
			return nil
		}
	}
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for testing and for measuring performance. Returns early if the CPU
// executes the STP instruction.
func (cody *Cody) RunForFrameCount(numFrames int) {
	target := cody.Video.Generation() + uint64(numFrames)
	for cody.Video.Generation() < target {
		cody.Step()
		if cody.CPU.Stopped {
			logger.Logf(logger.Allow, "cody", "stopped before frame %d", target)
			return
		}
	}
}
