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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/hardware/limiter"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/test"
)

// tolerance of measurement
const measurementTolerance = 0.02
const numFramesPerTest = 2

func measure(t *testing.T, lmtr *limiter.Limiter, hz float32) {
	t.Helper()
	lmtr.SetLimit(hz)
	for range int(hz * numFramesPerTest) {
		lmtr.CheckFrame()
		lmtr.MeasureActual()
	}
	rate := lmtr.Measured.Load().(float32)
	test.ExpectApproximate(t, rate, hz, measurementTolerance)
}

func TestTicker(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), video.RefreshRate)

	measure(t, lmtr, 60.0)
	measure(t, lmtr, 50.0)
}

type display struct{}

func (display) DisplayRefreshRate() (float32, bool) {
	return 60.0, true
}

func TestQuantise(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.SetDisplay(display{})
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 60.0)

	// too far from the display rate to be quantised
	lmtr.SetLimit(30.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 30.0)
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	// a very slow limit would make this test take a long time without the
	// nudge
	lmtr.SetLimit(1.0)
	lmtr.Nudge.Store(10)
	for range 10 {
		lmtr.CheckFrame()
	}
	test.ExpectEquality(t, lmtr.Nudge.Load(), 0)
}
