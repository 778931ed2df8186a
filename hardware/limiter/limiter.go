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

package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/logger"
)

// Display is implemented by front ends that know the refresh rate of the
// host display. If quantise is true and the requested rate is close to the
// refresh rate of the display then the display rate is used instead.
type Display interface {
	DisplayRefreshRate() (hz float32, quantise bool)
}

// Limiter paces calls to CheckFrame().
type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the ideal number of frames per second if everything was working nicely
	IdealFPS atomic.Value // float32

	// the actual value sent to the SetLimit() function
	requestedFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting on the pulse for every frame is unnecessary and the pulse is
	// scaled so that we wait only every few frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of frames
	Nudge atomic.Int32

	display Display
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to the refresh rate of the Cody video generator.
func NewLimiter() *Limiter {
	lmtr := Limiter{}
	lmtr.Active = true
	lmtr.Measured.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(MatchRefreshRate)

	return &lmtr
}

// SetDisplay sets the display interface for the limiter.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
}

// MatchRefreshRate can be used with SetLimit() to indicate that the limiter
// should run at the natural refresh rate of the Cody.
const MatchRefreshRate float32 = -1.0

// SetLimit sets the number of frames per second.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = video.RefreshRate
	}

	// quantise refresh rate based on refresh rate of the display
	if lmtr.display != nil {
		hz, quantise := lmtr.display.DisplayRefreshRate()
		if quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	lmtr.IdealFPS.Store(fps)

	// set scale and duration to wait according to requested FPS rate
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()

	logger.Logf(logger.Allow, "limiter", "%.2f fps", fps)
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
// callers of MeasureActual() should be mindful of how often the function is
// called, regardless of the throttle provided by the measuring pulse. Checking
// the pulse channel is itself expensive.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used after Stop() has
// been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
