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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/limiter"
)

// LeadTime is the period of time before measurement starts. It allows the
// frame rate to settle down.
const LeadTime = 2 * time.Second

// Result of a performance check.
type Result struct {
	Frames   uint64
	Duration time.Duration
	FPS      float64
	Accuracy float64

	// the CPU executed the STP instruction before the measurement period
	// ended
	Stopped bool
}

func (r Result) String() string {
	s := fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
	if r.Stopped {
		s = fmt.Sprintf("%s [stopped early]", s)
	}
	return s
}

// Check the performance of the emulation. The emulation will run for the
// lead time and then for the specified duration. The result is written to
// output and returned.
//
// If lmtr is nil the emulation runs as quickly as possible.
func Check(output io.Writer, cody *hardware.Cody, lmtr *limiter.Limiter, dur time.Duration, profile Profile) (Result, error) {
	if dur <= 0 {
		return Result{}, curated.Errorf("performance: %v", curated.Errorf(curated.ConfigError, fmt.Errorf("duration must be positive")))
	}
	return check(output, cody, lmtr, LeadTime, dur, profile)
}

func check(output io.Writer, cody *hardware.Cody, lmtr *limiter.Limiter, lead time.Duration, dur time.Duration, profile Profile) (Result, error) {
	var res Result

	ctx, cancel := context.WithTimeout(context.Background(), lead+dur)
	defer cancel()

	startFrame := cody.Video.Generation()
	startTime := time.Now()
	lead = max(lead, time.Nanosecond)
	leadtime := time.NewTimer(lead)
	defer leadtime.Stop()

	runner := func() error {
		return cody.Run(ctx, lmtr, func() bool {
			select {
			case <-leadtime.C:
				startFrame = cody.Video.Generation()
				startTime = time.Now()
			default:
			}
			return true
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return res, curated.Errorf("performance: %v", err)
	}

	res.Stopped = err == nil
	res.Frames = cody.Video.Generation() - startFrame
	res.Duration = time.Since(startTime)
	res.FPS, res.Accuracy = CalcFPS(res.Frames, res.Duration.Seconds())

	if output != nil {
		fmt.Fprintln(output, res.String())
	}

	return res, nil
}
