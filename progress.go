// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastcsv

import (
	"fmt"
	"io"
	"time"
)

// progressWarmup is how long the reporter waits before its first print.
const progressWarmup = 2 * time.Second

// progressInterval is the minimum gap between successive prints.
const progressInterval = 1 * time.Second

// progressReporter prints periodic progress during the ordered commit
// step. Only the goroutine running that step ever touches it, so it
// needs no synchronization of its own; that single-writer guarantee is
// the same one the commit loop already provides for the sink and the
// running CRC/length counters.
type progressReporter struct {
	enabled  bool
	out      io.Writer
	start    time.Time
	lastShow time.Time
	nThread  int
	peakUtil float64
}

func newProgressReporter(j *Job, pl plan, out io.Writer) *progressReporter {
	now := time.Now()
	return &progressReporter{
		enabled: j.ShowProgress,
		out:     out,
		start:   now,
		nThread: pl.nThread,
	}
}

// observe records a committed batch's buffer utilization and, if enough
// time has passed since the warmup and the last print, emits a progress
// line showing percent complete, elapsed time, thread count, peak buffer
// utilization, and an ETA extrapolated from the elapsed/complete ratio.
func (r *progressReporter) observe(rowsDone, nrow int, batchLen, buffSize int) {
	if !r.enabled || nrow == 0 {
		return
	}
	if buffSize > 0 {
		if u := float64(batchLen) / float64(buffSize); u > r.peakUtil {
			r.peakUtil = u
		}
	}

	now := time.Now()
	elapsed := now.Sub(r.start)
	if elapsed < progressWarmup {
		return
	}
	if !r.lastShow.IsZero() && now.Sub(r.lastShow) < progressInterval {
		return
	}
	r.lastShow = now

	frac := float64(rowsDone) / float64(nrow)
	var eta time.Duration
	if frac > 0 {
		eta = time.Duration(float64(elapsed) * (1/frac - 1))
	}
	fmt.Fprintf(r.out, "%.1f%% done, %s elapsed, %d threads, peak buffer %.1f%%, ETA %s\n",
		frac*100, elapsed.Round(time.Second), r.nThread, r.peakUtil*100, eta.Round(time.Second))
}
