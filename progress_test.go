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
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestProgressReporterDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	r := &progressReporter{
		enabled: false,
		out:     &buf,
		start:   time.Now().Add(-10 * time.Second),
		nThread: 4,
	}
	r.observe(50, 100, 500, 1000)
	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

func TestProgressReporterSuppressedDuringWarmup(t *testing.T) {
	var buf bytes.Buffer
	r := &progressReporter{
		enabled: true,
		out:     &buf,
		start:   time.Now(),
		nThread: 2,
	}
	r.observe(50, 100, 500, 1000)
	if buf.Len() != 0 {
		t.Errorf("expected no output before warmup elapses, got %q", buf.String())
	}
}

func TestProgressReporterPrintsAfterWarmup(t *testing.T) {
	var buf bytes.Buffer
	r := &progressReporter{
		enabled: true,
		out:     &buf,
		start:   time.Now().Add(-3 * time.Second),
		nThread: 4,
	}
	r.observe(50, 100, 800, 1000)
	out := buf.String()
	if out == "" {
		t.Fatal("expected progress output after warmup, got none")
	}
	if !strings.Contains(out, "50.0%") {
		t.Errorf("output %q missing percent-complete", out)
	}
	if !strings.Contains(out, "80.0%") {
		t.Errorf("output %q missing peak buffer utilization", out)
	}
}

func TestProgressReporterRespectsInterval(t *testing.T) {
	var buf bytes.Buffer
	r := &progressReporter{
		enabled: true,
		out:     &buf,
		start:   time.Now().Add(-3 * time.Second),
		nThread: 1,
	}
	r.observe(10, 100, 500, 1000)
	first := buf.Len()
	if first == 0 {
		t.Fatal("expected first observe to print")
	}
	r.observe(11, 100, 500, 1000)
	if buf.Len() != first {
		t.Errorf("second observe within interval should not print, buf grew to %d", buf.Len())
	}
}

func TestProgressReporterZeroNrowIsNoop(t *testing.T) {
	var buf bytes.Buffer
	r := &progressReporter{
		enabled: true,
		out:     &buf,
		start:   time.Now().Add(-3 * time.Second),
		nThread: 1,
	}
	r.observe(0, 0, 0, 0)
	if buf.Len() != 0 {
		t.Errorf("expected no output for zero-row job, got %q", buf.String())
	}
}
