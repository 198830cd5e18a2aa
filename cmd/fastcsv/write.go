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

package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rodaine/table"

	"github.com/flatrow/fastcsv"
)

type writeCmd struct {
	rows     int
	out      string
	gzip     bool
	sep      string
	threads  int
	buffMB   int
	progress bool
	bench    bool
	stdout   io.Writer
}

func (w *writeCmd) Run() error {
	if len(w.sep) != 1 {
		return fmt.Errorf("%w: --sep must be exactly one byte, got %q", ErrFlagParse, w.sep)
	}
	if w.rows < 0 {
		return fmt.Errorf("%w: --rows must not be negative", ErrFlagParse)
	}

	threads := w.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	names, cols := demoColumns(w.rows)

	opts := []fastcsv.Option{
		fastcsv.WithColNames(names),
		fastcsv.WithSep(w.sep[0]),
		fastcsv.WithThreads(threads),
		fastcsv.WithBuffMB(w.buffMB),
	}
	if w.progress {
		opts = append(opts, fastcsv.WithProgress())
	}
	if w.gzip {
		if w.out == "" {
			return fmt.Errorf("%w: --gzip requires --out (stdout cannot be gzipped)", ErrFlagParse)
		}
		opts = append(opts, fastcsv.WithGzip())
	}

	job, err := fastcsv.NewJob(w.out, cols, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFastcsv, err)
	}

	start := time.Now()
	if err := job.Write(); err != nil {
		return fmt.Errorf("%w: %w", ErrFastcsv, err)
	}
	elapsed := time.Since(start)

	if w.bench {
		printBench(w.stdout, w.rows, threads, elapsed)
	}
	return nil
}

// printBench renders a one-row throughput summary. It is deliberately
// terse: this command measures wall-clock emission time for a synthetic
// table, not a substitute for a real benchmark harness.
func printBench(out io.Writer, rows, threads int, elapsed time.Duration) {
	rowsPerSec := float64(rows) / elapsed.Seconds()

	tbl := table.New("rows", "threads", "elapsed", "rows/sec")
	tbl.WithWriter(out)
	tbl.AddRow(rows, threads, elapsed.Round(time.Millisecond).String(), fmt.Sprintf("%.0f", rowsPerSec))
	tbl.Print()
}
