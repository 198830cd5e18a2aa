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

import "testing"

func TestPlanBatchesBasic(t *testing.T) {
	// 8 MiB buffer, 100-byte lines, a million rows, 4 requested threads.
	pl := planBatches(100, 8, 1_000_000, 4)

	if pl.buffSize != 8<<20 {
		t.Errorf("buffSize = %d, want %d", pl.buffSize, 8<<20)
	}
	wantRows := (8 << 20) / 100
	if pl.rowsPerBatch != wantRows {
		t.Errorf("rowsPerBatch = %d, want %d", pl.rowsPerBatch, wantRows)
	}
	wantBatches := (1_000_000 + wantRows - 1) / wantRows
	if pl.numBatches != wantBatches {
		t.Errorf("numBatches = %d, want %d", pl.numBatches, wantBatches)
	}
	if pl.nThread != 4 {
		t.Errorf("nThread = %d, want 4", pl.nThread)
	}
}

func TestPlanBatchesThreadsClampedToBatches(t *testing.T) {
	// Only 3 rows total; requesting 16 threads should clamp down to the
	// number of batches actually produced.
	pl := planBatches(10, 1, 3, 16)
	if pl.nThread > pl.numBatches {
		t.Errorf("nThread = %d exceeds numBatches = %d", pl.nThread, pl.numBatches)
	}
}

func TestPlanBatchesHugeLineDoublesBuffer(t *testing.T) {
	// A single line wider than half the configured buffer must still fit
	// two rows per batch, per the doubling rule.
	const buffMB = 1
	lineLen := (buffMB << 20) // exactly the configured buffer size
	pl := planBatches(lineLen, buffMB, 100, 2)

	if pl.buffSize < 2*lineLen {
		t.Errorf("buffSize = %d, want >= %d", pl.buffSize, 2*lineLen)
	}
	if pl.rowsPerBatch != 2 {
		t.Errorf("rowsPerBatch = %d, want 2", pl.rowsPerBatch)
	}
}

func TestPlanBatchesSingleRow(t *testing.T) {
	pl := planBatches(50, 8, 1, 8)
	if pl.numBatches != 1 || pl.nThread != 1 {
		t.Errorf("numBatches=%d nThread=%d, want 1 and 1", pl.numBatches, pl.nThread)
	}
}
