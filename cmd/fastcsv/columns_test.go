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
	"math"
	"testing"
)

func TestDemoColumnsShapeAndNA(t *testing.T) {
	names, cols := demoColumns(22)
	if len(names) != 3 {
		t.Fatalf("got %d names, want 3", len(names))
	}
	if len(cols) != 3 {
		t.Fatalf("got %d cols, want 3", len(cols))
	}
	for _, c := range cols {
		if c.Len() != 22 {
			t.Errorf("col.Len() = %d, want 22", c.Len())
		}
	}

	ids := cols[0].(int32Column)
	if ids.vals[11] != math.MinInt32 {
		t.Errorf("id[11] = %d, want MinInt32 (every 11th row is NA)", ids.vals[11])
	}
	if ids.vals[1] == math.MinInt32 {
		t.Errorf("id[1] should not be NA")
	}

	vals := cols[1].(float64Column)
	if !math.IsNaN(vals.vals[7]) {
		t.Errorf("measurement[7] should be NaN (every 7th row is NA)")
	}
	if math.IsNaN(vals.vals[1]) {
		t.Errorf("measurement[1] should not be NaN")
	}

	labels := cols[2].(stringColumn)
	s, ok := labels.StringAt(3)
	if !ok || string(s) != "row-3" {
		t.Errorf("label[3] = %q, %v, want \"row-3\", true", s, ok)
	}
}
