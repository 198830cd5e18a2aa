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
	"math"

	"github.com/flatrow/fastcsv"
)

// int32Column is a demo Int32 column backed by a plain slice, used to
// exercise the library against synthetic data since the column-value
// accessor layer itself is supplied by the caller, not this package.
type int32Column struct{ vals []int32 }

func (c int32Column) Tag() fastcsv.WriterTag { return fastcsv.Int32 }
func (c int32Column) Len() int               { return len(c.vals) }
func (c int32Column) Int32(i int) int32      { return c.vals[i] }

// float64Column is a demo Float64 column.
type float64Column struct{ vals []float64 }

func (c float64Column) Tag() fastcsv.WriterTag { return fastcsv.Float64 }
func (c float64Column) Len() int               { return len(c.vals) }
func (c float64Column) Float64(i int) float64  { return c.vals[i] }

// stringColumn is a demo String column.
type stringColumn struct{ vals [][]byte }

func (c stringColumn) Tag() fastcsv.WriterTag { return fastcsv.String }
func (c stringColumn) Len() int               { return len(c.vals) }

func (c stringColumn) StringAt(i int) ([]byte, bool) {
	if c.vals[i] == nil {
		return nil, false
	}
	return c.vals[i], true
}

func (c stringColumn) MaxStringLen(nrow int) int {
	max := 0
	if nrow > len(c.vals) {
		nrow = len(c.vals)
	}
	for i := 0; i < nrow; i++ {
		if n := len(c.vals[i]); n > max {
			max = n
		}
	}
	return max
}

// demoColumns builds a small, deterministic set of columns (an id, a
// measurement, and a label) spanning Int32, Float64, and String, the
// three tags most CSV producers reach for first. Every eleventh id and
// every seventh measurement is NA, so the demo also exercises the NA
// path through the pipeline.
func demoColumns(nrow int) (names [][]byte, cols []fastcsv.Column) {
	ids := make([]int32, nrow)
	vals := make([]float64, nrow)
	labels := make([][]byte, nrow)
	for i := 0; i < nrow; i++ {
		if i%11 == 0 {
			ids[i] = math.MinInt32
		} else {
			ids[i] = int32(i)
		}
		if i%7 == 0 {
			vals[i] = math.NaN()
		} else {
			vals[i] = float64(i) * 0.0072
		}
		labels[i] = []byte(fmt.Sprintf("row-%d", i))
	}

	names = [][]byte{[]byte("id"), []byte("measurement"), []byte("label")}
	cols = []fastcsv.Column{
		int32Column{vals: ids},
		float64Column{vals: vals},
		stringColumn{vals: labels},
	}
	return names, cols
}
