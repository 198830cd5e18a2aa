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

type unsupportedTagColumn struct{}

func (unsupportedTagColumn) Tag() WriterTag { return WriterTag(255) }
func (unsupportedTagColumn) Len() int       { return 1 }

func TestFormatCellPanicsOnUnsupportedTag(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected formatCell to panic on an unsupported writer tag")
		}
	}()
	buf := make([]byte, 8)
	p := &fmtParams{na: []byte("NA")}
	formatCell(buf, 0, unsupportedTagColumn{}, 0, p)
}

func TestFormatCellDispatchesSampleTags(t *testing.T) {
	p := &fmtParams{na: []byte("NA"), dec: '.', sep2: ';'}
	buf := make([]byte, 64)

	cases := []struct {
		name string
		col  Column
	}{
		{"int32", testInt32Col{vals: []int32{7}}},
		{"float64", testFloat64Col{vals: []float64{1.5}}},
		{"string", testStringCol{vals: [][]byte{[]byte("hi")}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := formatCell(buf, 0, c.col, 0, p)
			if pos <= 0 {
				t.Errorf("formatCell(%s) wrote nothing", c.name)
			}
		})
	}
}
