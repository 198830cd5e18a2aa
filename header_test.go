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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildHeaderBOMPreambleAndNames(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	j, err := NewJob("", cols,
		WithBOM(),
		WithPreamble([]byte("# generated\n")),
		WithColNames([][]byte{[]byte("a")}),
	)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := buildHeader(j)
	want := append(append([]byte{0xEF, 0xBB, 0xBF}, []byte("# generated\n")...), []byte("a\n")...)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeaderNoColNamesIsJustPreamble(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	j, err := NewJob("", cols, WithPreamble([]byte("hdr\n")))
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := buildHeader(j)
	want := []byte("hdr\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeaderRowNamesQuotedBlankField(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	rowNames := testStringCol{vals: [][]byte{[]byte("r1")}}
	j, err := NewJob("", cols,
		WithColNames([][]byte{[]byte("a")}),
		WithRowNames(rowNames, String),
	)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := buildHeader(j)
	want := []byte("\"\",a\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeaderRowNamesBareFieldWhenQuoteOff(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	rowNames := testStringCol{vals: [][]byte{[]byte("r1")}}
	j, err := NewJob("", cols,
		WithColNames([][]byte{[]byte("a")}),
		WithRowNames(rowNames, String),
		WithQuote(QuoteOff),
	)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := buildHeader(j)
	want := []byte(",a\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeaderQuotesNamesNeedingIt(t *testing.T) {
	cols := []Column{
		testInt32Col{vals: []int32{1}},
		testInt32Col{vals: []int32{1}},
	}
	j, err := NewJob("", cols, WithColNames([][]byte{[]byte("a,b"), []byte("c")}))
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := buildHeader(j)
	want := []byte("\"a,b\",c\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildHeader mismatch (-want +got):\n%s", diff)
	}
}
