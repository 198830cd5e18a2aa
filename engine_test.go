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
	"compress/gzip"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

type testInt32Col struct{ vals []int32 }

func (c testInt32Col) Tag() WriterTag  { return Int32 }
func (c testInt32Col) Len() int        { return len(c.vals) }
func (c testInt32Col) Int32(i int) int32 { return c.vals[i] }

type testFloat64Col struct{ vals []float64 }

func (c testFloat64Col) Tag() WriterTag    { return Float64 }
func (c testFloat64Col) Len() int          { return len(c.vals) }
func (c testFloat64Col) Float64(i int) float64 { return c.vals[i] }

type testDateCol struct{ vals []int32 }

func (c testDateCol) Tag() WriterTag     { return DateInt32 }
func (c testDateCol) Len() int           { return len(c.vals) }
func (c testDateCol) DateInt32(i int) int32 { return c.vals[i] }

type testPOSIXctCol struct{ vals []float64 }

func (c testPOSIXctCol) Tag() WriterTag     { return POSIXct }
func (c testPOSIXctCol) Len() int           { return len(c.vals) }
func (c testPOSIXctCol) POSIXct(i int) float64 { return c.vals[i] }

type testStringCol struct{ vals [][]byte }

func (c testStringCol) Tag() WriterTag { return String }
func (c testStringCol) Len() int       { return len(c.vals) }

func (c testStringCol) StringAt(i int) ([]byte, bool) {
	if c.vals[i] == nil {
		return nil, false
	}
	return c.vals[i], true
}

func (c testStringCol) MaxStringLen(nrow int) int {
	max := 0
	for i := 0; i < nrow && i < len(c.vals); i++ {
		if n := len(c.vals[i]); n > max {
			max = n
		}
	}
	return max
}

func writeToFile(t *testing.T, j *Job) []byte {
	t.Helper()
	if err := j.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(j.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return b
}

// Scenario 1: two int32 columns, an NA sentinel, no header.
func TestWriteScenario1Int32(t *testing.T) {
	cols := []Column{
		testInt32Col{vals: []int32{1, 3}},
		testInt32Col{vals: []int32{2, math.MinInt32}},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols, WithNA([]byte("NA")))
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got := writeToFile(t, j)
	want := "1,2\n3,NA\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 2: a Float64 column with the literal edge values.
func TestWriteScenario2Float64(t *testing.T) {
	cols := []Column{
		testFloat64Col{vals: []float64{0.5, 3.1416, 30460, 0.0072, math.Copysign(0, -1), math.NaN(), math.Inf(1)}},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got := writeToFile(t, j)
	want := "0.5\n3.1416\n30460\n0.0072\n0\n\nInf\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 3: date formatting, plain and squashed.
func TestWriteScenario3Date(t *testing.T) {
	cols := []Column{testDateCol{vals: []int32{0, -1, 2932896}}}

	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got := writeToFile(t, j)
	want := "1970-01-01\n1969-12-31\n9999-12-31\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}

	path2 := filepath.Join(t.TempDir(), "out2.csv")
	j2, err := NewJob(path2, cols, WithSquashDateTime())
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got2 := writeToFile(t, j2)
	want2 := "19700101\n19691231\n99991231\n"
	if string(got2) != want2 {
		t.Errorf("got %q, want %q", got2, want2)
	}
}

// Scenario 4: POSIXct fractional-second suffix rules.
func TestWriteScenario4POSIXct(t *testing.T) {
	cols := []Column{testPOSIXctCol{vals: []float64{0.0, 0.123456, 1.000}}}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got := writeToFile(t, j)
	want := "1970-01-01T00:00:00Z\n1970-01-01T00:00:00.123456Z\n1970-01-01T00:00:01Z\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 5: auto quoting and double-quote escaping.
func TestWriteScenario5String(t *testing.T) {
	cols := []Column{testStringCol{vals: [][]byte{
		[]byte(""),
		[]byte("a,b"),
		[]byte(`he said "hi"`),
	}}}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	got := writeToFile(t, j)
	want := "\"\"\n\"a,b\"\n\"he said \"\"hi\"\"\"\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Row names: a quoted-empty leading header field, then each row's name
// before its data.
func TestWriteWithRowNames(t *testing.T) {
	cols := []Column{
		testInt32Col{vals: []int32{10, 20, 30}},
	}
	rowNames := testStringCol{vals: [][]byte{[]byte("r1"), []byte("r2"), []byte("r3")}}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols,
		WithColNames([][]byte{[]byte("v")}),
		WithRowNames(rowNames, String),
	)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	got := writeToFile(t, j)
	want := "\"\",v\nr1,10\nr2,20\nr3,30\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 6: a multi-thread run must byte-equal a single-thread run.
func TestWriteScenario6OrderingAcrossThreads(t *testing.T) {
	const nrow = 50000
	vals := make([]int32, nrow)
	for i := range vals {
		vals[i] = int32(i)
	}

	run := func(threads int) []byte {
		cols := []Column{testInt32Col{vals: vals}}
		path := filepath.Join(t.TempDir(), "out.csv")
		j, err := NewJob(path, cols, WithThreads(threads), WithBuffMB(1))
		if err != nil {
			t.Fatalf("NewJob: %v", err)
		}
		return writeToFile(t, j)
	}

	single := run(1)
	multi := run(4)
	if !bytes.Equal(single, multi) {
		t.Errorf("multi-threaded output diverged from single-threaded output")
	}
}

// Gzip validity: the inflated output must byte-equal the non-gzip output.
func TestWriteGzipRoundTrip(t *testing.T) {
	vals := make([]int32, 20000)
	for i := range vals {
		vals[i] = int32(i)
	}

	plainPath := filepath.Join(t.TempDir(), "plain.csv")
	plainJob, err := NewJob(plainPath, []Column{testInt32Col{vals: vals}})
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	plain := writeToFile(t, plainJob)

	gzPath := filepath.Join(t.TempDir(), "out.csv.gz")
	gzJob, err := NewJob(gzPath, []Column{testInt32Col{vals: vals}}, WithGzip(), WithBuffMB(1))
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if err := gzJob.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(gzPath)
	if err != nil {
		t.Fatalf("opening gzip output: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	inflated, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("reading inflated output: %v", err)
	}
	if err := zr.Close(); err != nil {
		t.Fatalf("closing gzip reader: %v", err)
	}

	if !bytes.Equal(plain, inflated) {
		t.Errorf("inflated gzip output does not match plain output")
	}
}

// Quote auto-promotion: a non-empty NA token promotes auto-quote to
// unconditional quoting for the whole job.
func TestQuoteAutoPromotion(t *testing.T) {
	cols := []Column{testStringCol{vals: [][]byte{[]byte("plain")}}}
	path := filepath.Join(t.TempDir(), "out.csv")
	j, err := NewJob(path, cols, WithNA([]byte("NA")))
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if j.Quote != QuoteOn {
		t.Fatalf("Quote = %v, want QuoteOn after NA promotion", j.Quote)
	}
	got := writeToFile(t, j)
	want := "\"plain\"\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
