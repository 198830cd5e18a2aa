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
	"testing"
)

type closeOnlyNopCloser struct{}

func (closeOnlyNopCloser) Close() error { return nil }

func TestGzipSinkRoundTrip(t *testing.T) {
	var dst bytes.Buffer
	g, err := newGzipSink(&dst)
	if err != nil {
		t.Fatalf("newGzipSink: %v", err)
	}

	hdr := []byte("a,b\n")
	if err := g.writeHeader(hdr); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}

	batch1 := []byte("1,2\n3,4\n")
	if err := g.writeBatch(batch1, crc32IEEE(batch1)); err != nil {
		t.Fatalf("writeBatch 1: %v", err)
	}
	batch2 := []byte("5,6\n")
	if err := g.writeBatch(batch2, crc32IEEE(batch2)); err != nil {
		t.Fatalf("writeBatch 2: %v", err)
	}

	if err := g.close(closeOnlyNopCloser{}); err != nil {
		t.Fatalf("close: %v", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(dst.Bytes()))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("reading gzip stream: %v", err)
	}

	want := "a,b\n1,2\n3,4\n5,6\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGzipSinkEmptyBody(t *testing.T) {
	var dst bytes.Buffer
	g, err := newGzipSink(&dst)
	if err != nil {
		t.Fatalf("newGzipSink: %v", err)
	}
	if err := g.writeHeader(nil); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	if err := g.close(closeOnlyNopCloser{}); err != nil {
		t.Fatalf("close: %v", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(dst.Bytes()))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("reading gzip stream: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}
