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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// gzipHeader is the fixed 10-byte gzip header this package always emits:
// deflate method, no flags set, zero MTIME, and the "unix" OS byte. No
// NAME, COMMENT, or EXTRA subfields are written; this package produces
// one shared gzip member per Write call, not a per-batch wrapper.
var gzipHeader = []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}

// gzipSink wraps a destination writer with a single streaming deflate
// encoder (klauspost/compress/flate, chosen for its throughput over the
// standard library's compress/flate on the multi-megabyte batches this
// package produces) so that every batch's bytes become one RFC-1952
// gzip member. The encoder is only ever touched from the single-threaded
// ordered commit step described in the parallel row engine, so it never
// needs its own locking; its address is pinned for the sink's lifetime,
// satisfying the "do not relocate a live deflate encoder" resource-model
// constraint by construction.
type gzipSink struct {
	dst     io.Writer
	deflate *flate.Writer
	pending bytes.Buffer

	crc uint32
	len uint64
}

func newGzipSink(dst io.Writer) (*gzipSink, error) {
	g := &gzipSink{dst: dst}
	fw, err := flate.NewWriter(&g.pending, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing deflate encoder: %w", ErrCompression, err)
	}
	g.deflate = fw
	return g, nil
}

// writeHeader writes the fixed gzip header, then compresses and flushes
// hdr (the CSV header bytes) as the first deflate-block group in the
// member.
func (g *gzipSink) writeHeader(hdr []byte) error {
	if _, err := g.dst.Write(gzipHeader); err != nil {
		return fmt.Errorf("%w: writing gzip header: %w", ErrWrite, err)
	}
	return g.writeBatch(hdr, crc32IEEE(hdr))
}

// writeBatch compresses data, flushes with the deflate equivalent of
// Z_SYNC_FLUSH so the emitted bytes form complete, byte-aligned deflate
// blocks, writes them to the destination, and folds crc (the caller's
// already-computed CRC-32 of data, combined by crc32Combine so this
// function never rehashes the bytes) into the running gzip trailer
// state.
func (g *gzipSink) writeBatch(data []byte, crc uint32) error {
	if _, err := g.deflate.Write(data); err != nil {
		return fmt.Errorf("%w: compressing batch: %w", ErrCompression, err)
	}
	if err := g.deflate.Flush(); err != nil {
		return fmt.Errorf("%w: flushing batch: %w", ErrCompression, err)
	}
	if _, err := g.dst.Write(g.pending.Bytes()); err != nil {
		return fmt.Errorf("%w: writing compressed batch: %w", ErrWrite, err)
	}
	g.pending.Reset()

	g.crc = crc32Combine(g.crc, crc, int64(len(data)))
	g.len += uint64(len(data))
	return nil
}

// close emits the terminating empty final deflate block and the 8-byte
// gzip trailer (CRC-32 || ISIZE mod 2^32), then closes the destination.
func (g *gzipSink) close(dstCloser io.Closer) error {
	if err := g.deflate.Close(); err != nil {
		return fmt.Errorf("%w: finalizing deflate stream: %w", ErrCompression, err)
	}
	if _, err := g.dst.Write(g.pending.Bytes()); err != nil {
		return fmt.Errorf("%w: writing final block: %w", ErrWrite, err)
	}

	trailer := make([]byte, 8)
	binary.LittleEndian.PutUint32(trailer[0:4], g.crc)
	binary.LittleEndian.PutUint32(trailer[4:8], uint32(g.len))
	if _, err := g.dst.Write(trailer); err != nil {
		return fmt.Errorf("%w: writing gzip trailer: %w", ErrWrite, err)
	}

	if err := dstCloser.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrClose, err)
	}
	return nil
}
