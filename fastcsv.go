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

// Package fastcsv writes tabular data to a delimited text stream at high
// throughput on multi-core machines, with optional on-the-fly gzip
// compression.
//
// A [Job] describes one emission: the destination, the separator and
// quoting rules, and a typed [Column] per output field. [Job.Write]
// partitions the rows into batches, formats each batch's cells on a pool
// of worker goroutines, and commits the resulting bytes to the sink in
// strict row order, optionally streaming them through a shared deflate
// encoder to produce a single RFC-1952 gzip member.
//
// A single [Job.Write] call runs its own pool of worker goroutines; that
// internal parallelism is how the package achieves its throughput, so
// callers do not need to split the work themselves.
package fastcsv
