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

import "fmt"

// formatCell appends column c's cell at row to buf at pos and returns the
// new pos. It is the single point where a Column's WriterTag is switched
// on to recover the narrow accessor interface the cell is actually read
// through; List cells recurse back into formatCell for each item.
func formatCell(buf []byte, pos int, c Column, row int, p *fmtParams) int {
	switch c.Tag() {
	case Bool8:
		return writeBool8(buf, pos, c.(Bool8Column).Bool8(row), p)
	case Bool32:
		return writeBool32(buf, pos, c.(Bool32Column).Bool32(row), p)
	case Bool32AsString:
		return writeBool32AsString(buf, pos, c.(Bool32Column).Bool32(row), p)
	case Int32:
		return writeInt32(buf, pos, c.(Int32Column).Int32(row), p)
	case Int64:
		return writeInt64(buf, pos, c.(Int64Column).Int64(row), p)
	case Float64:
		return writeFloat64(buf, pos, c.(Float64Column).Float64(row), p)
	case Complex:
		return writeComplex(buf, pos, c.(ComplexColumn).Complex(row), p)
	case ITime:
		return writeITime(buf, pos, c.(ITimeColumn).ITime(row), p)
	case DateInt32:
		return writeDateInt32(buf, pos, c.(DateColumn).DateInt32(row), p)
	case DateFloat64:
		return writeDateFloat64(buf, pos, c.(DateFloatColumn).DateFloat64(row), p)
	case POSIXct:
		return writePOSIXct(buf, pos, c.(POSIXctColumn).POSIXct(row), p)
	case Nanotime:
		return writeNanotime(buf, pos, c.(NanotimeColumn).Nanotime(row), p)
	case String:
		s, ok := c.(StringColumn).StringAt(row)
		return writeString(buf, pos, s, !ok, p)
	case CategString:
		cc := c.(CategColumn)
		return writeCategString(buf, pos, cc.CategIndex(row), cc, p)
	case List:
		return writeListCell(buf, pos, c.(ListColumn).ListItem(row), p)
	default:
		panic(fmt.Sprintf("fastcsv: unsupported writer tag %d", c.Tag()))
	}
}
