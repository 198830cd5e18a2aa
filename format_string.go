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

// needsQuoting reports whether s must be quoted under auto mode: it is
// empty, or it contains sep, sep2, '\n', '\r', or '"'.
func needsQuoting(s []byte, sep, sep2 byte) bool {
	if len(s) == 0 {
		return true
	}
	for _, c := range s {
		if c == sep || (sep2 != 0 && c == sep2) || c == '\n' || c == '\r' || c == '"' {
			return true
		}
	}
	return false
}

// writeString appends a String cell. NA is written unquoted as the NA
// token so that an empty quoted field ("") and a missing field (NA) stay
// distinguishable. Otherwise the field is quoted per the job's quote
// mode: QuoteOff never quotes, QuoteOn always quotes, QuoteAuto quotes
// only fields that need it.
func writeString(buf []byte, pos int, s []byte, isNA bool, p *fmtParams) int {
	if isNA {
		return p.writeNA(buf, pos)
	}
	switch p.quote {
	case QuoteOff:
		return pos + copy(buf[pos:], s)
	case QuoteOn:
		return writeQuoted(buf, pos, s, p.qmethod)
	default:
		if needsQuoting(s, p.sep, p.sep2) {
			return writeQuoted(buf, pos, s, p.qmethod)
		}
		return pos + copy(buf[pos:], s)
	}
}

// writeQuoted appends s wrapped in double quotes, escaping embedded '"'
// by doubling it (QMethodDouble) or by backslash-escaping it along with
// any literal '\' (QMethodBackslash).
func writeQuoted(buf []byte, pos int, s []byte, m QMethod) int {
	buf[pos] = '"'
	pos++
	for _, c := range s {
		switch {
		case c == '"' && m == QMethodDouble:
			buf[pos] = '"'
			pos++
		case c == '"' && m == QMethodBackslash:
			buf[pos] = '\\'
			pos++
		case c == '\\' && m == QMethodBackslash:
			buf[pos] = '\\'
			pos++
		}
		buf[pos] = c
		pos++
	}
	buf[pos] = '"'
	return pos + 1
}

// writeCategString appends a CategString cell: idx<0 is NA, otherwise the
// label at idx is written through writeString's quoting rules.
func writeCategString(buf []byte, pos, idx int, col CategColumn, p *fmtParams) int {
	if idx < 0 {
		return p.writeNA(buf, pos)
	}
	return writeString(buf, pos, col.CategLabel(idx), false, p)
}
