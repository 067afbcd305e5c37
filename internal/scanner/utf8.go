// Copyright 2026 The tomlcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

// validateUTF8 implements the byte-range sub-state machine from spec.md
// §4.1: rather than textually duplicating one validator per string flavor
// (basic key, literal key, basic value, multi-line basic value, ...), a
// single routine checks only multi-byte well-formedness; callers decide
// for themselves, before calling it, whether control bytes or bare
// newlines are acceptable in their context. It returns the width of the
// validated rune starting at i, or ok=false if src[i:] does not begin
// with well-formed UTF-8.
//
// Lead-byte ranges follow RFC 3629 exactly:
//
//	1-byte: 00..7F
//	2-byte: lead C2..DF, then 80..BF
//	3-byte: lead E0 then A0..BF then 80..BF
//	        lead E1..EC,EE..EF then 80..BF twice
//	        lead ED then 80..9F then 80..BF
//	4-byte: lead F0 then 90..BF then 80..BF twice
//	        lead F1..F3 then 80..BF three times
//	        lead F4 then 80..8F then 80..BF twice
//
// Any other lead byte (80..BF, C0..C1, F5..FF) is a syntax error.
func validateUTF8(src []byte, i int) (width int, ok bool) {
	if i >= len(src) {
		return 0, false
	}
	b0 := src[i]

	switch {
	case b0 < 0x80:
		return 1, true

	case b0 >= 0xC2 && b0 <= 0xDF:
		if !cont(src, i+1) {
			return 0, false
		}
		return 2, true

	case b0 == 0xE0:
		if !inRange(src, i+1, 0xA0, 0xBF) || !cont(src, i+2) {
			return 0, false
		}
		return 3, true
	case (b0 >= 0xE1 && b0 <= 0xEC) || b0 == 0xEE || b0 == 0xEF:
		if !cont(src, i+1) || !cont(src, i+2) {
			return 0, false
		}
		return 3, true
	case b0 == 0xED:
		if !inRange(src, i+1, 0x80, 0x9F) || !cont(src, i+2) {
			return 0, false
		}
		return 3, true

	case b0 == 0xF0:
		if !inRange(src, i+1, 0x90, 0xBF) || !cont(src, i+2) || !cont(src, i+3) {
			return 0, false
		}
		return 4, true
	case b0 >= 0xF1 && b0 <= 0xF3:
		if !cont(src, i+1) || !cont(src, i+2) || !cont(src, i+3) {
			return 0, false
		}
		return 4, true
	case b0 == 0xF4:
		if !inRange(src, i+1, 0x80, 0x8F) || !cont(src, i+2) || !cont(src, i+3) {
			return 0, false
		}
		return 4, true

	default: // 80..BF, C0..C1, F5..FF
		return 0, false
	}
}

func cont(src []byte, i int) bool {
	return inRange(src, i, 0x80, 0xBF)
}

func inRange(src []byte, i int, lo, hi byte) bool {
	if i >= len(src) {
		return false
	}
	b := src[i]
	return b >= lo && b <= hi
}
