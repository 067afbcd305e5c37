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

package build

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rangeError marks a decodeInt failure that is specifically a magnitude
// overflow, so the builder can report spec.md §7's Overflow kind rather
// than the generic SyntaxError it uses for malformed/misplaced-underscore
// lexemes.
type rangeError struct{ msg string }

func (e *rangeError) Error() string { return e.msg }

// isDigitLike reports whether b is a hex digit: a decimal digit or one of
// the letters a-f/A-F. hasValidUnderscorePlacement uses it only for 0x
// literals; everywhere else only decimal digits may flank a '_'.
func isDigitLike(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// hasValidUnderscorePlacement checks spec.md §3's "underscores are
// accepted between digits" rule on the raw lexeme, before any '_' is
// stripped: each '_' must have a digit immediately before and after it,
// ruling out leading/trailing/doubled underscores such as "_100",
// "100_", and "1__000".
func hasValidUnderscorePlacement(lit []byte) bool {
	hex := len(lit) > 1 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X')
	digit := func(b byte) bool {
		if hex {
			return isDigitLike(b)
		}
		return b >= '0' && b <= '9'
	}
	for i, b := range lit {
		if b != '_' {
			continue
		}
		if i == 0 || i == len(lit)-1 || !digit(lit[i-1]) || !digit(lit[i+1]) {
			return false
		}
	}
	return true
}

// decodeInt converts an already-classified integer lexeme (spec.md §4.1's
// token.Int) to its value, honoring the 0x/0o/0b radix prefixes and '_'
// digit separators from spec.md §3.
func decodeInt(lit []byte) (int64, error) {
	if !hasValidUnderscorePlacement(lit) {
		return 0, fmt.Errorf("integer literal %q has a misplaced '_' separator", lit)
	}
	s := strings.ReplaceAll(string(lit), "_", "")
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, &rangeError{fmt.Sprintf("integer literal %q out of range", lit)}
		}
		return 0, fmt.Errorf("integer literal %q malformed", lit)
	}
	// Decimal literals are signed 64-bit values, so bound u against the
	// int64 range before the bare conversion below would otherwise
	// silently wrap (e.g. 9223372036854775808 -> math.MinInt64). Hex/
	// octal/binary literals are two's-complement 64-bit bit patterns by
	// TOML convention and are expected to wrap, so they keep using the
	// full uint64 range ParseUint already bounded them to.
	if base == 10 {
		if neg {
			if u > 1<<63 {
				return 0, &rangeError{fmt.Sprintf("integer literal %q out of range for a 64-bit signed integer", lit)}
			}
		} else if u > math.MaxInt64 {
			return 0, &rangeError{fmt.Sprintf("integer literal %q out of range for a 64-bit signed integer", lit)}
		}
	}
	v := int64(u)
	if neg {
		v = -v
	}
	return v, nil
}

// decodeFloat converts an already-classified float lexeme to its value,
// recognizing both "inf" and "nan" per spec.md §9's open-question
// resolution (both spellings, signed or not, are accepted).
func decodeFloat(lit []byte) (float64, error) {
	switch string(lit) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	if !hasValidUnderscorePlacement(lit) {
		return 0, fmt.Errorf("float literal %q has a misplaced '_' separator", lit)
	}
	s := strings.ReplaceAll(string(lit), "_", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("float literal %q malformed", lit)
	}
	return f, nil
}
