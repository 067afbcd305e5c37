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

import (
	"github.com/haatch/tomlcore/internal/errs"
	"github.com/haatch/tomlcore/internal/token"
)

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isValueRunByte(b byte) bool {
	return isDigitByte(b) ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		b == '_' || b == '+' || b == '-' || b == '.' || b == ':'
}

func (s *Scanner) consumeValueRun() {
	for isValueRunByte(s.cur()) {
		s.i++
	}
}

// scanNumberOrDatetime scans the unified "number" lexeme from spec.md
// §4.1: a contiguous run of digits, sign, letters, '.', '_', and ':',
// with one extra lookahead rule for the TOML-legal case of a bare space
// separating an offset/local datetime's date and time halves.
func (s *Scanner) scanNumberOrDatetime(pos token.Position) Tok {
	start := s.i
	s.consumeValueRun()

	if isBareLocalDate(s.src[start:s.i]) && s.cur() == ' ' && looksLikeTimeAt(s, s.i+1) {
		s.i++ // the separating space
		s.consumeValueRun()
	}

	lexeme := s.src[start:s.i]
	kind, err := classifyNumberLexeme(lexeme)
	if err != nil {
		err.Pos = s.pos(start)
		s.lastErr = err
		return Tok{}
	}
	s.state = stPostValue
	return Tok{Kind: kind, Pos: pos, Lit: lexeme}
}

func isBareLocalDate(lex []byte) bool {
	return len(lex) == 10 &&
		isDigitByte(lex[0]) && isDigitByte(lex[1]) && isDigitByte(lex[2]) && isDigitByte(lex[3]) &&
		lex[4] == '-' &&
		isDigitByte(lex[5]) && isDigitByte(lex[6]) &&
		lex[7] == '-' &&
		isDigitByte(lex[8]) && isDigitByte(lex[9])
}

func looksLikeTimeAt(s *Scanner, j int) bool {
	return isDigitByte(s.byteAt(j)) && isDigitByte(s.byteAt(j+1)) && s.byteAt(j+2) == ':'
}

func hasDatePrefix(l []byte) bool {
	return len(l) >= 10 &&
		isDigitByte(l[0]) && isDigitByte(l[1]) && isDigitByte(l[2]) && isDigitByte(l[3]) &&
		l[4] == '-' &&
		isDigitByte(l[5]) && isDigitByte(l[6]) &&
		l[7] == '-' &&
		isDigitByte(l[8]) && isDigitByte(l[9])
}

func hasBareTimePrefix(l []byte) bool {
	return len(l) >= 8 &&
		isDigitByte(l[0]) && isDigitByte(l[1]) && l[2] == ':' &&
		isDigitByte(l[3]) && isDigitByte(l[4]) && l[5] == ':' &&
		isDigitByte(l[6]) && isDigitByte(l[7])
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

func classifyNumberLexeme(lex []byte) (token.Kind, *errs.Error) {
	if len(lex) == 0 {
		return 0, errs.Newf(errs.SyntaxError, token.Position{}, "empty numeric lexeme")
	}
	if hasDatePrefix(lex) || hasBareTimePrefix(lex) {
		return token.Datetime, nil
	}

	body := lex
	signed := false
	if body[0] == '+' || body[0] == '-' {
		signed = true
		body = body[1:]
	}
	if string(body) == "inf" || string(body) == "nan" {
		return token.Float, nil
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		if signed {
			return 0, errs.Newf(errs.SyntaxError, token.Position{}, "sign not allowed on hexadecimal integer")
		}
		return token.Int, nil
	}
	if len(body) > 1 && body[0] == '0' && body[1] == 'o' {
		if signed {
			return 0, errs.Newf(errs.SyntaxError, token.Position{}, "sign not allowed on octal integer")
		}
		return token.Int, nil
	}
	if len(body) > 1 && body[0] == '0' && body[1] == 'b' {
		if signed {
			return 0, errs.Newf(errs.SyntaxError, token.Position{}, "sign not allowed on binary integer")
		}
		return token.Int, nil
	}
	if len(body) > 1 && body[0] == '0' && isDigitByte(body[1]) {
		return 0, errs.Newf(errs.SyntaxError, token.Position{}, "leading zero not allowed in integer")
	}
	if containsByte(body, '.') || containsByte(body, 'e') || containsByte(body, 'E') {
		return token.Float, nil
	}
	return token.Int, nil
}
