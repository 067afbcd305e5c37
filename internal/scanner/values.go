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

func (s *Scanner) topMode() (ctxKind, bool) {
	if len(s.modes) == 0 {
		return 0, false
	}
	return s.modes[len(s.modes)-1], true
}

func (s *Scanner) pushMode(k ctxKind) { s.modes = append(s.modes, k) }

func (s *Scanner) popMode() {
	if len(s.modes) > 0 {
		s.modes = s.modes[:len(s.modes)-1]
	}
}

// skipInterElementWhitespace skips whitespace before a value. Inside an
// array, blank lines and comments are allowed between elements (spec.md
// §4.1); everywhere else only spaces/tabs are legal before the value
// itself.
func (s *Scanner) skipInterElementWhitespace() *errs.Error {
	mode, ok := s.topMode()
	if !ok || mode != ctxArrayMode {
		s.skipSpacesTabs()
		return nil
	}
	for {
		s.skipSpacesTabs()
		switch {
		case s.cur() == '\n':
			s.advance()
		case s.cur() == '\r' && s.byteAt(s.i+1) == '\n':
			s.advance()
			s.advance()
		case s.cur() == '#':
			if err := s.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// scanValue scans one value: a scalar literal, or the opening token of a
// nested array/inline table, or a closing ']' if an array is empty or a
// trailing comma was used.
func (s *Scanner) scanValue() Tok {
	if err := s.skipInterElementWhitespace(); err != nil {
		s.lastErr = err
		return Tok{}
	}
	pos := s.pos(s.i)
	if s.eof() {
		s.lastErr = errEOF(s, "expected a value")
		return Tok{}
	}

	if mode, ok := s.topMode(); ok && mode == ctxArrayMode && s.cur() == ']' {
		s.i++
		s.popMode()
		s.state = stPostValue
		return Tok{Kind: token.ArrayEnd, Pos: pos}
	}

	switch {
	case s.cur() == '"':
		lit, owned, err := s.scanBasicStringBody(true)
		if err != nil {
			s.lastErr = err
			return Tok{}
		}
		s.state = stPostValue
		return Tok{Kind: token.String, Pos: pos, Lit: lit, Owned: owned}
	case s.cur() == '\'':
		lit, err := s.scanLiteralStringBody(true)
		if err != nil {
			s.lastErr = err
			return Tok{}
		}
		s.state = stPostValue
		return Tok{Kind: token.String, Pos: pos, Lit: lit}
	case s.cur() == '[':
		s.i++
		s.pushMode(ctxArrayMode)
		s.state = stValue
		return Tok{Kind: token.ArrayBegin, Pos: pos}
	case s.cur() == '{':
		s.i++
		s.pushMode(ctxInlineMode)
		s.state = stInlineKeyOrEnd
		return Tok{Kind: token.InlineTableBegin, Pos: pos}
	case matchWord(s.src, s.i, "true"):
		s.i += 4
		s.state = stPostValue
		return Tok{Kind: token.True, Pos: pos}
	case matchWord(s.src, s.i, "false"):
		s.i += 5
		s.state = stPostValue
		return Tok{Kind: token.False, Pos: pos}
	case matchWord(s.src, s.i, "inf"), matchWord(s.src, s.i, "nan"):
		lit := s.src[s.i : s.i+3]
		s.i += 3
		s.state = stPostValue
		return Tok{Kind: token.Float, Pos: pos, Lit: lit}
	case isValueLeadByte(s.cur()):
		return s.scanNumberOrDatetime(pos)
	default:
		s.lastErr = errSyntax(s, s.i, "unexpected character %q, expected a value", s.cur())
		return Tok{}
	}
}

func matchWord(src []byte, i int, word string) bool {
	if i+len(word) > len(src) {
		return false
	}
	if string(src[i:i+len(word)]) != word {
		return false
	}
	// must not be followed by another bare-key byte (e.g. "truex")
	end := i + len(word)
	if end < len(src) && isBareKeyByte(src[end]) {
		return false
	}
	return true
}

func isValueLeadByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '+' || b == '-' || b == '.'
}

// scanInlineKeyOrEnd expects either the closing '}' of an inline table or
// the beginning of its next key. allowEmpty controls whether '}' is legal
// right here (true immediately after '{', false immediately after ',',
// since TOML disallows a trailing comma in inline tables).
func (s *Scanner) scanInlineKeyOrEnd() Tok {
	return s.scanInlineKeyOrEndImpl(true)
}

func (s *Scanner) scanInlineKeyOrEndImpl(allowEmpty bool) Tok {
	s.skipSpacesTabs()
	pos := s.pos(s.i)
	if s.eof() {
		s.lastErr = errEOF(s, "unterminated inline table")
		return Tok{}
	}
	if s.cur() == '}' {
		if !allowEmpty {
			s.lastErr = errSyntax(s, s.i, "trailing comma not allowed in inline table")
			return Tok{}
		}
		s.i++
		s.popMode()
		s.state = stPostValue
		return Tok{Kind: token.InlineTableEnd, Pos: pos}
	}
	if s.cur() == '\n' || s.cur() == '#' {
		s.lastErr = errSyntax(s, s.i, "newlines and comments are not allowed inside inline tables")
		return Tok{}
	}
	s.keyCtx = ctxAssignment
	s.state = stKey
	return Tok{Kind: token.KeyBegin, Pos: pos}
}

// scanPostValue handles what follows a completed value: a separator
// inside a container, or line termination at the top level. done is
// false when it only consumed a separator and the caller should loop to
// produce the following real token.
func (s *Scanner) scanPostValue() (Tok, bool) {
	mode, ok := s.topMode()
	if !ok {
		return s.scanPostValueTopLevel()
	}
	if mode == ctxArrayMode {
		return s.scanPostValueArray()
	}
	return s.scanPostValueInline()
}

func (s *Scanner) scanPostValueArray() (Tok, bool) {
	if err := s.skipInterElementWhitespace(); err != nil {
		s.lastErr = err
		return Tok{}, true
	}
	if s.eof() {
		s.lastErr = errEOF(s, "unterminated array")
		return Tok{}, true
	}
	switch s.cur() {
	case ',':
		s.i++
		s.state = stValue
		return Tok{}, false
	case ']':
		pos := s.pos(s.i)
		s.i++
		s.popMode()
		s.state = stPostValue
		return Tok{Kind: token.ArrayEnd, Pos: pos}, true
	default:
		s.lastErr = errSyntax(s, s.i, "expected ',' or ']' in array, got %q", s.cur())
		return Tok{}, true
	}
}

func (s *Scanner) scanPostValueInline() (Tok, bool) {
	s.skipSpacesTabs()
	if s.eof() {
		s.lastErr = errEOF(s, "unterminated inline table")
		return Tok{}, true
	}
	switch s.cur() {
	case ',':
		s.i++
		tok := s.scanInlineKeyOrEndImpl(false)
		return tok, true
	case '}':
		pos := s.pos(s.i)
		s.i++
		s.popMode()
		s.state = stPostValue
		return Tok{Kind: token.InlineTableEnd, Pos: pos}, true
	default:
		s.lastErr = errSyntax(s, s.i, "expected ',' or '}' in inline table, got %q", s.cur())
		return Tok{}, true
	}
}

func (s *Scanner) scanPostValueTopLevel() (Tok, bool) {
	s.skipSpacesTabs()
	switch {
	case s.eof():
		s.state = stTop
		return Tok{}, false
	case s.cur() == '#':
		if err := s.skipComment(); err != nil {
			s.lastErr = err
			return Tok{}, true
		}
		return s.scanPostValueTopLevel()
	case s.cur() == '\n':
		s.advance()
		s.state = stTop
		return Tok{}, false
	case s.cur() == '\r' && s.byteAt(s.i+1) == '\n':
		s.advance()
		s.advance()
		s.state = stTop
		return Tok{}, false
	default:
		s.lastErr = errSyntax(s, s.i, "unexpected character %q after value", s.cur())
		return Tok{}, true
	}
}
