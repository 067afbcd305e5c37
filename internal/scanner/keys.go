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

import "github.com/haatch/tomlcore/internal/token"

func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanKeySegment scans one key segment (bare, basic-quoted, or
// literal-quoted) and transitions to stAfterKey.
func (s *Scanner) scanKeySegment() Tok {
	s.skipSpacesTabs()
	pos := s.pos(s.i)
	switch {
	case s.eof():
		s.lastErr = errEOF(s, "expected a key")
		return Tok{}
	case isBareKeyByte(s.cur()):
		s.startValue()
		for isBareKeyByte(s.cur()) {
			s.i++
		}
		lit := s.takeValueSlice()
		s.state = stAfterKey
		return Tok{Kind: token.Key, Pos: pos, Lit: lit}
	case s.cur() == '"':
		lit, owned, err := s.scanBasicStringBody(false)
		if err != nil {
			s.lastErr = err
			return Tok{}
		}
		s.state = stAfterKey
		return Tok{Kind: token.Key, Pos: pos, Lit: lit, Owned: owned}
	case s.cur() == '\'':
		lit, err := s.scanLiteralStringBody(false)
		if err != nil {
			s.lastErr = err
			return Tok{}
		}
		s.state = stAfterKey
		return Tok{Kind: token.Key, Pos: pos, Lit: lit}
	default:
		s.lastErr = errSyntax(s, s.i, "unexpected character %q in key", s.cur())
		return Tok{}
	}
}

// scanAfterKey expects '.', '=', or a header closer, depending on keyCtx.
func (s *Scanner) scanAfterKey() Tok {
	s.skipSpacesTabs()
	pos := s.pos(s.i)
	if s.eof() {
		s.lastErr = errEOF(s, "truncated key")
		return Tok{}
	}
	switch {
	case s.cur() == '.':
		s.i++
		s.state = stKey
		return Tok{Kind: token.KeyBegin, Pos: pos}
	case s.keyCtx == ctxAssignment && s.cur() == '=':
		s.i++
		s.state = stValue
		return Tok{Kind: token.ValueBegin, Pos: pos}
	case s.keyCtx == ctxTableHeader && s.cur() == ']':
		s.i++
		return s.finishHeader(pos)
	case s.keyCtx == ctxArrayTableHeader && s.cur() == ']':
		s.i++
		if s.cur() != ']' {
			s.lastErr = errSyntax(s, s.i, "expected ']]' to close array-of-tables header")
			return Tok{}
		}
		s.i++
		return s.finishHeader(pos)
	default:
		s.lastErr = errSyntax(s, s.i, "unexpected character %q after key", s.cur())
		return Tok{}
	}
}

// finishHeader consumes the remainder of the header line (whitespace,
// optional comment, then newline/EOF) and emits TableBegin.
func (s *Scanner) finishHeader(pos token.Position) Tok {
	s.skipSpacesTabs()
	switch {
	case s.eof():
		s.state = stTop
	case s.cur() == '#':
		if err := s.skipComment(); err != nil {
			s.lastErr = err
			return Tok{}
		}
		s.state = stTop
	case s.cur() == '\n':
		s.advance()
		s.state = stTop
	case s.cur() == '\r' && s.byteAt(s.i+1) == '\n':
		s.advance()
		s.advance()
		s.state = stTop
	default:
		s.lastErr = errSyntax(s, s.i, "unexpected character %q after header", s.cur())
		return Tok{}
	}
	return Tok{Kind: token.TableBegin, Pos: pos}
}
