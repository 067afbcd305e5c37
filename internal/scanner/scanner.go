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

// Package scanner implements the byte-oriented TOML lexical scanner from
// spec.md §4.1: a single-pass state machine over a complete input buffer
// that emits a deterministic, total-ordered token sequence.
//
// The state machine is modeled on cue/scanner.Scanner: an explicit
// offset-based cursor advanced one byte at a time by next(), errors
// reported through a position-carrying handler rather than panicking, and
// a main Next() entry point that is re-entered once per returned token
// rather than recursing through the whole grammar. Where cue/scanner reads
// whole runes because CUE source can contain arbitrary identifier
// characters, this scanner reads raw bytes and validates UTF-8 itself
// (utf8.go) only inside the regions spec.md §4.1 requires it: strings,
// comments, and quoted keys.
package scanner

import (
	"github.com/haatch/tomlcore/internal/errs"
	"github.com/haatch/tomlcore/internal/token"
)

// state is the scanner's principal state, per spec.md §4.1's description
// of "key in one of three positions... a value... a number being
// accumulated... one of the string flavors... a post-value state".
type state int

const (
	stTop state = iota
	stKey
	stAfterKey
	stValue
	stInlineKeyOrEnd
	stPostValue
)

// keyContext records which structural statement opened the current key
// list, so scanAfterKey knows whether '=' or ']'/']]' legally closes it.
type keyContext int

const (
	ctxAssignment keyContext = iota
	ctxTableHeader
	ctxArrayTableHeader
)

// ctxKind is an entry in the nesting mode stack (spec.md §4.1's "parallel
// mode stack"): which kind of container we are currently inside a value
// of, so post-value handling (newline/comment legality, comma, closer)
// can be decided correctly.
type ctxKind byte

const (
	ctxArrayMode  ctxKind = 'A'
	ctxInlineMode ctxKind = 'I'
)

// Options configures the scanner, mirroring the subset of spec.md §6's
// Options that affects lexing rather than tree building.
type Options struct {
	MaxValueLen int // 0 means "no limit beyond input length"
}

// Scanner turns a complete UTF-8 byte buffer into TOML tokens.
type Scanner struct {
	src []byte
	i   int // offset of the next unread byte

	file *token.File
	opts Options

	state      state
	keyCtx     keyContext
	modes      []ctxKind
	valueStart int // takeValueSlice's low-water mark, per spec.md §4.1

	lastErr *errs.Error
}

// New creates a Scanner over src. src must remain alive and unmodified
// for as long as any token or Value borrowed from it is in use.
func New(src []byte, opts Options) *Scanner {
	return &Scanner{
		src:  src,
		file: token.NewFile(len(src)),
		opts: opts,
	}
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() *errs.Error { return s.lastErr }

func (s *Scanner) pos(offset int) token.Position {
	return s.file.Position(offset)
}

// --- low level cursor ---

func (s *Scanner) eof() bool { return s.i >= len(s.src) }

func (s *Scanner) byteAt(off int) byte {
	if off < 0 || off >= len(s.src) {
		return 0
	}
	return s.src[off]
}

func (s *Scanner) cur() byte { return s.byteAt(s.i) }

// advance consumes one byte, tracking newlines for position bookkeeping.
func (s *Scanner) advance() byte {
	b := s.cur()
	s.i++
	if b == '\n' {
		s.file.AddLine(s.i)
	}
	return b
}

func (s *Scanner) startValue() { s.valueStart = s.i }

// takeValueSlice returns src[valueStart:i] and advances valueStart to i,
// per spec.md §4.1.
func (s *Scanner) takeValueSlice() []byte {
	b := s.src[s.valueStart:s.i]
	s.valueStart = s.i
	return b
}

func (s *Scanner) skipSpacesTabs() {
	for s.cur() == ' ' || s.cur() == '\t' {
		s.i++
	}
}

// skipComment consumes a '#' comment (already known to start at the
// current position) up to but not including the terminating newline.
func (s *Scanner) skipComment() *errs.Error {
	s.i++ // '#'
	for !s.eof() && s.cur() != '\n' {
		b := s.cur()
		if b == '\r' {
			if s.byteAt(s.i+1) != '\n' {
				return errs.Newf(errs.SyntaxError, s.pos(s.i), "bare CR not allowed in comment")
			}
			s.i++
			continue
		}
		if b < 0x20 && b != '\t' {
			return errs.Newf(errs.SyntaxError, s.pos(s.i), "control character not allowed in comment")
		}
		if b < 0x80 {
			s.i++
			continue
		}
		w, ok := validateUTF8(s.src, s.i)
		if !ok {
			return errs.Newf(errs.SyntaxError, s.pos(s.i), "invalid UTF-8 in comment")
		}
		s.i += w
	}
	return nil
}

// Next returns the next token in the stream. Callers must keep calling
// Next until it returns an end_of_document token or an error.
func (s *Scanner) Next() (Tok, error) {
	tok := s.next()
	if s.lastErr != nil {
		return Tok{}, s.lastErr
	}
	if s.opts.MaxValueLen > 0 && len(tok.Lit) > s.opts.MaxValueLen {
		e := errs.Newf(errs.ValueTooLong, tok.Pos, "lexeme of length %d exceeds max_value_len %d", len(tok.Lit), s.opts.MaxValueLen)
		s.lastErr = e
		return Tok{}, e
	}
	return tok, nil
}

func (s *Scanner) next() Tok {
	for s.lastErr == nil {
		switch s.state {
		case stTop:
			if t, done := s.scanTop(); done {
				return t
			}
			continue
		case stKey:
			return s.scanKeySegment()
		case stAfterKey:
			return s.scanAfterKey()
		case stValue:
			return s.scanValue()
		case stInlineKeyOrEnd:
			return s.scanInlineKeyOrEnd()
		case stPostValue:
			if t, done := s.scanPostValue(); done {
				return t
			}
			continue
		}
	}
	return Tok{}
}

// scanTop handles the top level: blank lines, comments, table/array-table
// headers, and the start of a key = value assignment. done is false when
// it only consumed insignificant input and the caller should loop again.
func (s *Scanner) scanTop() (Tok, bool) {
	for {
		s.skipSpacesTabs()
		switch {
		case s.eof():
			s.state = stTop
			return Tok{Kind: token.EndOfDocument, Pos: s.pos(s.i)}, true
		case s.cur() == '\n':
			s.advance()
			continue
		case s.cur() == '\r':
			if s.byteAt(s.i+1) != '\n' {
				s.lastErr = errs.Newf(errs.SyntaxError, s.pos(s.i), "bare CR not allowed")
				return Tok{}, true
			}
			s.advance()
			continue
		case s.cur() == '#':
			if err := s.skipComment(); err != nil {
				s.lastErr = err
				return Tok{}, true
			}
			continue
		case s.cur() == '[':
			pos := s.pos(s.i)
			s.advance()
			if s.cur() == '[' {
				s.advance()
				s.keyCtx = ctxArrayTableHeader
				s.state = stKey
				return Tok{Kind: token.ArrayTableKeyBegin, Pos: pos}, true
			}
			s.keyCtx = ctxTableHeader
			s.state = stKey
			return Tok{Kind: token.TableKeyBegin, Pos: pos}, true
		default:
			s.keyCtx = ctxAssignment
			s.state = stKey
			return Tok{Kind: token.KeyBegin, Pos: s.pos(s.i)}, true
		}
	}
}
