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

// Package toml parses TOML 1.0 documents into a small, self-contained
// value tree.
//
// The package is a thin façade: Parse feeds a complete input buffer
// through an internal byte-oriented scanner and a tree builder that
// enforces TOML's duplicate-key and table-promotion rules, then returns
// the assembled document as a *Value.
package toml

import (
	"github.com/haatch/tomlcore/internal/build"
	"github.com/haatch/tomlcore/internal/errs"
	"github.com/haatch/tomlcore/internal/scanner"
	"github.com/haatch/tomlcore/internal/value"
)

// Value, Table, Kind, and Datetime are the public names for the data
// model internal/value defines; they are aliased rather than
// reimplemented so the builder and this façade share one type.
type (
	Value    = value.Value
	Table    = value.Table
	Kind     = value.Kind
	Datetime = value.Datetime
)

// Value kind constants, re-exported for callers that switch on Kind.
const (
	KindString   = value.KindString
	KindInteger  = value.KindInteger
	KindFloat    = value.KindFloat
	KindBool     = value.KindBool
	KindDatetime = value.KindDatetime
	KindArray    = value.KindArray
	KindTable    = value.KindTable
)

// Error is the positioned, categorized failure type returned by Parse.
type Error = errs.Error

// Error kind constants, re-exported from the internal taxonomy in
// spec.md §7.
const (
	SyntaxError               = errs.SyntaxError
	UnexpectedEndOfInput      = errs.UnexpectedEndOfInput
	UnexpectedToken           = errs.UnexpectedToken
	DuplicateKey              = errs.DuplicateKey
	ValueTooLong              = errs.ValueTooLong
	InvalidCharacter          = errs.InvalidCharacter
	Overflow                  = errs.Overflow
	CodepointTooLarge         = errs.CodepointTooLarge
	CannotEncodeSurrogateHalf = errs.CannotEncodeSurrogateHalf
	OutOfMemory               = errs.OutOfMemory
)

// AllocateMode controls how aggressively Parse copies scalar lexemes out
// of the input buffer.
type AllocateMode int

const (
	// AllocateIfNeeded returns Go strings built with as few intermediate
	// copies as the string/key flavor allows. Since Go string values are
	// always independent of their source []byte, this and
	// AllocateAlways are structurally indistinguishable to a caller;
	// the distinction is retained from spec.md §6 for interface parity
	// with a zero-copy host language, not because this implementation
	// can observably skip a copy.
	AllocateIfNeeded AllocateMode = iota
	// AllocateAlways forces a copy of every scalar lexeme.
	AllocateAlways
)

// Options configures Parse, per spec.md §6.
type Options struct {
	// MaxValueLen bounds the length of any single string/key/number
	// lexeme. Zero means "no limit beyond the input length".
	MaxValueLen int
	// Allocate selects the copy policy described on AllocateMode.
	Allocate AllocateMode
}

// Parse decodes a complete UTF-8 TOML document. The input must not
// contain a byte-order mark; stripping one is the caller's
// responsibility (spec.md §6).
func Parse(data []byte, opts Options) (*Value, error) {
	sc := scanner.New(data, scanner.Options{MaxValueLen: opts.MaxValueLen})
	bld := build.New(sc)
	root, err := bld.Build()
	if err != nil {
		return nil, err
	}
	return value.TableVal(root), nil
}

// Position reports the line (1-based), column (1-based), and byte offset
// (0-based) of a failure, per spec.md §6's diagnostics requirement.
func Position(err error) (line, column, offset int, ok bool) {
	e, ok := err.(*Error)
	if !ok {
		return 0, 0, 0, false
	}
	return e.Pos.Line, e.Pos.Column, e.Pos.Offset, true
}
