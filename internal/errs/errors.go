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

// Package errs defines the error taxonomy shared by the scanner and the
// tree builder, modeled on cue/errors: a position-carrying Error type plus
// a List aggregate that itself implements error.
package errs

import (
	"fmt"
	"strings"

	"github.com/haatch/tomlcore/internal/token"
)

// Kind is one of the flat error categories from spec.md §7.
type Kind int

const (
	SyntaxError Kind = iota
	UnexpectedEndOfInput
	UnexpectedToken
	DuplicateKey
	ValueTooLong
	InvalidCharacter
	Overflow
	CodepointTooLarge
	CannotEncodeSurrogateHalf
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case UnexpectedToken:
		return "UnexpectedToken"
	case DuplicateKey:
		return "DuplicateKey"
	case ValueTooLong:
		return "ValueTooLong"
	case InvalidCharacter:
		return "InvalidCharacter"
	case Overflow:
		return "Overflow"
	case CodepointTooLarge:
		return "CodepointTooLarge"
	case CannotEncodeSurrogateHalf:
		return "CannotEncodeSurrogateHalf"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return "Error"
	}
}

// Error is a single categorized, positioned failure.
type Error struct {
	Kind Kind
	Pos  token.Position
	Msg  string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Newf builds an *Error at pos with kind k.
func Newf(k Kind, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// List is zero or more errors collected while decoding; it implements
// error so callers that only care about the first failure can still
// treat it as a plain error.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Add appends e to the list, ignoring a nil error.
func (l *List) Add(e *Error) {
	if e == nil {
		return
	}
	*l = append(*l, e)
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
