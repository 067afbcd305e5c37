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

// Tok is a single scanner-emitted event: a structural marker or a
// complete, already-coalesced contentful lexeme (see strings.go for how
// fragments get folded into one owned-or-borrowed slice before a Tok is
// produced).
type Tok struct {
	Kind token.Kind
	Pos  token.Position
	Lit  []byte // nil for pure structural tokens
	// Owned reports whether Lit is a buffer allocated by the scanner
	// (true) or a slice borrowed directly from the input (false).
	Owned bool
}
