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

import "github.com/haatch/tomlcore/internal/errs"

func errSyntax(s *Scanner, offset int, format string, args ...interface{}) *errs.Error {
	return errs.Newf(errs.SyntaxError, s.pos(offset), format, args...)
}

func errEOF(s *Scanner, format string, args ...interface{}) *errs.Error {
	return errs.Newf(errs.UnexpectedEndOfInput, s.pos(s.i), format, args...)
}
