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

package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleAssignment(t *testing.T) {
	v, err := Parse([]byte("x = 1\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, KindTable, v.Kind)
	x, ok := v.Tbl.Get("x")
	require.True(t, ok)
	require.Equal(t, KindInteger, x.Kind)
	require.Equal(t, int64(1), x.Int)
}

func TestParseArrayOfTablesScenario(t *testing.T) {
	v, err := Parse([]byte("[a]\nx = 1\n[[a.b]]\ny = 2\n[[a.b]]\ny = 3\n"), Options{})
	require.NoError(t, err)
	a, ok := v.Tbl.Get("a")
	require.True(t, ok)
	b, ok := a.Tbl.Get("b")
	require.True(t, ok)
	require.Len(t, b.Arr, 2)
}

func TestParseDuplicateKeyReturnsPositionedError(t *testing.T) {
	_, err := Parse([]byte("a = 1\na = 2\n"), Options{})
	require.Error(t, err)
	line, col, _, ok := Position(err)
	require.True(t, ok)
	require.Equal(t, 2, line)
	require.GreaterOrEqual(t, col, 1)
}

func TestParseMaxValueLenExceeded(t *testing.T) {
	_, err := Parse([]byte(`s = "abcdefghij"`+"\n"), Options{MaxValueLen: 4})
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ValueTooLong, e.Kind)
}

func TestParseInvalidLeapYearDate(t *testing.T) {
	_, err := Parse([]byte("t = 2023-02-29T12:00:00Z\n"), Options{})
	require.Error(t, err)
}

func TestParseRejectsBareCarriageReturn(t *testing.T) {
	_, err := Parse([]byte("x = 1\r"), Options{})
	require.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	v, err := Parse([]byte(""), Options{})
	require.NoError(t, err)
	require.Equal(t, 0, v.Tbl.Len())
}

func TestParseIntegerOverflowReportsOverflowKind(t *testing.T) {
	_, err := Parse([]byte("x = 9223372036854775808\n"), Options{})
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, Overflow, e.Kind)
}

func TestParseMisplacedUnderscoreReportsSyntaxKind(t *testing.T) {
	_, err := Parse([]byte("x = 100_\n"), Options{})
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, SyntaxError, e.Kind)
}

func TestParseNestedInlineAndArrayMix(t *testing.T) {
	v, err := Parse([]byte("fruits = [{name = \"apple\", colors = [\"red\", \"green\"]}]\n"), Options{})
	require.NoError(t, err)
	fv, ok := v.Tbl.Get("fruits")
	require.True(t, ok)
	require.Len(t, fv.Arr, 1)
	apple := fv.Arr[0].Tbl
	name, _ := apple.Get("name")
	require.Equal(t, "apple", name.Str)
	colors, _ := apple.Get("colors")
	require.Len(t, colors.Arr, 2)
}
