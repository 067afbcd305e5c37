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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haatch/tomlcore/internal/scanner"
	"github.com/haatch/tomlcore/internal/value"
)

func buildDoc(t *testing.T, src string) (*value.Table, error) {
	t.Helper()
	sc := scanner.New([]byte(src), scanner.Options{})
	return New(sc).Build()
}

func mustBuild(t *testing.T, src string) *value.Table {
	t.Helper()
	tbl, err := buildDoc(t, src)
	require.NoError(t, err)
	return tbl
}

func TestBuildSimpleAssignment(t *testing.T) {
	tbl := mustBuild(t, "x = 1\n")
	v, ok := tbl.Get("x")
	require.True(t, ok)
	require.Equal(t, value.KindInteger, v.Kind)
	require.Equal(t, int64(1), v.Int)
}

func TestBuildDottedKeyNesting(t *testing.T) {
	tbl := mustBuild(t, "a.b.c = \"hi\"\n")
	a, ok := tbl.Get("a")
	require.True(t, ok)
	require.Equal(t, value.KindTable, a.Kind)
	b, ok := a.Tbl.Get("b")
	require.True(t, ok)
	c, ok := b.Tbl.Get("c")
	require.True(t, ok)
	require.Equal(t, "hi", c.Str)
}

func TestBuildArrayOfTablesNestedUnderTable(t *testing.T) {
	tbl := mustBuild(t, "[a]\nx = 1\n[[a.b]]\ny = 2\n[[a.b]]\ny = 3\n")
	a, ok := tbl.Get("a")
	require.True(t, ok)
	x, ok := a.Tbl.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(1), x.Int)
	bv, ok := a.Tbl.Get("b")
	require.True(t, ok)
	require.Equal(t, value.KindArray, bv.Kind)
	require.Len(t, bv.Arr, 2)
	y0, _ := bv.Arr[0].Tbl.Get("y")
	y1, _ := bv.Arr[1].Tbl.Get("y")
	require.Equal(t, int64(2), y0.Int)
	require.Equal(t, int64(3), y1.Int)
}

func TestBuildUnicodeEscape(t *testing.T) {
	tbl := mustBuild(t, "s = \"a\\u00e9b\"\n")
	s, ok := tbl.Get("s")
	require.True(t, ok)
	require.Equal(t, "aéb", s.Str)
}

func TestBuildDatetimeValue(t *testing.T) {
	tbl := mustBuild(t, "t = 2024-02-29T12:00:00Z\n")
	v, ok := tbl.Get("t")
	require.True(t, ok)
	require.Equal(t, value.KindDatetime, v.Kind)
	require.Equal(t, 2024, v.Time.Year)
}

func TestBuildInvalidLeapYearDatetime(t *testing.T) {
	_, err := buildDoc(t, "t = 2023-02-29T12:00:00Z\n")
	require.Error(t, err)
}

func TestBuildDuplicateKeyAtTopLevel(t *testing.T) {
	_, err := buildDoc(t, "a = 1\na = 2\n")
	require.Error(t, err)
}

func TestBuildImplicitThenExplicitTablePromotion(t *testing.T) {
	tbl := mustBuild(t, "a.b = 1\n[a]\nc = 2\n")
	a, ok := tbl.Get("a")
	require.True(t, ok)
	b, ok := a.Tbl.Get("b")
	require.True(t, ok)
	require.Equal(t, int64(1), b.Int)
	c, ok := a.Tbl.Get("c")
	require.True(t, ok)
	require.Equal(t, int64(2), c.Int)
}

func TestBuildRedeclaredTableHeaderErrors(t *testing.T) {
	_, err := buildDoc(t, "[a.b]\n[a.b]\n")
	require.Error(t, err)
}

func TestBuildArrayTableAppend(t *testing.T) {
	tbl := mustBuild(t, "[[a]]\nx = 1\n[[a]]\nx = 2\n")
	av, ok := tbl.Get("a")
	require.True(t, ok)
	require.Len(t, av.Arr, 2)
}

func TestBuildSealedInlineTableFollowedByHeaderErrors(t *testing.T) {
	_, err := buildDoc(t, "name = {a = {b = 1}}\n[name.a]\n")
	require.Error(t, err)
}

func TestBuildInlineTableDuplicateKeyErrors(t *testing.T) {
	_, err := buildDoc(t, "name = {a = 1, a = 2}\n")
	require.Error(t, err)
}

func TestBuildArrayOfInlineTablesIsolatesRegistries(t *testing.T) {
	tbl := mustBuild(t, "points = [{x = 1}, {x = 2}]\n")
	pv, ok := tbl.Get("points")
	require.True(t, ok)
	require.Len(t, pv.Arr, 2)
	x0, _ := pv.Arr[0].Tbl.Get("x")
	x1, _ := pv.Arr[1].Tbl.Get("x")
	require.Equal(t, int64(1), x0.Int)
	require.Equal(t, int64(2), x1.Int)
}

func TestBuildInsertionOrderPreserved(t *testing.T) {
	tbl := mustBuild(t, "z = 1\na = 2\nm = 3\n")
	require.Equal(t, []string{"z", "a", "m"}, tbl.Keys())
}

func TestBuildLeadingZeroRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 0123\n")
	require.Error(t, err)
}

func TestBuildIntegerOverflowRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 99999999999999999999\n")
	require.Error(t, err)
}

func TestBuildHexIntegerLiteral(t *testing.T) {
	tbl := mustBuild(t, "x = 0xFF\n")
	v, _ := tbl.Get("x")
	require.Equal(t, int64(255), v.Int)
}

func TestBuildUnderscoreSeparatedInteger(t *testing.T) {
	tbl := mustBuild(t, "x = 1_000_000\n")
	v, _ := tbl.Get("x")
	require.Equal(t, int64(1000000), v.Int)
}

func TestBuildFloatInfAndNan(t *testing.T) {
	tbl := mustBuild(t, "a = inf\nb = -inf\nc = nan\n")
	a, _ := tbl.Get("a")
	require.True(t, a.Float > 0)
	b, _ := tbl.Get("b")
	require.True(t, b.Float < 0)
	c, _ := tbl.Get("c")
	require.True(t, c.Float != c.Float) // NaN
}

func TestBuildIntegerOneOverMaxRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 9223372036854775808\n")
	require.Error(t, err)
}

func TestBuildIntegerOneUnderMinRejected(t *testing.T) {
	_, err := buildDoc(t, "x = -9223372036854775809\n")
	require.Error(t, err)
}

func TestBuildIntegerExactlyMinAccepted(t *testing.T) {
	tbl := mustBuild(t, "x = -9223372036854775808\n")
	v, _ := tbl.Get("x")
	require.Equal(t, int64(math.MinInt64), v.Int)
}

func TestBuildHexLiteralWrapsLikeTwosComplement(t *testing.T) {
	tbl := mustBuild(t, "x = 0xFFFFFFFFFFFFFFFF\n")
	v, _ := tbl.Get("x")
	require.Equal(t, int64(-1), v.Int)
}

func TestBuildTrailingUnderscoreRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 100_\n")
	require.Error(t, err)
}

func TestBuildDoubledUnderscoreRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 1__000\n")
	require.Error(t, err)
}

func TestBuildUnderscoreAdjacentToDecimalPointRejected(t *testing.T) {
	_, err := buildDoc(t, "x = 1._5\n")
	require.Error(t, err)
}
