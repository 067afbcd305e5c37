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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haatch/tomlcore/internal/token"
)

func collectKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	sc := New([]byte(src), Options{})
	var kinds []token.Kind
	for {
		tok, err := sc.Next()
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EndOfDocument {
			return kinds
		}
	}
}

func TestScannerSimpleAssignment(t *testing.T) {
	kinds := collectKinds(t, "x = 1\n")
	require.Equal(t, []token.Kind{
		token.KeyBegin, token.Key, token.ValueBegin, token.Int, token.EndOfDocument,
	}, kinds)
}

func TestScannerDottedKey(t *testing.T) {
	kinds := collectKinds(t, "a.b.c = \"hi\"\n")
	require.Equal(t, []token.Kind{
		token.KeyBegin, token.Key,
		token.KeyBegin, token.Key,
		token.KeyBegin, token.Key,
		token.ValueBegin, token.String, token.EndOfDocument,
	}, kinds)
}

func TestScannerTableHeader(t *testing.T) {
	kinds := collectKinds(t, "[a.b]\n")
	require.Equal(t, []token.Kind{
		token.TableKeyBegin, token.Key,
		token.KeyBegin, token.Key,
		token.TableBegin, token.EndOfDocument,
	}, kinds)
}

func TestScannerArrayTableHeader(t *testing.T) {
	kinds := collectKinds(t, "[[a]]\n")
	require.Equal(t, []token.Kind{
		token.ArrayTableKeyBegin, token.Key, token.TableBegin, token.EndOfDocument,
	}, kinds)
}

func TestScannerArrayOfInts(t *testing.T) {
	kinds := collectKinds(t, "x = [1, 2, 3]\n")
	require.Equal(t, []token.Kind{
		token.KeyBegin, token.Key, token.ValueBegin,
		token.ArrayBegin, token.Int, token.Int, token.Int, token.ArrayEnd,
		token.EndOfDocument,
	}, kinds)
}

func TestScannerEmptyArray(t *testing.T) {
	kinds := collectKinds(t, "x = []\n")
	require.Equal(t, []token.Kind{
		token.KeyBegin, token.Key, token.ValueBegin,
		token.ArrayBegin, token.ArrayEnd,
		token.EndOfDocument,
	}, kinds)
}

func TestScannerInlineTable(t *testing.T) {
	kinds := collectKinds(t, "x = {a = 1, b = 2}\n")
	require.Equal(t, []token.Kind{
		token.KeyBegin, token.Key, token.ValueBegin,
		token.InlineTableBegin,
		token.KeyBegin, token.Key, token.ValueBegin, token.Int,
		token.KeyBegin, token.Key, token.ValueBegin, token.Int,
		token.InlineTableEnd,
		token.EndOfDocument,
	}, kinds)
}

func TestScannerBareKeyBytes(t *testing.T) {
	sc := New([]byte("key_name-1 = true\n"), Options{})
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.KeyBegin, tok.Kind)
	tok, err = sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.Key, tok.Kind)
	require.Equal(t, "key_name-1", string(tok.Lit))
}

func TestScannerBasicStringEscape(t *testing.T) {
	sc := New([]byte("s = \"a\\u00e9b\"\n"), Options{})
	require.NoError(t, advanceN(t, sc, 3)) // key_begin, key, value_begin
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.String, tok.Kind)
	require.Equal(t, "aéb", string(tok.Lit))
}

func advanceN(t *testing.T, sc *Scanner, n int) error {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := sc.Next(); err != nil {
			return err
		}
	}
	return nil
}

func TestScannerMultilineBasicTrimsLeadingNewline(t *testing.T) {
	sc := New([]byte("s = \"\"\"\nhello\"\"\"\n"), Options{})
	require.NoError(t, advanceN(t, sc, 3))
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.String, tok.Kind)
	require.Equal(t, "hello", string(tok.Lit))
}

func TestScannerMultilineBasicFiveQuoteClose(t *testing.T) {
	src := "s = \"\"\"a\"\"\"\"\"\n" // a, then two literal quotes, then the closing """
	sc := New([]byte(src), Options{})
	require.NoError(t, advanceN(t, sc, 3))
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.String, tok.Kind)
	require.Equal(t, `a""`, string(tok.Lit))
}

func TestScannerRejectsBareCR(t *testing.T) {
	sc := New([]byte("x = 1\r"), Options{})
	require.NoError(t, advanceN(t, sc, 4)) // key_begin, key, value_begin, int
	_, err := sc.Next()
	require.Error(t, err)
}

func TestScannerRejectsLeadingZero(t *testing.T) {
	sc := New([]byte("x = 0123\n"), Options{})
	require.NoError(t, advanceN(t, sc, 3))
	_, err := sc.Next()
	require.Error(t, err)
}

func TestScannerRejectsSignedHex(t *testing.T) {
	sc := New([]byte("x = -0xFF\n"), Options{})
	require.NoError(t, advanceN(t, sc, 3))
	_, err := sc.Next()
	require.Error(t, err)
}

func TestScannerMaxValueLen(t *testing.T) {
	sc := New([]byte(`x = "abcdef"`+"\n"), Options{MaxValueLen: 3})
	require.NoError(t, advanceN(t, sc, 3))
	_, err := sc.Next()
	require.Error(t, err)
}

func TestScannerDatetimeLexeme(t *testing.T) {
	sc := New([]byte("t = 2024-02-29T12:00:00Z\n"), Options{})
	require.NoError(t, advanceN(t, sc, 3))
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, token.Datetime, tok.Kind)
	require.Equal(t, "2024-02-29T12:00:00Z", string(tok.Lit))
}

func TestScannerTrailingCommaRejectedInInlineTable(t *testing.T) {
	sc := New([]byte("x = {a = 1,}\n"), Options{})
	require.NoError(t, advanceN(t, sc, 7)) // key_begin,key,value_begin,inline_begin,key_begin,key,value_begin
	_, err := sc.Next()
	require.NoError(t, err) // the Int(1) token
	_, err = sc.Next()
	require.Error(t, err)
}
