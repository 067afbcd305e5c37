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

// Package build implements the tree builder from spec.md §4.2: it drives
// an internal/scanner.Scanner to completion and assembles an
// internal/value.Value document, enforcing the declaration-registry
// duplicate-key and table-promotion rules from spec.md §3.
//
// The core loop is modeled on encoding/toml/decode.go's Decoder.decode:
// a flat, non-recursive switch over each top-level statement kind that
// mutates a "current table" pointer, rather than recursing through table
// bodies. Decoder.seenKeys is the direct ancestor of Registry; decode.go's
// openTableArrays/arrayReference/relativeKey machinery (for attaching a
// table or array-of-tables header nested under an already-open
// array-of-tables element) is the direct ancestor of openArray/
// resolveAttachment below. Recursion is reserved for what it cannot be
// avoided for: nested array and inline-table values.
package build

import (
	"fmt"
	"strings"

	"github.com/haatch/tomlcore/internal/errs"
	"github.com/haatch/tomlcore/internal/scanner"
	"github.com/haatch/tomlcore/internal/token"
	"github.com/haatch/tomlcore/internal/value"
)

// openArray tracks one array-of-tables key that is still "open": headers
// for its own subtables (e.g. [[fruits]] followed by [fruits.variety])
// must attach to its most recent element rather than the document root.
type openArray struct {
	key      string // fully qualified dotted path, e.g. "fruits"
	level    int    // number of dot segments in key
	list     *value.Value
	registry *Registry // fresh per occurrence of [[key]]
}

// Builder assembles a value.Value tree from a token stream.
type Builder struct {
	sc *scanner.Scanner

	root           *value.Table
	rootRegistry   *Registry
	current        *value.Table
	currentPrefix  string
	registry       *Registry
	openArrays     []*openArray
}

// New creates a Builder reading from sc.
func New(sc *scanner.Scanner) *Builder {
	root := value.NewTable()
	reg := newRegistry()
	return &Builder{
		sc:           sc,
		root:         root,
		rootRegistry: reg,
		current:      root,
		registry:     reg,
	}
}

// Build drives the scanner to completion and returns the assembled
// document table, per spec.md §4.2.
func (b *Builder) Build() (*value.Table, error) {
	for {
		tok, err := b.sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.EndOfDocument:
			return b.root, nil
		case token.KeyBegin:
			if err := b.handleAssignment(); err != nil {
				return nil, b.wrap(tok, err)
			}
		case token.TableKeyBegin:
			if err := b.handleTableHeader(); err != nil {
				return nil, b.wrap(tok, err)
			}
		case token.ArrayTableKeyBegin:
			if err := b.handleArrayTableHeader(); err != nil {
				return nil, b.wrap(tok, err)
			}
		default:
			return nil, errs.Newf(errs.UnexpectedToken, tok.Pos, "unexpected token %s at top level", tok.Kind)
		}
	}
}

// wrap turns a plain registry/literal error into a positioned *errs.Error,
// anchored at the statement's opening token, unless it already is one.
func (b *Builder) wrap(tok scanner.Tok, err error) error {
	if e, ok := err.(*errs.Error); ok {
		return e
	}
	return errs.Newf(errs.DuplicateKey, tok.Pos, "%s", err)
}

func joinPath(base, seg string) string {
	if base == "" {
		return seg
	}
	return base + "." + seg
}

// readKeySegments reads one or more Key tokens separated by KeyBegin
// continuation tokens, per spec.md §4.1's dotted-key grammar. The caller
// has already consumed the opening KeyBegin/TableKeyBegin/
// ArrayTableKeyBegin token that dispatched into this call.
func (b *Builder) readKeySegments() ([]string, token.Kind, error) {
	var segs []string
	for {
		tok, err := b.sc.Next()
		if err != nil {
			return nil, 0, err
		}
		if tok.Kind != token.Key {
			return nil, 0, errs.Newf(errs.UnexpectedToken, tok.Pos, "expected a key, got %s", tok.Kind)
		}
		segs = append(segs, string(tok.Lit))

		tok2, err := b.sc.Next()
		if err != nil {
			return nil, 0, err
		}
		switch tok2.Kind {
		case token.KeyBegin:
			continue
		case token.ValueBegin, token.TableBegin:
			return segs, tok2.Kind, nil
		default:
			return nil, 0, errs.Newf(errs.UnexpectedToken, tok2.Pos, "unexpected token %s after key", tok2.Kind)
		}
	}
}

// walkIntermediate walks segs as nested sub-tables of start, creating
// value.Table and implicit_table registry entries as needed, per
// spec.md §4.2's "walks the intermediate segments, creating implicit_table
// entries for any missing super-tables".
func (b *Builder) walkIntermediate(start *value.Table, reg *Registry, basePath string, segs []string) (*value.Table, string, error) {
	table := start
	path := basePath
	for _, seg := range segs {
		path = joinPath(path, seg)
		if err := reg.ensureContainer(path); err != nil {
			return nil, "", err
		}
		existing, ok := table.Get(seg)
		if !ok {
			nt := value.NewTable()
			table.Set(seg, value.TableVal(nt))
			table = nt
			continue
		}
		if existing.Kind != value.KindTable {
			return nil, "", fmt.Errorf("key %q is not a table", path)
		}
		table = existing.Tbl
	}
	return table, path, nil
}

func registryKindOf(v *value.Value) Kind {
	switch v.Kind {
	case value.KindString:
		return KString
	case value.KindInteger:
		return KInt
	case value.KindFloat:
		return KFloat
	case value.KindBool:
		return KBool
	case value.KindDatetime:
		return KDatetime
	case value.KindArray:
		return KArray
	case value.KindTable:
		return KTable
	default:
		return KString
	}
}

// handleAssignment processes a "key = value" statement, per spec.md §4.2's
// Assignment subsection.
func (b *Builder) handleAssignment() error {
	segs, term, err := b.readKeySegments()
	if err != nil {
		return err
	}
	if term != token.ValueBegin {
		return fmt.Errorf("expected '=' after key")
	}
	parent, parentPath, err := b.walkIntermediate(b.current, b.registry, b.currentPrefix, segs[:len(segs)-1])
	if err != nil {
		return err
	}
	leafKey := segs[len(segs)-1]
	leafPath := joinPath(parentPath, leafKey)

	v, sealed, err := b.parseValue()
	if err != nil {
		return err
	}
	if err := b.registry.declareLeaf(leafPath, registryKindOf(v), sealed); err != nil {
		return err
	}
	parent.Set(leafKey, v)
	return nil
}

// resolveAttachment decides which table and registry a header's path
// attaches to: the document root, unless the path is nested under a still
// -open array-of-tables element (spec.md §4.2's "array of tables" rules,
// grounded on decode.go's arrayReference/relativeKey).
func (b *Builder) resolveAttachment(segs []string, fullPath string) (*value.Table, *Registry, string, []string) {
	var best *openArray
	for _, oa := range b.openArrays {
		prefix := oa.key + "."
		if strings.HasPrefix(fullPath, prefix) {
			if best == nil || oa.level > best.level {
				best = oa
			}
		}
	}
	if best == nil {
		return b.root, b.rootRegistry, "", segs
	}
	lastElem := best.list.Arr[len(best.list.Arr)-1].Tbl
	return lastElem, best.registry, best.key, segs[best.level:]
}

func (b *Builder) findExactOpenArray(fullPath string) *openArray {
	for _, oa := range b.openArrays {
		if oa.key == fullPath {
			return oa
		}
	}
	return nil
}

// handleTableHeader processes a "[a.b.c]" header, per spec.md §4.2's
// Table Headers subsection.
func (b *Builder) handleTableHeader() error {
	segs, _, err := b.readKeySegments()
	if err != nil {
		return err
	}
	fullPath := strings.Join(segs, ".")
	containerTable, containerReg, basePath, relSegs := b.resolveAttachment(segs, fullPath)

	parent, parentPath, err := b.walkIntermediate(containerTable, containerReg, basePath, relSegs[:len(relSegs)-1])
	if err != nil {
		return err
	}
	leafKey := relSegs[len(relSegs)-1]

	if err := containerReg.declareTable(fullPath); err != nil {
		return err
	}

	var tbl *value.Table
	if existing, ok := parent.Get(leafKey); ok {
		if existing.Kind != value.KindTable {
			return fmt.Errorf("key %q is not a table", joinPath(parentPath, leafKey))
		}
		tbl = existing.Tbl
	} else {
		tbl = value.NewTable()
		parent.Set(leafKey, value.TableVal(tbl))
	}

	b.current = tbl
	b.currentPrefix = fullPath
	b.registry = containerReg
	return nil
}

// handleArrayTableHeader processes a "[[a.b.c]]" header, per spec.md
// §4.2's Array of Tables subsection: each occurrence appends a fresh
// element table and installs a brand-new, isolated Registry for its body.
func (b *Builder) handleArrayTableHeader() error {
	segs, _, err := b.readKeySegments()
	if err != nil {
		return err
	}
	fullPath := strings.Join(segs, ".")
	containerTable, containerReg, basePath, relSegs := b.resolveAttachment(segs, fullPath)

	parent, parentPath, err := b.walkIntermediate(containerTable, containerReg, basePath, relSegs[:len(relSegs)-1])
	if err != nil {
		return err
	}
	leafKey := relSegs[len(relSegs)-1]

	if err := containerReg.declareArrayTable(fullPath); err != nil {
		return err
	}

	var arr *value.Value
	if existing, ok := parent.Get(leafKey); ok {
		if existing.Kind != value.KindArray {
			return fmt.Errorf("key %q is not an array of tables", joinPath(parentPath, leafKey))
		}
		arr = existing
	} else {
		arr = value.Array(nil)
		parent.Set(leafKey, arr)
	}

	elem := value.NewTable()
	arr.Arr = append(arr.Arr, value.TableVal(elem))
	freshReg := newRegistry()

	if oa := b.findExactOpenArray(fullPath); oa != nil {
		oa.list = arr
		oa.registry = freshReg
	} else {
		b.openArrays = append(b.openArrays, &openArray{key: fullPath, level: len(segs), list: arr, registry: freshReg})
	}

	b.current = elem
	b.currentPrefix = fullPath
	b.registry = freshReg
	return nil
}

// parseValue reads one value, per spec.md §4.2's Assignment subsection.
// The returned bool reports whether the value is an inline table (sealed,
// per spec.md §3's inline-table invariant).
func (b *Builder) parseValue() (*value.Value, bool, error) {
	tok, err := b.sc.Next()
	if err != nil {
		return nil, false, err
	}
	return b.decodeValueToken(tok)
}

// decodeValueToken turns one already-read value-leading token into a
// Value, recursing into parseArray/parseInlineTable for containers. It is
// shared by parseValue (top-level/inline-table values) and parseArray
// (array elements, whose leading token the element loop has already
// read off the scanner).
func (b *Builder) decodeValueToken(tok scanner.Tok) (*value.Value, bool, error) {
	switch tok.Kind {
	case token.String:
		return value.String(string(tok.Lit)), false, nil
	case token.Int:
		n, err := decodeInt(tok.Lit)
		if err != nil {
			kind := errs.SyntaxError
			if _, ok := err.(*rangeError); ok {
				kind = errs.Overflow
			}
			return nil, false, errs.Newf(kind, tok.Pos, "%s", err)
		}
		return value.Integer(n), false, nil
	case token.Float:
		f, err := decodeFloat(tok.Lit)
		if err != nil {
			return nil, false, errs.Newf(errs.SyntaxError, tok.Pos, "%s", err)
		}
		return value.Float64(f), false, nil
	case token.True:
		return value.Bool(true), false, nil
	case token.False:
		return value.Bool(false), false, nil
	case token.Datetime:
		dt, err := value.DecodeDatetime(tok.Lit)
		if err != nil {
			return nil, false, errs.Newf(errs.InvalidCharacter, tok.Pos, "%s", err)
		}
		return value.DatetimeVal(dt), false, nil
	case token.ArrayBegin:
		v, err := b.parseArray()
		return v, false, err
	case token.InlineTableBegin:
		v, err := b.parseInlineTable()
		return v, true, err
	default:
		return nil, false, errs.Newf(errs.UnexpectedToken, tok.Pos, "unexpected token %s, expected a value", tok.Kind)
	}
}

// parseArray reads array elements until array_end, per spec.md §4.2.
func (b *Builder) parseArray() (*value.Value, error) {
	var elems []*value.Value
	for {
		tok, err := b.sc.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.ArrayEnd {
			return value.Array(elems), nil
		}
		v, _, err := b.decodeValueToken(tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

// parseInlineTable reads "{ k = v, ... }", per spec.md §4.2's Inline
// tables subsection: a fresh, isolated Registry scopes duplicate-key
// checks to this inline table alone, and the whole thing is sealed (its
// internal paths never reach the outer registry).
func (b *Builder) parseInlineTable() (*value.Value, error) {
	reg := newRegistry()
	tbl := value.NewTable()
	for {
		tok, err := b.sc.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.InlineTableEnd {
			return value.TableVal(tbl), nil
		}
		if tok.Kind != token.KeyBegin {
			return nil, errs.Newf(errs.UnexpectedToken, tok.Pos, "unexpected token %s in inline table", tok.Kind)
		}
		segs, term, err := b.readKeySegments()
		if err != nil {
			return nil, err
		}
		if term != token.ValueBegin {
			return nil, fmt.Errorf("expected '=' after key in inline table")
		}
		parent, parentPath, err := b.walkIntermediate(tbl, reg, "", segs[:len(segs)-1])
		if err != nil {
			return nil, err
		}
		leafKey := segs[len(segs)-1]
		leafPath := joinPath(parentPath, leafKey)

		v, sealed, err := b.parseValue()
		if err != nil {
			return nil, err
		}
		if err := reg.declareLeaf(leafPath, registryKindOf(v), sealed); err != nil {
			return nil, err
		}
		parent.Set(leafKey, v)
	}
}
