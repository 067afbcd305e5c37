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

// Package value defines the TOML data model from spec.md §3: a tagged
// union Value, an insertion-ordered Table, and the datetime decoder from
// spec.md §4.3.
package value

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindDatetime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is the tagged union from spec.md §3. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  Datetime
	Arr   []*Value
	Tbl   *Table
}

func String(s string) *Value   { return &Value{Kind: KindString, Str: s} }
func Integer(i int64) *Value   { return &Value{Kind: KindInteger, Int: i} }
func Float64(f float64) *Value { return &Value{Kind: KindFloat, Float: f} }
func Bool(b bool) *Value       { return &Value{Kind: KindBool, Bool: b} }
func DatetimeVal(d Datetime) *Value {
	return &Value{Kind: KindDatetime, Time: d}
}
func Array(elems []*Value) *Value { return &Value{Kind: KindArray, Arr: elems} }
func TableVal(t *Table) *Value    { return &Value{Kind: KindTable, Tbl: t} }

// Table is an insertion-ordered string-to-Value mapping, per spec.md §3's
// "insertion-ordered mapping from string key to Value".
type Table struct {
	keys   []string
	values map[string]*Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]*Value)}
}

// Get returns the value at key and whether it was present.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set inserts or overwrites key, appending to the key order on first
// insertion only.
func (t *Table) Set(key string, v *Value) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string { return t.keys }

// Len reports the number of entries.
func (t *Table) Len() int { return len(t.keys) }
