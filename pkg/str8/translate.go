// Copyright 2026 Benoit Pereira da Silva
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

package str8

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table is a translation table built by MakeTrans, MakeTransDelete or
// MakeTransMap. A byte table maps byte values, a text table maps
// characters. The zero Table is the identity byte table.
type Table struct {
	kind  Kind
	bytes *[256]byte
	del   *byteSet
	runes map[rune]runeRule
}

type runeRule struct {
	repl string
	drop bool
}

// TransPair is one entry of a mapping given to MakeTransMap. A nil To
// deletes the character.
type TransPair struct {
	From Argument
	To   Argument
}

// Kind tells whether t applies to bytes or to characters.
func (t Table) Kind() Kind {
	if t.kind == KindText {
		return KindText
	}
	return KindBytes
}

// Lookup returns what t does to the character r: its replacement, or false
// when r is deleted.
//
// A byte table maps byte values, so r stands for the byte of the same value
// and the replacement byte comes back as the character of that value
// (U+0000 to U+00FF), the way Latin-1 reads it. Runes above U+00FF are left
// unchanged by a byte table. Use LookupByte for the byte itself.
func (t Table) Lookup(r rune) (string, bool) {
	if t.Kind() == KindBytes {
		if r < 0 || r > 0xff {
			return string(r), true
		}
		c, ok := t.LookupByte(byte(r))
		if !ok {
			return "", false
		}
		return string(rune(c)), true
	}
	rule, ok := t.runes[r]
	if !ok {
		return string(r), true
	}
	return rule.repl, !rule.drop
}

// LookupByte returns the byte a byte table puts in place of c, or false when
// c is deleted. A text table leaves every byte unchanged.
func (t Table) LookupByte(c byte) (byte, bool) {
	if t.Kind() != KindBytes {
		return c, true
	}
	if t.del != nil && t.del[c] {
		return 0, false
	}
	if t.bytes != nil {
		c = t.bytes[c]
	}
	return c, true
}

// MakeTrans builds a table mapping each unit of from to the unit of to at
// the same position. Both must be byte-like, giving a byte table, or both
// text, giving a text table; mixing them is an *UnsupportedOperationError.
// A length mismatch is a *ValueError wrapping ErrLengthMismatch.
func MakeTrans(from, to Argument) (Table, error) {
	f, o := resolve(from), resolve(to)
	if f.kind != o.kind {
		return Table{}, &UnsupportedOperationError{
			Op:     "maketrans",
			Reason: fmt.Sprintf("cannot map %s to %s", f.kind, o.kind),
		}
	}
	if f.kind == KindBytes {
		if len(f.raw) != len(o.raw) {
			return Table{}, &ValueError{Op: "maketrans", Err: ErrLengthMismatch}
		}
		return byteTable(f.raw, o.raw, nil), nil
	}
	ft, err := f.asText()
	if err != nil {
		return Table{}, err
	}
	ot, err := o.asText()
	if err != nil {
		return Table{}, err
	}
	return textTable(ft, ot, "")
}

// MakeTransDelete is MakeTrans with a set of units to delete.
//
// Str8 arguments are taken as text here. When any argument is Bytes the
// table is a byte table and every text argument must only hold characters
// up to U+00FF, each standing for the byte of the same value. Otherwise the
// table is a text table, and deletions win over mappings.
func MakeTransDelete(from, to, del Argument) (Table, error) {
	ops := []operand{resolve(from), resolve(to), resolve(del)}
	byteLike := false
	for i, o := range ops {
		if o.dual {
			ops[i] = operand{kind: KindText, text: o.text}
		}
		byteLike = byteLike || ops[i].kind == KindBytes
	}
	if byteLike {
		var units [3][]byte
		for i, o := range ops {
			b, err := latin1Units(o)
			if err != nil {
				return Table{}, err
			}
			units[i] = b
		}
		if len(units[0]) != len(units[1]) {
			return Table{}, &ValueError{Op: "maketrans", Err: ErrLengthMismatch}
		}
		return byteTable(units[0], units[1], units[2]), nil
	}
	var texts [3]string
	for i, o := range ops {
		t, err := o.asText()
		if err != nil {
			return Table{}, err
		}
		texts[i] = t
	}
	return textTable(texts[0], texts[1], texts[2])
}

// MakeTransMap builds a text table from explicit pairs. Keys and values are
// read as text, decoding byte-like ones; every key must be a single
// character.
func MakeTransMap(pairs ...TransPair) (Table, error) {
	t := Table{kind: KindText, runes: make(map[rune]runeRule, len(pairs))}
	for _, p := range pairs {
		key, err := resolve(p.From).asText()
		if err != nil {
			return Table{}, err
		}
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return Table{}, &ValueError{Op: "maketrans", Err: ErrTableKey}
		}
		if p.To == nil {
			t.runes[r] = runeRule{drop: true}
			continue
		}
		repl, err := resolve(p.To).asText()
		if err != nil {
			return Table{}, err
		}
		t.runes[r] = runeRule{repl: repl}
	}
	return t, nil
}

// Translate maps s through t. A byte table is applied to every byte and the
// result must be valid UTF-8, else a *DecodeError is returned. A text table
// is applied to every character.
func (s Str8) Translate(t Table) (Str8, error) {
	if t.Kind() == KindBytes {
		return wrapRaw(s, t.applyBytes(s.raw, nil))
	}
	return wrapText(s, t.applyText(s.text)), nil
}

// TranslateDelete is Translate for a byte table that also deletes the bytes
// in del. An empty del is plain Translate. Deleting with a text table, or
// with a text del, is an *UnsupportedOperationError.
func (s Str8) TranslateDelete(t Table, del Argument) (Str8, error) {
	if isEmptyArg(del) {
		return s.Translate(t)
	}
	d := resolve(del)
	if d.kind != KindBytes {
		return Str8{}, &UnsupportedOperationError{Op: "translate", Reason: "delete set must be bytes"}
	}
	if t.Kind() != KindBytes {
		return Str8{}, &UnsupportedOperationError{Op: "translate", Reason: "cannot delete bytes through a text table"}
	}
	return wrapRaw(s, t.applyBytes(s.raw, makeByteSet(d.raw)))
}

func (t Table) applyBytes(raw []byte, extra *byteSet) []byte {
	if t.bytes == nil && t.del == nil && extra == nil {
		return raw
	}
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if (t.del != nil && t.del[c]) || (extra != nil && extra[c]) {
			continue
		}
		if t.bytes != nil {
			c = t.bytes[c]
		}
		out = append(out, c)
	}
	return out
}

func (t Table) applyText(text string) string {
	if len(t.runes) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		rule, ok := t.runes[r]
		switch {
		case !ok:
			b.WriteRune(r)
		case !rule.drop:
			b.WriteString(rule.repl)
		}
	}
	return b.String()
}

func byteTable(from, to, del []byte) Table {
	var m [256]byte
	for i := range m {
		m[i] = byte(i)
	}
	for i, c := range from {
		m[c] = to[i]
	}
	t := Table{kind: KindBytes, bytes: &m}
	if len(del) > 0 {
		t.del = makeByteSet(del)
	}
	return t
}

func textTable(from, to, del string) (Table, error) {
	f, o := []rune(from), []rune(to)
	if len(f) != len(o) {
		return Table{}, &ValueError{Op: "maketrans", Err: ErrLengthMismatch}
	}
	t := Table{kind: KindText, runes: make(map[rune]runeRule, len(f))}
	for i, r := range f {
		t.runes[r] = runeRule{repl: string(o[i])}
	}
	for _, r := range del {
		t.runes[r] = runeRule{drop: true}
	}
	return t, nil
}

// latin1Units turns an operand into byte values, reading text characters up
// to U+00FF as the byte of the same value.
func latin1Units(o operand) ([]byte, error) {
	if o.kind == KindBytes {
		return o.raw, nil
	}
	text, err := o.asText()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xff {
			return nil, &UnsupportedOperationError{
				Op:     "maketrans",
				Reason: fmt.Sprintf("character %q is not a byte value", r),
			}
		}
		out = append(out, byte(r))
	}
	return out, nil
}
