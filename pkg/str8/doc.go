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

// Package str8 provides Str8, an immutable UTF-8 string that is both a byte
// sequence and a text.
//
// A Str8 holds its UTF-8 bytes and the decoded text side by side, built once
// and never out of sync. Code that thinks in bytes and code that thinks in
// characters can share the same value without converting back and forth.
//
// # Arguments
//
// Operations taking another string accept an Argument: Text for text, Bytes
// for raw bytes, or a Str8, which counts as bytes. The kind of the argument
// chooses the semantics:
//
//	abc := str8.Must(str8.FromString("áβç"))
//	abc.Find(str8.Text("β"))         // 1, a character index
//	abc.Find(str8.Bytes("\xce\xb2")) // 2, a byte index
//
// Operations fall in five families:
//
//   - Case, padding and tab expansion work on the text and return a Str8.
//   - Predicates such as IsAlpha work on the text and return a bool.
//   - SplitLines works on the text and returns Str8 lines.
//   - Search, comparison, strip, split, partition, replace and concatenation
//     use the byte view for a byte-like argument and the text view for a
//     text argument. Replace edits bytes only when both of its arguments are
//     byte-like.
//   - Join and Format read every argument as text.
//
// Whenever bytes have to become text, they are decoded strictly: a byte
// operation that splits a multi-byte character, or a Bytes argument that is
// not valid UTF-8, fails with a *DecodeError instead of producing mojibake.
//
// Other encodings are reached through package codec, with FromEncoded on the
// way in and Encode on the way out.
package str8
