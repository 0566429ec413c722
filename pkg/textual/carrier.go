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

// Package textual runs Str8 values through channel-based pipelines.
//
// A reader in any supported encoding is decoded at the boundary, cut into
// tokens, and every token travels through a chain of processors as a
// carrier. At the other end the carriers are encoded back into the target
// encoding.
package textual

// UTF8String is the flat text form of a carrier. Every piece of text inside
// a pipeline is UTF-8; other encodings only exist at the boundaries.
type UTF8String = string

// Carrier is the contract of the values flowing through a pipeline.
//
// Processor, Chain, IOReaderProcessor and Transformation are parameterized
// by a type S implementing Carrier[S].
//
//   - UTF8String renders the carrier as text.
//   - FromUTF8String builds a new carrier from a token. The receiver is only a
//     prototype: it is usually the zero value of S.
//   - WithIndex and GetIndex attach the position of the token in its stream,
//     so that outputs can be put back in order.
//   - Aggregate merges several carriers into one, in index order.
//   - WithError and GetError attach a per-item error. Such errors are data:
//     pipelines keep running and the consumer decides what to do with them.
//
// Methods must be safe to call on the zero value.
type Carrier[S any] interface {
	UTF8String() UTF8String
	FromUTF8String(s UTF8String) S
	WithIndex(index int) S
	GetIndex() int
	Aggregate(items []S) S
	WithError(err error) S
	GetError() error
}
