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

package textual

import (
	"errors"
	"slices"

	"github.com/abarnert/str8/pkg/codec"
	"github.com/abarnert/str8/pkg/str8"
)

// Dual is the carrier of Str8 values.
//
// A token that is not valid UTF-8 still becomes a Dual: its Value holds the
// token decoded with U+FFFD substitutions and Error holds the *DecodeError.
type Dual struct {
	Value str8.Str8
	Index int
	Error error
}

// NewDual wraps a Str8 at index 0.
func NewDual(s str8.Str8) Dual {
	return Dual{Value: s}
}

func (d Dual) UTF8String() UTF8String {
	return d.Value.String()
}

func (d Dual) FromUTF8String(s UTF8String) Dual {
	v, err := str8.FromString(s)
	if err != nil {
		v, _ = str8.FromEncoded([]byte(s), string(codec.UTF8), codec.Replace)
		return Dual{Value: v, Error: err}
	}
	return Dual{Value: v}
}

func (d Dual) WithIndex(index int) Dual {
	d.Index = index
	return d
}

func (d Dual) GetIndex() int {
	return d.Index
}

// Aggregate concatenates the values of items in index order. Their errors
// are joined.
func (d Dual) Aggregate(items []Dual) Dual {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Dual) int {
		return a.Index - b.Index
	})
	values := make([]str8.Str8, len(sorted))
	errs := make([]error, 0, len(sorted))
	for i, it := range sorted {
		values[i] = it.Value
		if it.Error != nil {
			errs = append(errs, it.Error)
		}
	}
	var empty str8.Str8
	return Dual{Value: empty.JoinStr8(values), Error: errors.Join(errs...)}
}

// WithError attaches err. A nil err keeps the current error.
func (d Dual) WithError(err error) Dual {
	if err == nil {
		return d
	}
	d.Error = errors.Join(d.Error, err)
	return d
}

func (d Dual) GetError() error {
	return d.Error
}
