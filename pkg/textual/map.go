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
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abarnert/str8/pkg/str8"
)

// Op is an operation on a single Str8.
type Op func(s str8.Str8) (str8.Str8, error)

// Map applies op to the value of every Dual. When op fails the item keeps
// its value and carries the error.
func Map(op Op) ProcessorFunc[Dual] {
	return func(ctx context.Context, in <-chan Dual) <-chan Dual {
		return Async(ctx, in, func(_ context.Context, d Dual) Dual {
			return op.apply(d)
		})
	}
}

func (op Op) apply(d Dual) Dual {
	if op == nil {
		return d
	}
	v, err := op(d.Value)
	if err != nil {
		return d.WithError(err)
	}
	d.Value = v
	return d
}

// Lift turns an operation that cannot fail into an Op.
func Lift(f func(str8.Str8) str8.Str8) Op {
	return func(s str8.Str8) (str8.Str8, error) {
		return f(s), nil
	}
}

// Then returns an Op running op and then next.
func (op Op) Then(next Op) Op {
	return func(s str8.Str8) (str8.Str8, error) {
		v, err := op(s)
		if err != nil {
			return v, err
		}
		return next(v)
	}
}

// KeepLineEnd returns an Op applying op to a line without its "\n", "\r\n"
// or "\r" terminator, which is put back afterwards.
func KeepLineEnd(op Op) Op {
	return func(s str8.Str8) (str8.Str8, error) {
		body, end := cutLineEnd(s)
		if end == "" {
			return op(s)
		}
		v, err := op(body)
		if err != nil {
			return s, err
		}
		return v.Concat(str8.Text(end))
	}
}

func cutLineEnd(s str8.Str8) (str8.Str8, string) {
	text := s.String()
	n := len(text) - len(strings.TrimRight(text, "\r\n"))
	if n == 0 {
		return s, ""
	}
	return s.Slice(0, s.Len()-n), text[len(text)-n:]
}

var namedOps = map[string]Op{
	"identity":   func(s str8.Str8) (str8.Str8, error) { return s, nil },
	"upper":      Lift(str8.Str8.Upper),
	"lower":      Lift(str8.Str8.Lower),
	"casefold":   Lift(str8.Str8.Casefold),
	"capitalize": Lift(str8.Str8.Capitalize),
	"swapcase":   Lift(str8.Str8.SwapCase),
	"title":      Lift(str8.Str8.Title),
	"strip":      Lift(str8.Str8.TrimSpace),
	"expandtabs": Lift(func(s str8.Str8) str8.Str8 { return s.ExpandTabs(8) }),
}

// LookupOp returns the Op registered under name.
func LookupOp(name string) (Op, error) {
	op, ok := namedOps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("textual: unknown operation %q (known: %s)", name, strings.Join(OpNames(), ", "))
	}
	return op, nil
}

// OpNames lists the registered operation names, sorted.
func OpNames() []string {
	names := make([]string, 0, len(namedOps))
	for name := range namedOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
