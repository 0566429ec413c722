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

// Predicate represents a function that evaluates whether a given item satisfies certain conditions.
type Predicate[S Carrier[S]] func(ctx context.Context, item S) bool

// Test turns a Str8 predicate into a Predicate on the value of a Dual.
func Test(f func(str8.Str8) bool) Predicate[Dual] {
	return func(_ context.Context, d Dual) bool {
		return f(d.Value)
	}
}

// HasError reports whether the carrier holds a per-item error.
func HasError[S Carrier[S]](_ context.Context, item S) bool {
	return item.GetError() != nil
}

// IgnoreLineEnd returns a predicate evaluating p on the item value without
// its line terminator.
func IgnoreLineEnd(p Predicate[Dual]) Predicate[Dual] {
	return func(ctx context.Context, d Dual) bool {
		d.Value, _ = cutLineEnd(d.Value)
		return p(ctx, d)
	}
}

// Not negates p.
func Not[S Carrier[S]](p Predicate[S]) Predicate[S] {
	return func(ctx context.Context, item S) bool {
		return !p(ctx, item)
	}
}

var namedPredicates = map[string]func(str8.Str8) bool{
	"isalnum":      str8.Str8.IsAlnum,
	"isalpha":      str8.Str8.IsAlpha,
	"isascii":      str8.Str8.IsASCII,
	"isdecimal":    str8.Str8.IsDecimal,
	"isdigit":      str8.Str8.IsDigit,
	"isidentifier": str8.Str8.IsIdentifier,
	"islower":      str8.Str8.IsLower,
	"isnumeric":    str8.Str8.IsNumeric,
	"isprintable":  str8.Str8.IsPrintable,
	"isspace":      str8.Str8.IsSpace,
	"istitle":      str8.Str8.IsTitle,
	"isupper":      str8.Str8.IsUpper,
}

// LookupPredicate returns the predicate registered under name. A leading "!"
// negates it.
func LookupPredicate(name string) (Predicate[Dual], error) {
	n := strings.ToLower(strings.TrimSpace(name))
	negate := strings.HasPrefix(n, "!")
	f, ok := namedPredicates[strings.TrimPrefix(n, "!")]
	if !ok {
		return nil, fmt.Errorf("textual: unknown predicate %q (known: %s)", name, strings.Join(PredicateNames(), ", "))
	}
	if negate {
		return Not(Test(f)), nil
	}
	return Test(f), nil
}

// PredicateNames lists the registered predicate names, sorted.
func PredicateNames() []string {
	names := make([]string, 0, len(namedPredicates))
	for name := range namedPredicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
