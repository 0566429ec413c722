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
	"sort"
)

// collectWithContext drains a channel until it is closed or ctx is done.
func collectWithContext[T any](ctx context.Context, ch <-chan T) ([]T, error) {
	items := make([]T, 0, 8)
	for {
		select {
		case <-ctx.Done():
			return items, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return items, nil
			}
			items = append(items, v)
		}
	}
}

// sortByIndex sorts carriers by their GetIndex() value.
func sortByIndex[S Carrier[S]](items []S) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GetIndex() < items[j].GetIndex()
	})
}

// lines builds indexed Dual items from UTF-8 strings.
func lines(values ...string) []Dual {
	out := make([]Dual, len(values))
	for i, v := range values {
		out[i] = Dual{}.FromUTF8String(v).WithIndex(i)
	}
	return out
}

// feed returns a closed, buffered channel holding items.
func feed(items ...Dual) <-chan Dual {
	ch := make(chan Dual, len(items))
	for _, it := range items {
		ch <- it
	}
	close(ch)
	return ch
}

// values returns the UTF-8 text of each item.
func values(items []Dual) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.UTF8String()
	}
	return out
}
