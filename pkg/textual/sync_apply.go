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

import "context"

// SyncApply runs p on a single item and waits for the result. Several
// results are aggregated; no result returns in unchanged.
func SyncApply[S Carrier[S], P Processor[S]](ctx context.Context, p P, in S) S {
	if ctx == nil {
		ctx = context.Background()
	}
	inCh := make(chan S, 1)
	inCh <- in
	close(inCh)

	results := make([]S, 0, 1)
	for res := range p.Apply(ctx, inCh) {
		results = append(results, res)
	}
	switch len(results) {
	case 0:
		return in
	case 1:
		return results[0]
	}
	proto := *new(S)
	return proto.Aggregate(results)
}
