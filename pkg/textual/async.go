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
	"runtime/debug"
)

// Async starts a single-worker map stage: every value received from in is
// passed to f and the result is sent on the returned channel.
//
// Streaming contract:
//
//   - in is never closed by Async; the returned channel is closed exactly
//     once, when in is closed, ctx is canceled or f panics.
//   - Every receive and send also watches ctx.Done(), so a consumer that
//     stops early must cancel ctx to release the upstream goroutines.
//   - The output channel is unbuffered: a slow consumer slows the pipeline.
//
// A panic in f is recovered and stored in the PanicStore of ctx (one is
// attached when ctx has none), then the stage stops. Supervisors check the
// store once the output is drained:
//
//	ctx, ps := WithPanicStore(parent)
//	for range Async(ctx, in, f) {
//	}
//	if info, ok := ps.Load(); ok {
//		return fmt.Errorf("pipeline panic: %v", info.Value)
//	}
func Async[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(ctx context.Context, t T1) T2) <-chan T2 {
	ctx, ps := EnsurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				res := f(ctx, v)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}
