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
	"sync"
)

// PanicInfo describes a recovered panic: the value passed to panic and the
// stack captured where it was recovered.
type PanicInfo struct {
	Value any
	Stack []byte
}

// Error makes a PanicInfo usable as an error.
func (p PanicInfo) Error() string {
	return fmt.Sprintf("textual: recovered panic: %v", p.Value)
}

// PanicStore holds the first panic recovered by the stages of a pipeline.
//
// Stages run in goroutines and cannot return errors, so they record panics
// here and the supervisor reads the store at the boundary. Store is
// write-once and safe for concurrent use with Load. All methods accept a nil
// receiver.
type PanicStore struct {
	once sync.Once
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records value and a copy of stack, if nothing was recorded yet.
func (ps *PanicStore) Store(value any, stack []byte) {
	if ps == nil {
		return
	}
	ps.once.Do(func() {
		ps.mu.Lock()
		ps.info = PanicInfo{Value: value, Stack: append([]byte(nil), stack...)}
		ps.set = true
		ps.mu.Unlock()
	})
}

// Load returns a snapshot of the recorded panic, with its own copy of the
// stack.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	info, ok := ps.info, ps.set
	ps.mu.Unlock()
	if !ok {
		return PanicInfo{}, false
	}
	info.Stack = append([]byte(nil), info.Stack...)
	return info, true
}

// Err returns the recorded panic as an error, or nil.
func (ps *PanicStore) Err() error {
	if info, ok := ps.Load(); ok {
		return info
	}
	return nil
}

type panicStoreKey struct{}

// WithPanicStore returns a context carrying a new PanicStore, and the store.
// A nil parent is replaced by context.Background().
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext returns the PanicStore carried by ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}

// EnsurePanicStore returns ctx and its PanicStore, attaching a new store when
// ctx has none. A nil ctx is replaced by context.Background().
func EnsurePanicStore(ctx context.Context) (context.Context, *PanicStore) {
	if ps := PanicStoreFromContext(ctx); ps != nil {
		return ctx, ps
	}
	return WithPanicStore(ctx)
}
