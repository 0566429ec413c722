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
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abarnert/str8/pkg/codec"
)

func TestIOReaderProcessor_Start_ScanLinesAndIndexes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p := NewIOReaderProcessor[Dual](Map(KeepLineEnd(mustOp("upper"))), strings.NewReader("a\nb\r\nc"))
	p.SetContext(ctx)

	items, err := collectWithContext(ctx, p.Start())
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	sortByIndex(items)

	want := []string{"A\n", "B\r\n", "C"}
	if got := values(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output:\n got: %#v\nwant: %#v", got, want)
	}
	for i, it := range items {
		if it.Index != i {
			t.Fatalf("unexpected index for item %d: %d", i, it.Index)
		}
	}
	if err := p.Err(); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
}

func TestIOReaderProcessor_CustomSplit_ReconstructsInput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	const input = "Hello, world!\nThis  is\tstr8.\n"

	p := NewIOReaderProcessor[Dual](Identity[Dual]{}, strings.NewReader(input))
	p.SetContext(ctx)
	p.SetSplitFunc(ScanWords)

	items, err := collectWithContext(ctx, p.Start())
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	sortByIndex(items)

	if got := strings.Join(values(items), ""); got != input {
		t.Fatalf("reconstructed text mismatch:\n got: %q\nwant: %q", got, input)
	}
}

func TestIOReaderProcessor_SetEncoding(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p := NewIOReaderProcessor[Dual](Identity[Dual]{}, strings.NewReader("Caf\xe9\nna\xefve\n"))
	if err := p.SetEncoding("latin-1"); err != nil {
		t.Fatalf("SetEncoding failed: %v", err)
	}
	p.SetContext(ctx)

	items, err := collectWithContext(ctx, p.Start())
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	sortByIndex(items)

	want := []string{"Café\n", "naïve\n"}
	if got := values(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestIOReaderProcessor_SetEncoding_Unknown(t *testing.T) {
	p := NewIOReaderProcessor[Dual](Identity[Dual]{}, strings.NewReader(""))
	err := p.SetEncoding("no-such-encoding")
	if !errors.Is(err, codec.ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
	if err := p.SetEncoding(""); err != nil {
		t.Fatalf("empty name should mean UTF-8, got %v", err)
	}
}

func TestIOReaderProcessor_InvalidUTF8IsCarried(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p := NewIOReaderProcessor[Dual](Identity[Dual]{}, strings.NewReader("ok\nb\xffd\n"))
	p.SetContext(ctx)

	items, err := collectWithContext(ctx, p.Start())
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	sortByIndex(items)

	if len(items) != 2 {
		t.Fatalf("unexpected output count: %d", len(items))
	}
	if items[0].Error != nil {
		t.Fatalf("unexpected error on valid line: %v", items[0].Error)
	}
	var de *codec.DecodeError
	if !errors.As(items[1].Error, &de) {
		t.Fatalf("expected a DecodeError, got %v", items[1].Error)
	}
	if got, want := items[1].UTF8String(), "b�d\n"; got != want {
		t.Fatalf("unexpected replacement: got %q want %q", got, want)
	}
}

func TestIOReaderProcessor_Stop(t *testing.T) {
	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Long enough to still be scanning when Stop is called.
	r := strings.NewReader(strings.Repeat("line\n", 1<<16))
	p := NewIOReaderProcessor[Dual](Identity[Dual]{}, r)
	out := p.Start()
	<-out
	p.Stop()

	if _, err := collectWithContext(waitCtx, out); err != nil {
		t.Fatalf("output not closed after Stop: %v", err)
	}
}
