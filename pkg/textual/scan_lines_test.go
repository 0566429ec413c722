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
	"bufio"
	"reflect"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string, split bufio.SplitFunc) []string {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(split)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	return tokens
}

func TestScanLines_KeepsTerminators(t *testing.T) {
	tokens := scanAll(t, "a\nb\r\nc\rd", ScanLines)
	want := []string{"a\n", "b\r\n", "c\r", "d"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens:\n got: %#v\nwant: %#v", tokens, want)
	}
}

func TestScanLines_CRLFAcrossBufferBoundary(t *testing.T) {
	// The first call sees only "x\r" and must wait for the next byte.
	adv, tok, err := ScanLines([]byte("x\r"), false)
	if err != nil || adv != 0 || tok != nil {
		t.Fatalf("expected a request for more data, got adv=%d tok=%q err=%v", adv, tok, err)
	}
	adv, tok, _ = ScanLines([]byte("x\r\ny"), false)
	if adv != 3 || string(tok) != "x\r\n" {
		t.Fatalf("unexpected token: adv=%d tok=%q", adv, tok)
	}
	adv, tok, _ = ScanLines([]byte("x\r"), true)
	if adv != 2 || string(tok) != "x\r" {
		t.Fatalf("unexpected final token: adv=%d tok=%q", adv, tok)
	}
}

func TestScanWords_ReconstructsInput(t *testing.T) {
	const input = "  Hello, world!\nThis  is\tstr8.\n"
	tokens := scanAll(t, input, ScanWords)
	if got := strings.Join(tokens, ""); got != input {
		t.Fatalf("reconstructed text mismatch:\n got: %q\nwant: %q", got, input)
	}
}

func TestScanWords_TokensIncludeTrailingSpace(t *testing.T) {
	tokens := scanAll(t, "Hello, wörld!\n", ScanWords)
	want := []string{"Hello, ", "wörld!\n"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens:\n got: %#v\nwant: %#v", tokens, want)
	}
}
