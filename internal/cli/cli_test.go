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
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarnert/str8/pkg/codec"
	"github.com/abarnert/str8/pkg/str8"
)

// run executes the root command with args and stdin, returning stdout and
// stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

func TestRecode_Latin1ToUTF8(t *testing.T) {
	out, _, err := run(t, "caf\xe9\nna\xefve\n", "recode", "--from", "latin-1", "--op", "upper")
	require.NoError(t, err)
	assert.Equal(t, "CAFÉ\nNAÏVE\n", out)
}

func TestRecode_FromFileToUTF16LE(t *testing.T) {
	p := writeFile(t, "in.txt", []byte("hé\n"))
	out, _, err := run(t, "", "recode", "--to", "utf-16le", p)
	require.NoError(t, err)
	assert.Equal(t, "h\x00\xe9\x00\n\x00", out)
}

func TestRecode_StrictDecodeFails(t *testing.T) {
	_, _, err := run(t, "ok\n\xff\n", "recode")
	var de *codec.DecodeError
	require.ErrorAs(t, err, &de)

	out, _, err := run(t, "ok\n\xff\n", "recode", "--errors", "replace")
	require.NoError(t, err)
	assert.Equal(t, "ok\n�\n", out)
}

func TestRecode_EncodeErrorModes(t *testing.T) {
	_, _, err := run(t, "π\n", "recode", "--to", "ascii")
	var ee *codec.EncodeError
	require.ErrorAs(t, err, &ee)

	out, _, err := run(t, "π\n", "recode", "--to", "ascii", "--errors", "backslashreplace")
	require.NoError(t, err)
	assert.Equal(t, "\\u03c0\n", out)
}

func TestRecode_When(t *testing.T) {
	out, _, err := run(t, "abc\n123\nDEF\n", "recode", "--op", "swapcase", "--when", "!isdigit")
	require.NoError(t, err)
	assert.Equal(t, "ABC\n123\ndef\n", out)
}

func TestRecode_Stream(t *testing.T) {
	out, _, err := run(t, "\xe1\xe2\xe3\n", "recode", "--stream", "--from", "iso-8859-7", "--op", "title")
	require.NoError(t, err)
	assert.Equal(t, "Αβγ\n", out)
}

func TestRecode_StreamAndBufferedAgree(t *testing.T) {
	const input = "a\fb \n\vc\r\n"
	buffered, _, err := run(t, input, "recode", "--op", "strip")
	require.NoError(t, err)
	streamed, _, err := run(t, input, "recode", "--op", "strip", "--stream")
	require.NoError(t, err)
	assert.Equal(t, "a\fb\nc\r\n", buffered)
	assert.Equal(t, buffered, streamed)
}

func TestRecode_BadFlags(t *testing.T) {
	_, _, err := run(t, "", "recode", "--op", "reverse")
	assert.ErrorContains(t, err, "unknown operation")

	_, _, err = run(t, "", "recode", "--errors", "loud")
	assert.ErrorIs(t, err, codec.ErrUnsupportedMode)

	_, _, err = run(t, "", "recode", "--when", "isfancy")
	assert.ErrorContains(t, err, "unknown predicate")

	_, _, err = run(t, "", "recode", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecode_DebugLogsLines(t *testing.T) {
	_, errOut, err := run(t, "x\n", "--debug", "recode")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=recode.start")
	assert.Contains(t, errOut, "msg=recode.line index=0")
}

func TestFind(t *testing.T) {
	out, _, err := run(t, "", "find", "áβç", "ç")
	require.NoError(t, err)
	assert.Equal(t, "text:  2\nbytes: 4\n", out)

	out, _, err = run(t, "", "find", "áβç", "--hex", "b2")
	require.NoError(t, err)
	assert.Equal(t, "text:  -1\nbytes: 3\n", out)

	_, _, err = run(t, "", "find", "abc", "--hex", "zz")
	assert.ErrorContains(t, err, "needle")
}

func TestHex(t *testing.T) {
	out, _, err := run(t, "", "hex", "é!")
	require.NoError(t, err)
	assert.Equal(t, "c3a921\n", out)

	out, _, err = run(t, "", "hex", "--decode", "C3 A9 21")
	require.NoError(t, err)
	assert.Equal(t, "é!\n", out)

	_, _, err = run(t, "", "hex", "-d", "ff")
	var de *str8.DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestTranslate(t *testing.T) {
	p := writeFile(t, "table.yaml", []byte("a: A\né: e\n\"!\": null\nb: \"\"\n"))
	out, _, err := run(t, "", "translate", "--table", p, "abé!c")
	require.NoError(t, err)
	assert.Equal(t, "Aec\n", out)
}

func TestTranslate_BadTables(t *testing.T) {
	_, _, err := run(t, "", "translate", "x")
	assert.ErrorContains(t, err, "required flag")

	p := writeFile(t, "bad.yaml", []byte("ab: x\n"))
	_, _, err = run(t, "", "translate", "-t", p, "x")
	assert.True(t, errors.Is(err, str8.ErrTableKey), "got %v", err)

	p = writeFile(t, "broken.yaml", []byte("a: [\n"))
	_, _, err = run(t, "", "translate", "-t", p, "x")
	assert.ErrorContains(t, err, "parse table")
}
