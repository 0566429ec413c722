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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abarnert/str8/pkg/codec"
	"github.com/abarnert/str8/pkg/textual"
)

func recodeCmd() *cobra.Command {
	var from string
	var to string
	var errMode string
	var opName string
	var when string
	var stream bool

	c := &cobra.Command{
		Use:   "recode [FILE]",
		Short: "Convert text between encodings, transforming every line on the way",
		Long: "Reads FILE (or stdin when FILE is omitted or \"-\"), decodes it from --from,\n" +
			"applies --op to every line and writes it to stdout encoded with --to.\n\n" +
			"Operations: " + strings.Join(textual.OpNames(), ", ") + "\n" +
			"Predicates for --when (prefix with ! to negate): " + strings.Join(textual.PredicateNames(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := codec.ParseErrorMode(errMode)
			if err != nil {
				return err
			}
			stage, err := buildStage(opName, when)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			tr := textual.Transformation{
				From: textual.Nature{Encoding: from, Errors: mode},
				To:   textual.Nature{Encoding: to, Errors: mode},
			}
			p := textual.NewChain[textual.Dual](stage, textual.Slog[textual.Dual]("recode.line"))

			slog.Debug("recode.start", "from", from, "to", to, "errors", string(mode), "op", opName, "when", when, "stream", stream)
			if stream {
				return tr.Stream(cmd.Context(), p, in, cmd.OutOrStdout())
			}
			return tr.Run(cmd.Context(), p, in, cmd.OutOrStdout())
		},
	}

	c.Flags().StringVar(&from, "from", "utf-8", "Encoding of the input")
	c.Flags().StringVar(&to, "to", "utf-8", "Encoding of the output")
	c.Flags().StringVar(&errMode, "errors", "strict", "Error mode: strict|replace|ignore|backslashreplace|xmlcharrefreplace")
	c.Flags().StringVar(&opName, "op", "identity", "Operation applied to every line")
	c.Flags().StringVar(&when, "when", "", "Only apply --op to lines matching this predicate")
	c.Flags().BoolVar(&stream, "stream", false, "Decode incrementally; undecodable input becomes U+FFFD")
	return c
}

func buildStage(opName, when string) (textual.Processor[textual.Dual], error) {
	op, err := textual.LookupOp(opName)
	if err != nil {
		return nil, err
	}
	op = textual.KeepLineEnd(op)
	if when == "" {
		return textual.Map(op), nil
	}
	pred, err := textual.LookupPredicate(when)
	if err != nil {
		return nil, err
	}
	return textual.If(textual.IgnoreLineEnd(pred)).Then(op), nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
