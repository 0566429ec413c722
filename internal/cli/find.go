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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abarnert/str8/pkg/str8"
)

func findCmd() *cobra.Command {
	var asHex bool

	c := &cobra.Command{
		Use:   "find TEXT NEEDLE",
		Short: "Print the character index of NEEDLE as text and its byte index as bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := str8.FromString(args[0])
			if err != nil {
				return err
			}
			needle, err := parseNeedle(args[1], asHex)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "text:  %d\n", s.Find(str8.Text(needle)))
			fmt.Fprintf(out, "bytes: %d\n", s.Find(str8.Bytes(needle)))
			return nil
		},
	}

	c.Flags().BoolVar(&asHex, "hex", false, "NEEDLE is hex digits (whitespace ignored)")
	return c
}

func parseNeedle(arg string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(arg), nil
	}
	b, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
	if err != nil {
		return nil, fmt.Errorf("needle: %w", err)
	}
	return b, nil
}
