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

	"github.com/spf13/cobra"

	"github.com/abarnert/str8/pkg/str8"
)

func hexCmd() *cobra.Command {
	var decode bool

	c := &cobra.Command{
		Use:   "hex TEXT",
		Short: "Print the UTF-8 bytes of TEXT as hex, or decode hex with --decode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s str8.Str8
			var err error
			if decode {
				s, err = str8.FromHex(args[0])
			} else {
				s, err = str8.FromString(args[0])
				s = s.Hex()
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return err
		},
	}

	c.Flags().BoolVarP(&decode, "decode", "d", false, "TEXT is hex digits to decode as UTF-8")
	return c
}
