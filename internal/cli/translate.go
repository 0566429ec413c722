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
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abarnert/str8/pkg/str8"
)

func translateCmd() *cobra.Command {
	var tablePath string

	c := &cobra.Command{
		Use:   "translate --table FILE.yaml TEXT",
		Short: "Translate TEXT character by character with a YAML table",
		Long: "The table maps single characters to replacement strings; a null value\n" +
			"deletes the character:\n\n" +
			"  a: A\n" +
			"  é: e\n" +
			"  \"!\": null\n",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(tablePath)
			if err != nil {
				return err
			}
			s, err := str8.FromString(args[0])
			if err != nil {
				return err
			}
			out, err := s.Translate(table)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return err
		},
	}

	c.Flags().StringVarP(&tablePath, "table", "t", "", "YAML translation table (required)")
	_ = c.MarkFlagRequired("table")
	return c
}

func loadTable(path string) (str8.Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return str8.Table{}, fmt.Errorf("read table: %w", err)
	}
	var raw map[string]*string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return str8.Table{}, fmt.Errorf("parse table %s: %w", path, err)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]str8.TransPair, 0, len(keys))
	for _, k := range keys {
		p := str8.TransPair{From: str8.Text(k)}
		if v := raw[k]; v != nil {
			p.To = str8.Text(*v)
		}
		pairs = append(pairs, p)
	}
	slog.Debug("translate.table", "path", path, "entries", len(pairs))

	t, err := str8.MakeTransMap(pairs...)
	if err != nil {
		return str8.Table{}, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}
