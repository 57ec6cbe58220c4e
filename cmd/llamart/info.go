// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Renelvon/llama/lang/llama"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the runtime primitives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tSIGNATURE\tGROUP")
			for _, s := range llama.Builtins {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.CName(), s.Signature(), s.Group)
			}
			return tw.Flush()
		},
	}
}

func newHeaderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Write the C header of the runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return llama.WriteHeader(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err = llama.WriteHeader(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the header to `filename`")
	return cmd
}
