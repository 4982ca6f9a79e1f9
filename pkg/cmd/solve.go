// Copyright The Effectunify Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"os"
	"sort"

	"github.com/lacuna-lang/effectunify/pkg/surface"
	"github.com/lacuna-lang/effectunify/pkg/unify"
	"github.com/lacuna-lang/effectunify/pkg/util/termio"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve equation_file",
	Short: "Solve an effect-equation file and print the most general substitution.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustParseDocument(cmd, args[0])
		opts := unify.Options{MaxEliminationDepth: getInt(cmd, "max-depth")}

		solution, err := surface.Solve(doc, opts)
		if err != nil {
			reportConflict(err)
			os.Exit(1)
		}

		printSolution(solution)
	},
}

// printSolution renders a solved substitution as a two-column table:
// variable name, bound type in surface syntax.
func printSolution(solution surface.Solution) {
	names := make([]string, 0, len(solution))
	for name := range solution {
		names = append(names, name)
	}

	sort.Strings(names)

	tp := termio.NewTablePrinter(2, uint(len(names)))

	for i, name := range names {
		tp.Set(0, uint(i), name)
		tp.Set(1, uint(i), solution[name].String())
	}

	tp.Print()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Int("max-depth", 0, "override SVE's elimination budget (0 selects the default)")
}
