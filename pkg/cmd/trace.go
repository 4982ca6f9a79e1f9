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
	"fmt"
	"os"

	"github.com/lacuna-lang/effectunify/pkg/surface"
	"github.com/lacuna-lang/effectunify/pkg/unify"
	"github.com/lacuna-lang/effectunify/pkg/util/termio"
	"github.com/spf13/cobra"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace equation_file",
	Short: "Solve an effect-equation file, printing one table row per solver phase.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustParseDocument(cmd, args[0])
		hook := &traceHook{colour: termio.IsTerminal()}
		opts := unify.Options{Hook: hook}

		solution, err := surface.Solve(doc, opts)

		hook.print()

		if err != nil {
			reportConflict(err)
			os.Exit(1)
		}

		printSolution(solution)
	},
}

// traceHook implements unify.Hook, recording one row per phase transition
// for trace's tabular report.
type traceHook struct {
	colour bool
	rows   []traceRow
}

type traceRow struct {
	phase     unify.Phase
	equations int
	bindings  int
}

// OnPhaseComplete implements unify.Hook.
func (h *traceHook) OnPhaseComplete(phase unify.Phase, equations []unify.Equation, substitution unify.Substitution) {
	h.rows = append(h.rows, traceRow{phase: phase, equations: len(equations), bindings: substitution.Len()})
}

func (h *traceHook) print() {
	tp := termio.NewTablePrinter(3, uint(len(h.rows)))

	highlight := termio.BoldAnsiEscape().FgColour(termio.TERM_CYAN)
	tp.AnsiEscapes(h.colour)

	for i, row := range h.rows {
		tp.Set(0, uint(i), row.phase.String())
		tp.Set(1, uint(i), fmt.Sprintf("%d", row.equations))
		tp.Set(2, uint(i), fmt.Sprintf("%d", row.bindings))
		tp.SetEscape(0, uint(i), highlight.Build())
	}

	tp.Print()
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
