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
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] equation_file...",
	Short: "Check that every given equation file unifies, exiting 1 on the first conflict.",
	Long: `Check that every given equation file unifies, exiting 1 on the first conflict.
	Intended for CI gating over a fixed corpus of equation files; prints nothing on
	success. With --report, every conflict is printed before exiting 1.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := GetFlag(cmd, "report")
		ok := true

		for _, filename := range args {
			doc := mustParseDocument(cmd, filename)

			if _, err := surface.Solve(doc, unify.Options{}); err != nil {
				ok = false

				if report {
					fmt.Printf("%s: ", filename)
					reportConflict(err)
				} else {
					os.Exit(1)
				}
			}
		}

		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("report", false, "report every conflict found, rather than exiting on the first")
}
