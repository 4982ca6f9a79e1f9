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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lacuna-lang/effectunify/pkg/surface"
	"github.com/lacuna-lang/effectunify/pkg/unify"
	"github.com/lacuna-lang/effectunify/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag returns a boolean flag's value, or exits with an error message if
// the flag does not exist (a programmer error in this package, not a user
// error).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getStringSlice returns a string-slice flag's value, exiting on the same
// terms as GetFlag.
func getStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getInt returns an int flag's value, exiting on the same terms as GetFlag.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// mustParseDocument parses filename as an equation document, printing any
// syntax errors with caret highlighting and exiting on failure. The
// --rigid flag's names are merged into the file's own $-marked rigidity,
// giving the caller a way to classify variables rigid without editing the
// file.
func mustParseDocument(cmd *cobra.Command, filename string) surface.Document {
	doc, errs := surface.ParseFile(filename)
	if len(errs) != 0 {
		printSyntaxErrors(errs)
		os.Exit(2)
	}

	for _, name := range getStringSlice(cmd, "rigid") {
		doc.Rigidity[name] = unify.Rigid
	}

	return doc
}

// printSyntaxErrors prints one or more syntax errors with a caret pointing
// at the offending span, in the style of the original syntax-error printer
// this was adapted from.
func printSyntaxErrors(errs []source.SyntaxError) {
	for _, e := range errs {
		line := e.FirstEnclosingLine()
		span := e.Span()
		offset := max(0, span.Start()-line.Start())
		width := max(1, span.Length())

		fmt.Printf("%s:%d: %s\n", e.SourceFile().Filename(), line.Number(), e.Message())
		fmt.Println(line.String())
		fmt.Println(strings.Repeat(" ", offset) + strings.Repeat("^", width))
	}
}

// reportConflict prints a unification failure: a *unify.CallerConflictError
// is rendered with its witness types in surface syntax, anything else is
// printed as a plain error.
func reportConflict(err error) {
	var conflict *unify.CallerConflictError[string]
	if !errors.As(err, &conflict) {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s: %s ~ %s\n", conflict.Kind, surface.FromType(conflict.LHS), surface.FromType(conflict.RHS))
}
