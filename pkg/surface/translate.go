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
package surface

import "github.com/lacuna-lang/effectunify/pkg/unify"

// Solution is a solved Document, in surface vocabulary: every bound
// variable mapped to the Term it was unified with.
type Solution map[string]Term

// Solve runs unify.UnifyAll over doc's equations under doc's rigidity
// classification, and renders the result back into surface syntax. This
// is the end-to-end path pkg/cmd's solve/trace/check subcommands drive:
// Term satisfies unify.Type[string] directly, so no separate AST walk is
// needed going in, only FromType coming back out.
func Solve(doc Document, opts unify.Options) (Solution, error) {
	sub, err := unify.UnifyAll(doc.Equations, doc.Rigidity, opts)
	if err != nil {
		return nil, err
	}

	solution := make(Solution, sub.Len())

	for _, sym := range sub.Domain() {
		bound, _ := sub.Lookup(sym)
		solution[sym] = FromType(bound)
	}

	return solution, nil
}
