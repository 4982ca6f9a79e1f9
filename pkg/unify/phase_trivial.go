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
package unify

import "github.com/lacuna-lang/effectunify/pkg/util/collection/set"

// TrivialAssignment makes a single pass over the residual equation list,
// binding every Var(x) ~ t where x is flexible and does not occur free in
// t. Order matters within the pass: later equations see earlier bindings
// already applied to their right-hand side, per the component design.
func TrivialAssignment(eqs []Equation, sigma Substitution, rigid *set.SortedSet[uint]) ([]Equation, Substitution, error) {
	kept := make([]Equation, 0, len(eqs))

	for _, e := range eqs {
		if e.LHS.IsVar() {
			x := e.LHS.VarID()
			if !rigid.Contains(x) && !e.RHS.FreeVars().Contains(x) {
				bound, err := extendOrConflict(sigma, x, sigma.Apply(e.RHS))
				if err != nil {
					return nil, Substitution{}, err
				}

				sigma = bound

				continue
			}
		}

		kept = append(kept, e)
	}

	return sigma.ApplyAll(kept), sigma, nil
}
