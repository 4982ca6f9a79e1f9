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

import (
	"github.com/lacuna-lang/effectunify/pkg/boolalg"
	"github.com/lacuna-lang/effectunify/pkg/util/collection/set"
)

// UnitPropagation discharges the two cheapest equation shapes to a
// fixpoint: UP-1 (Var(x) ~ True) and UP-2 (And(vars) ~ True). A pattern
// that would bind a rigid variable is left untouched, falling through to
// later phases (and ultimately SVE's base case) for resolution.
func UnitPropagation(eqs []Equation, sigma Substitution, rigid *set.SortedSet[uint]) ([]Equation, Substitution, error) {
	for {
		kept := make([]Equation, 0, len(eqs))
		boundAny := false

		for _, e := range eqs {
			switch {
			case matchUP1(e, rigid):
				bound, err := extendOrConflict(sigma, e.LHS.VarID(), boolalg.True)
				if err != nil {
					return nil, Substitution{}, err
				}

				sigma = bound
				boundAny = true
			case matchUP2(e, rigid):
				for _, c := range e.LHS.Children() {
					bound, err := extendOrConflict(sigma, c.VarID(), boolalg.True)
					if err != nil {
						return nil, Substitution{}, err
					}

					sigma = bound
				}

				boundAny = true
			default:
				kept = append(kept, e)
			}
		}

		eqs = kept

		if !boundAny {
			return eqs, sigma, nil
		}

		eqs = sigma.ApplyAll(eqs)
	}
}

// matchUP1 recognises Var(x) ~ True with x flexible.
func matchUP1(e Equation, rigid *set.SortedSet[uint]) bool {
	return e.LHS.IsVar() && e.RHS.IsTrue() && !rigid.Contains(e.LHS.VarID())
}

// matchUP2 recognises And(ts) ~ True where every t in ts is a flexible Var.
func matchUP2(e Equation, rigid *set.SortedSet[uint]) bool {
	if e.LHS.Kind() != boolalg.KindAnd || !e.RHS.IsTrue() {
		return false
	}

	for _, c := range e.LHS.Children() {
		if !c.IsVar() || rigid.Contains(c.VarID()) {
			return false
		}
	}

	return true
}
