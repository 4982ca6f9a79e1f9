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

// VariablePropagation makes a single pass over the residual equation list,
// binding one side of every Var(x) ~ Var(y) equation to the other. A rigid
// variable is never bound: if x is rigid and y flexible, y is bound to x
// instead; if both are rigid and distinct, that is a conflict (two
// uninterpreted constants can never be unified).
func VariablePropagation(eqs []Equation, sigma Substitution, rigid *set.SortedSet[uint]) ([]Equation, Substitution, error) {
	kept := make([]Equation, 0, len(eqs))

	for _, e := range eqs {
		if !e.LHS.IsVar() || !e.RHS.IsVar() {
			kept = append(kept, e)
			continue
		}

		x, y := e.LHS.VarID(), e.RHS.VarID()
		if x == y {
			continue
		}

		xRigid, yRigid := rigid.Contains(x), rigid.Contains(y)

		var (
			bound Substitution
			err   error
		)

		switch {
		case !xRigid:
			bound, err = extendOrConflict(sigma, x, boolalg.Var(y))
		case !yRigid:
			bound, err = extendOrConflict(sigma, y, boolalg.Var(x))
		default:
			return nil, Substitution{}, NewConflict(MismatchedEffects, e.LHS, e.RHS)
		}

		if err != nil {
			return nil, Substitution{}, err
		}

		sigma = bound
	}

	return sigma.ApplyAll(kept), sigma, nil
}
