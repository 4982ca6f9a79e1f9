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

// SimplifyAndCheck discards equations that are vacuously true and raises a
// MismatchedEffects conflict for any equation that is provably false
// regardless of variable assignment: a literal True/False clash, or two
// distinct rigid variables (which, being uninterpreted constants, can
// never be made equal by any substitution) equated directly.
func SimplifyAndCheck(eqs []Equation, rigid *set.SortedSet[uint]) ([]Equation, error) {
	kept := make([]Equation, 0, len(eqs))

	for _, e := range eqs {
		switch {
		case e.IsTrivial():
			continue
		case e.LHS.IsTrue() && e.RHS.IsFalse(), e.LHS.IsFalse() && e.RHS.IsTrue():
			return nil, NewConflict(MismatchedEffects, e.LHS, e.RHS)
		case isRigidConstClash(e, rigid):
			return nil, NewConflict(MismatchedEffects, e.LHS, e.RHS)
		default:
			kept = append(kept, e)
		}
	}

	return kept, nil
}

// isRigidConstClash recognises two distinct rigid variables equated
// directly -- the Const(c) ~ Const(d), c != d, both-rigid case, since a
// rigid variable is semantically an uninterpreted constant.
func isRigidConstClash(e Equation, rigid *set.SortedSet[uint]) bool {
	if !e.LHS.IsVar() || !e.RHS.IsVar() {
		return false
	}

	x, y := e.LHS.VarID(), e.RHS.VarID()

	return x != y && rigid.Contains(x) && rigid.Contains(y)
}
