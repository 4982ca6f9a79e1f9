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
	"github.com/lacuna-lang/effectunify/pkg/util/collection/enum"
	"github.com/lacuna-lang/effectunify/pkg/util/collection/set"
)

// SuccessiveVariableElimination solves the residual equations left after
// phases D-F, one equation at a time, composing results left-to-right: the
// Boudet-Contejean-Devie theorem guarantees each per-equation solve is a
// most-general unifier, and composing mgus left-to-right yields an mgu for
// the whole residue.
func SuccessiveVariableElimination(
	eqs []Equation,
	sigma Substitution,
	rigid *set.SortedSet[uint],
	budget *Budget,
) (Substitution, error) {
	for _, e := range eqs {
		e = sigma.ApplyEquation(e)
		if e.IsTrivial() {
			continue
		}

		q := boolalg.MkXor(e.LHS, e.RHS)
		if q.IsFalse() {
			continue
		}

		free := flexibleFreeVars(q, rigid)

		s, err := sve(q, free, budget)
		if err != nil {
			return Substitution{}, err
		}

		sigma = s.Compose(sigma)
	}

	return sigma, nil
}

// flexibleFreeVars returns the flexible variables free in q, in ascending
// id order, matching the elimination order the component design fixes.
func flexibleFreeVars(q boolalg.Term, rigid *set.SortedSet[uint]) []uint {
	fv := q.FreeVars()
	out := make([]uint, 0, len(*fv))

	it := fv.Iter()
	for it.HasNext() {
		x := it.Next()
		if !rigid.Contains(x) {
			out = append(out, x)
		}
	}

	return out
}

// sve implements the recursive elimination itself: the base case decides
// satisfiability of q by brute enumeration, and the recursive case
// eliminates the next free variable, building its binding from the
// recursively-solved residue per spec 4.7 step 3.
func sve(q boolalg.Term, free []uint, budget *Budget) (Substitution, error) {
	if err := budget.Tick(q); err != nil {
		return Substitution{}, err
	}

	if len(free) == 0 {
		// q is valid (the two original sides are equivalent) iff q is
		// identically false; if some assignment of the remaining (rigid)
		// variables makes q true, the two sides disagree there and the
		// equation cannot be unified.
		if satisfiable(q, q.FreeVars()) {
			return Substitution{}, NewConflict(MismatchedEffects, q, boolalg.False)
		}

		return NewSubstitution(), nil
	}

	x := free[0]
	rest := free[1:]

	t0 := SingletonSubstitution(x, boolalg.False).Apply(q)
	t1 := SingletonSubstitution(x, boolalg.True).Apply(q)

	sigmaRest, err := sve(boolalg.MkAnd(t0, t1), rest, budget)
	if err != nil {
		return Substitution{}, err
	}

	tx := boolalg.MkOr(
		sigmaRest.Apply(t0),
		boolalg.MkAnd(boolalg.Var(x), boolalg.MkNot(sigmaRest.Apply(t1))),
	)

	return SingletonSubstitution(x, tx).Merge(sigmaRest), nil
}

// satisfiable decides, by brute enumeration over all 2^k assignments of
// vars, whether some assignment makes q evaluate to true. Acceptable
// because the staged pipeline guarantees k is tiny by the time SVE's base
// case is reached (typically 0-4), per the component design's rationale.
func satisfiable(q boolalg.Term, vars *set.SortedSet[uint]) bool {
	ids := []uint(*vars)
	k := uint(len(ids))

	if k == 0 {
		return q.Eval(func(uint) bool { return false })
	}

	space := enum.Power(k, []bool{false, true})

	for space.HasNext() {
		combo := space.Next()
		assignment := make(map[uint]bool, k)

		for i, id := range ids {
			assignment[id] = combo[i]
		}

		if q.Eval(func(id uint) bool { return assignment[id] }) {
			return true
		}
	}

	return false
}
