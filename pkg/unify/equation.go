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

// Package unify implements the staged Boolean-unification solver: the
// equation and substitution algebras, the four solver phases, and the
// driver that orchestrates them over a caller's effect-type representation.
package unify

import "github.com/lacuna-lang/effectunify/pkg/boolalg"

// Equation is an oriented pair of terms. The orientation is a rewrite hint,
// not semantics: Equation{a, b} and Equation{b, a} denote the same
// constraint, and NewEquation always normalises to a canonical side.
type Equation struct {
	LHS, RHS boolalg.Term
}

// NewEquation constructs an Equation, normalising orientation: a Var sits
// on the left whenever one side is a Var; failing that, a literal
// True/False constant is pushed to the right.
func NewEquation(lhs, rhs boolalg.Term) Equation {
	if rank(lhs) > rank(rhs) {
		lhs, rhs = rhs, lhs
	}

	return Equation{LHS: lhs, RHS: rhs}
}

// rank orders term shapes for Equation orientation: variables first, then
// connectives, then literal constants last.
func rank(t boolalg.Term) int {
	switch {
	case t.IsVar():
		return 0
	case t.IsTrue(), t.IsFalse():
		return 2
	default:
		return 1
	}
}

// Size is the equation's size metric, the sum of both sides' node counts.
func (e Equation) Size() uint {
	return e.LHS.Size() + e.RHS.Size()
}

// IsTrivial reports whether both sides are already syntactically identical,
// i.e. the equation holds vacuously and may be discarded.
func (e Equation) IsTrivial() bool {
	return e.LHS.Equal(e.RHS)
}
