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
package boolalg

import (
	"slices"

	"github.com/lacuna-lang/effectunify/pkg/util/collection/array"
)

// MkNot constructs the complement of t, applying the standard simplification
// rules rather than always allocating a fresh Not node: !⊤ = ⊥, !⊥ = ⊤, and
// !!x = x (double-negation elimination keeps terms shallow, avoiding a
// later normalization pass).
func MkNot(t Term) Term {
	switch t.kind {
	case KindTrue:
		return False
	case KindFalse:
		return True
	case KindNot:
		return t.children[0]
	default:
		return Term{kind: KindNot, children: []Term{t}}
	}
}

// MkAnd constructs the intersection of the given terms, flattening nested
// And nodes, absorbing the ⊤ identity, short-circuiting to ⊥ on any ⊥ or
// complementary pair of children, and deduplicating repeated children.
// Mirrors pkg/ir/disjunct.go's Simplify for Or, generalised to the dual
// connective and extended with the complementary-pair short-circuit this
// algebra's unification phases rely on (x & !x == ⊥).
func MkAnd(terms ...Term) Term {
	return mkAssoc(KindAnd, True, False, terms)
}

// MkOr constructs the union of the given terms, flattening nested Or nodes,
// absorbing the ⊥ identity, short-circuiting to ⊤ on any ⊤ or complementary
// pair of children, and deduplicating repeated children. Grounded directly
// on pkg/ir/disjunct.go's Disjunct.Simplify.
func MkOr(terms ...Term) Term {
	return mkAssoc(KindOr, False, True, terms)
}

// MkXor constructs the symmetric difference (l ^ r), used by the SVE phase
// to build the "query" term (spec's Q = l ^ r) whose satisfiability the
// elimination step tests.
func MkXor(l, r Term) Term {
	return MkOr(MkAnd(l, MkNot(r)), MkAnd(MkNot(l), r))
}

// mkAssoc builds an n-ary And/Or node. identity is the connective's identity
// element (⊤ for And, ⊥ for Or); annihilator is the element that collapses
// the whole expression (⊥ for And, ⊤ for Or).
func mkAssoc(kind Kind, identity, annihilator Term, terms []Term) Term {
	children := make([]Term, 0, len(terms))
	children = append(children, terms...)
	// Flatten any nested node of the same kind one level, exactly as
	// array.Flatten/forceFlatten do for Disjunct.Simplify.
	children = array.Flatten(children, func(t Term) []Term {
		if t.kind == kind {
			return t.children
		}

		return nil
	})
	// Drop identity elements (e.g. ⊤ inside an And, ⊥ inside an Or).
	children = array.RemoveMatching(children, func(t Term) bool {
		return t.kind == identity.kind
	})
	// Any literal annihilator collapses the whole expression.
	if array.ContainsMatching(children, func(t Term) bool {
		return t.kind == annihilator.kind
	}) {
		return annihilator
	}
	// Sort so structurally-equal terms always compare Equal, then
	// deduplicate repeated children (x & x == x, x | x == x).
	slices.SortFunc(children, compare)
	children = dedupe(children)
	// A complementary pair anywhere collapses the whole expression
	// (x & !x == ⊥, x | !x == ⊤).
	if hasComplementaryPair(children) {
		return annihilator
	}

	switch len(children) {
	case 0:
		return identity
	case 1:
		return children[0]
	default:
		return Term{kind: kind, children: children}
	}
}

// dedupe removes adjacent duplicates from a slice already sorted by compare.
func dedupe(children []Term) []Term {
	if len(children) < 2 {
		return children
	}

	out := children[:1]

	for _, c := range children[1:] {
		if !out[len(out)-1].Equal(c) {
			out = append(out, c)
		}
	}

	return out
}

// hasComplementaryPair checks, in a sorted child list, whether some child c
// and MkNot(c) are both present.
func hasComplementaryPair(children []Term) bool {
	for _, c := range children {
		if c.kind != KindNot {
			continue
		}

		target := c.children[0]
		// Binary search since children is sorted by compare.
		_, found := slices.BinarySearchFunc(children, target, compare)

		if found {
			return true
		}
	}

	return false
}
