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

// Package boolalg implements the free Boolean algebra over a dense set of
// variable identifiers: terms, their smart constructors, and the
// canonicalisation rules used throughout the unification engine.
package boolalg

import (
	"fmt"
	"strings"

	"github.com/lacuna-lang/effectunify/pkg/util/collection/set"
)

// Kind identifies which variant of Term a given value represents.
type Kind uint8

const (
	// KindTrue is the top element (Pure), the identity of And and the
	// annihilator of Or.
	KindTrue Kind = iota
	// KindFalse is the bottom element (Univ), the identity of Or and the
	// annihilator of And.
	KindFalse
	// KindVar is an atomic variable.
	KindVar
	// KindNot is a complement of a single child term.
	KindNot
	// KindAnd is an n-ary (n >= 2) intersection, flat by construction.
	KindAnd
	// KindOr is an n-ary (n >= 2) union, flat by construction.
	KindOr
)

// Term is a node in the free Boolean algebra over variable identifiers.
// Values are always produced via the smart constructors (True, False, Var,
// MkNot, MkAnd, MkOr), which guarantee every Term is in canonical form: no
// nested And-under-And or Or-under-Or, no literal True/False child once
// folded, and no duplicate Var children of the same connective.
//
// Term is immutable; every operation returns a new value.
type Term struct {
	kind     Kind
	variable uint
	children []Term
}

// True is the top element of the algebra (spec's Pure, written ⊤).
var True = Term{kind: KindTrue} //nolint:revive

// False is the bottom element of the algebra (spec's Univ, written ⊥).
var False = Term{kind: KindFalse} //nolint:revive

// Var constructs an atomic term referring to the given dense variable id.
func Var(id uint) Term {
	return Term{kind: KindVar, variable: id}
}

// Kind returns this term's variant.
func (t Term) Kind() Kind {
	return t.kind
}

// VarID returns the variable identifier of a KindVar term. Panics on any
// other kind.
func (t Term) VarID() uint {
	if t.kind != KindVar {
		panic(fmt.Sprintf("boolalg: VarID called on non-variable term (kind %d)", t.kind))
	}

	return t.variable
}

// Children returns the operands of a KindNot/KindAnd/KindOr term. Panics on
// True/False/Var, which have none.
func (t Term) Children() []Term {
	switch t.kind {
	case KindNot, KindAnd, KindOr:
		return t.children
	default:
		panic(fmt.Sprintf("boolalg: Children called on leaf term (kind %d)", t.kind))
	}
}

// IsTrue returns true iff this term is literally the True leaf. Note this is
// syntactic, not semantic equivalence (e.g. Var(0) | !Var(0) is not IsTrue).
func (t Term) IsTrue() bool {
	return t.kind == KindTrue
}

// IsFalse returns true iff this term is literally the False leaf.
func (t Term) IsFalse() bool {
	return t.kind == KindFalse
}

// IsVar returns true iff this term is a bare variable.
func (t Term) IsVar() bool {
	return t.kind == KindVar
}

// Equal performs structural equality on canonical terms. Because every Term
// is produced in canonical form, structural equality here coincides with
// syntactic equality-up-to-reordering of And/Or children -- the smart
// constructors sort children, so this is a plain deep comparison.
func (t Term) Equal(o Term) bool {
	if t.kind != o.kind {
		return false
	}

	switch t.kind {
	case KindTrue, KindFalse:
		return true
	case KindVar:
		return t.variable == o.variable
	default:
		if len(t.children) != len(o.children) {
			return false
		}

		for i := range t.children {
			if !t.children[i].Equal(o.children[i]) {
				return false
			}
		}

		return true
	}
}

// Size returns the number of nodes in this term's tree, matching the
// notion of |term| used to bound SVE's recursion.
func (t Term) Size() uint {
	switch t.kind {
	case KindTrue, KindFalse, KindVar:
		return 1
	default:
		n := uint(1)
		for _, c := range t.children {
			n += c.Size()
		}

		return n
	}
}

// FreeVars returns the set of variable identifiers occurring in this term.
func (t Term) FreeVars() *set.SortedSet[uint] {
	vars := set.NewSortedSet[uint]()
	t.collectFreeVars(vars)

	return vars
}

func (t Term) collectFreeVars(vars *set.SortedSet[uint]) {
	switch t.kind {
	case KindVar:
		vars.Insert(t.variable)
	case KindNot, KindAnd, KindOr:
		for _, c := range t.children {
			c.collectFreeVars(vars)
		}
	}
}

// compare imposes a total order on terms, used to keep And/Or children in a
// canonical sorted order so structurally-equal terms compare Equal
// regardless of construction order.
func compare(l, r Term) int {
	if l.kind != r.kind {
		if l.kind < r.kind {
			return -1
		}

		return 1
	}

	switch l.kind {
	case KindTrue, KindFalse:
		return 0
	case KindVar:
		switch {
		case l.variable < r.variable:
			return -1
		case l.variable > r.variable:
			return 1
		default:
			return 0
		}
	default:
		if len(l.children) != len(r.children) {
			if len(l.children) < len(r.children) {
				return -1
			}

			return 1
		}

		for i := range l.children {
			if c := compare(l.children[i], r.children[i]); c != 0 {
				return c
			}
		}

		return 0
	}
}

// String renders this term using mapping to name variables, following the
// same parameterised-printer idiom as the rest of this codebase's
// logic-valued types.
func (t Term) String(mapping func(uint) string) string {
	switch t.kind {
	case KindTrue:
		return "⊤"
	case KindFalse:
		return "⊥"
	case KindVar:
		return mapping(t.variable)
	case KindNot:
		return "!" + bracket(t.children[0], mapping)
	case KindAnd:
		return joinChildren(t.children, " & ", mapping)
	case KindOr:
		return joinChildren(t.children, " | ", mapping)
	default:
		panic(fmt.Sprintf("boolalg: unreachable term kind %d", t.kind))
	}
}

func bracket(t Term, mapping func(uint) string) string {
	if t.kind == KindAnd || t.kind == KindOr {
		return "(" + t.String(mapping) + ")"
	}

	return t.String(mapping)
}

func joinChildren(children []Term, sep string, mapping func(uint) string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = bracket(c, mapping)
	}

	return strings.Join(parts, sep)
}

// decimalMapping names variable i as "v<i>"; used by Term.Error for default
// formatting where no caller-supplied naming is available.
func decimalMapping(id uint) string {
	return fmt.Sprintf("v%d", id)
}

// Error renders this term with the default v<id> variable naming, so Term
// can be dropped directly into fmt.Errorf/logrus fields.
func (t Term) Error() string {
	return t.String(decimalMapping)
}
