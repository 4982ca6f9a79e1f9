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
	"fmt"

	"github.com/lacuna-lang/effectunify/pkg/boolalg"
	"github.com/lacuna-lang/effectunify/pkg/util/collection/set"
)

// Substitution is a finite mapping from (interned) variable id to term.
// Keys are always flexible ids and values are always canonical. Extended
// rejects a value that contains its own key; the bindings SVE builds
// through SingletonSubstitution and Merge may mention their own key, as the
// parameter of the parametric solution. Substitution values are immutable;
// every operation returns a new value.
type Substitution struct {
	bindings map[uint]boolalg.Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() Substitution {
	return Substitution{bindings: map[uint]boolalg.Term{}}
}

// SingletonSubstitution returns a substitution binding exactly x to t.
func SingletonSubstitution(x uint, t boolalg.Term) Substitution {
	return Substitution{bindings: map[uint]boolalg.Term{x: t}}
}

// IsEmpty reports whether this substitution binds nothing.
func (s Substitution) IsEmpty() bool {
	return len(s.bindings) == 0
}

// Len returns the number of bindings in this substitution.
func (s Substitution) Len() int {
	return len(s.bindings)
}

// Lookup returns the term bound to x, if any.
func (s Substitution) Lookup(x uint) (boolalg.Term, bool) {
	t, ok := s.bindings[x]
	return t, ok
}

// Domain returns the set of bound variable ids.
func (s Substitution) Domain() *set.SortedSet[uint] {
	dom := set.NewSortedSet[uint]()
	for x := range s.bindings {
		dom.Insert(x)
	}

	return dom
}

// Apply performs the structural walk replacing every bound Var(x) by m[x],
// rebuilding connectives through the smart constructors so the result
// stays canonical. Unchanged subterms are returned unmodified (terms are
// immutable, so sharing is always safe).
func (s Substitution) Apply(t boolalg.Term) boolalg.Term {
	switch t.Kind() {
	case boolalg.KindTrue, boolalg.KindFalse:
		return t
	case boolalg.KindVar:
		if bound, ok := s.bindings[t.VarID()]; ok {
			return bound
		}

		return t
	case boolalg.KindNot:
		return boolalg.MkNot(s.Apply(t.Children()[0]))
	case boolalg.KindAnd:
		return boolalg.MkAnd(s.applyAll(t.Children())...)
	case boolalg.KindOr:
		return boolalg.MkOr(s.applyAll(t.Children())...)
	default:
		panic(fmt.Sprintf("unify: unreachable term kind %d", t.Kind()))
	}
}

func (s Substitution) applyAll(ts []boolalg.Term) []boolalg.Term {
	out := make([]boolalg.Term, len(ts))
	for i, t := range ts {
		out[i] = s.Apply(t)
	}

	return out
}

// ApplyEquation applies this substitution to both sides of e, then
// re-normalises the orientation of the result.
func (s Substitution) ApplyEquation(e Equation) Equation {
	return NewEquation(s.Apply(e.LHS), s.Apply(e.RHS))
}

// ApplyAll maps ApplyEquation across a list of equations.
func (s Substitution) ApplyAll(eqs []Equation) []Equation {
	out := make([]Equation, len(eqs))
	for i, e := range eqs {
		out[i] = s.ApplyEquation(e)
	}

	return out
}

// Extended returns a new substitution with x |-> t added. Panics if x is
// already bound or if x occurs free in t -- both are caller-checked
// invariants per the component design, not recoverable error conditions.
func (s Substitution) Extended(x uint, t boolalg.Term) Substitution {
	if _, ok := s.bindings[x]; ok {
		panic(fmt.Sprintf("unify: variable %d is already bound", x))
	}

	if t.FreeVars().Contains(x) {
		panic(fmt.Sprintf("unify: occurs-check violated binding variable %d", x))
	}

	n := make(map[uint]boolalg.Term, len(s.bindings)+1)
	for k, v := range s.bindings {
		n[k] = v
	}

	n[x] = t

	return Substitution{bindings: n}
}

// Compose implements left-biased composition s1 @@ s2: apply s2 first,
// then s1. The result maps x -> s1(s2[x]) for every x in s2, plus every
// binding of s1 whose key is not in s2. If either side is empty, the other
// is returned unchanged.
func (s1 Substitution) Compose(s2 Substitution) Substitution { //nolint:revive
	if s1.IsEmpty() {
		return s2
	}

	if s2.IsEmpty() {
		return s1
	}

	n := make(map[uint]boolalg.Term, len(s1.bindings)+len(s2.bindings))

	for x, t := range s2.bindings {
		n[x] = s1.Apply(t)
	}

	for x, t := range s1.bindings {
		if _, ok := s2.bindings[x]; !ok {
			n[x] = t
		}
	}

	return Substitution{bindings: n}
}

// Merge implements disjoint merge s1 ++ s2. Panics if the two domains
// overlap, per the component design's stated precondition.
func (s1 Substitution) Merge(s2 Substitution) Substitution { //nolint:revive
	n := make(map[uint]boolalg.Term, len(s1.bindings)+len(s2.bindings))

	for x, t := range s1.bindings {
		if _, ok := s2.bindings[x]; ok {
			panic(fmt.Sprintf("unify: disjoint merge precondition violated at variable %d", x))
		}

		n[x] = t
	}

	for x, t := range s2.bindings {
		n[x] = t
	}

	return Substitution{bindings: n}
}

// extendOrConflict extends sigma with x |-> t, unless x is already bound:
// if the existing binding is structurally equal to t the rebinding is a
// harmless no-op (the same equation observed twice within one pass), and
// otherwise it is a genuine conflict.
func extendOrConflict(sigma Substitution, x uint, t boolalg.Term) (Substitution, error) {
	if existing, ok := sigma.Lookup(x); ok {
		if existing.Equal(t) {
			return sigma, nil
		}

		return Substitution{}, NewConflict(MismatchedEffects, existing, t)
	}

	return sigma.Extended(x, t), nil
}
