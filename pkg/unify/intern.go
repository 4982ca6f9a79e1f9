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

// interner assigns each caller-side variable symbol a dense id for the
// duration of one UnifyAll call. Ids never alias across calls: an
// interner is created fresh by UnifyAll and discarded with it.
type interner[S comparable] struct {
	ids     map[S]uint
	symbols []S
}

func newInterner[S comparable]() *interner[S] {
	return &interner[S]{ids: map[S]uint{}}
}

func (n *interner[S]) id(sym S) uint {
	if id, ok := n.ids[sym]; ok {
		return id
	}

	id := uint(len(n.symbols))
	n.ids[sym] = id
	n.symbols = append(n.symbols, sym)

	return id
}

// observe walks a Type's variables, assigning each a dense id, ahead of
// any translation -- bijection construction and term translation are kept
// as separate steps, matching the component design's ordering.
func (n *interner[S]) observe(t Type[S]) {
	for _, sym := range t.TypeVars() {
		n.id(sym)
	}
}

// rigidSet classifies every observed symbol via env, building the R set
// consulted at every binding site across all four phases.
func (n *interner[S]) rigidSet(env RigidityEnv[S]) *set.SortedSet[uint] {
	rigid := set.NewSortedSet[uint]()

	for i, sym := range n.symbols {
		if env != nil && env.Get(sym) == Rigid {
			rigid.Insert(uint(i))
		}
	}

	return rigid
}

// translate walks a caller Type into a boolalg.Term following the fixed
// contract: Pure/Univ map to True/False, Complement maps to Not, and
// Union/Intersection map to And/Or (swapped, not mirrored, because effects
// use the dual lattice where Pure/True is the identity of conjunction). A
// shape translate does not recognise is a programmer error in the
// caller's own Type implementation, not a solver failure, and is reported
// as an internal-compiler exception via panic.
func (n *interner[S]) translate(t Type[S]) boolalg.Term {
	switch t.Kind() {
	case KindPure:
		return boolalg.True
	case KindUniv:
		return boolalg.False
	case KindVar:
		return boolalg.Var(n.id(t.Symbol()))
	case KindComplement:
		return boolalg.MkNot(n.translate(t.Operand()))
	case KindUnion:
		return boolalg.MkAnd(n.translate(t.Left()), n.translate(t.Right()))
	case KindIntersection:
		return boolalg.MkOr(n.translate(t.Left()), n.translate(t.Right()))
	default:
		panic(fmt.Sprintf("unify: unrecognised type shape (kind %d): internal-compiler exception", t.Kind()))
	}
}

func (n *interner[S]) toSymbol(id uint) S {
	return n.symbols[id]
}

// toCaller maps every id the interner assigned that sigma binds back into
// caller vocabulary.
func (n *interner[S]) toCaller(sigma Substitution) CallerSubstitution[S] {
	caller := newCallerSubstitution[S]()

	for id := range n.symbols {
		t, ok := sigma.Lookup(uint(id))
		if !ok {
			continue
		}

		caller.bindings[n.toSymbol(uint(id))] = boundType[S]{term: t, toSym: n.toSymbol}
	}

	return caller
}

// wrapError rewraps an internal *ConflictError's interned witness terms
// into caller vocabulary, per the component design's "mapped back to
// caller types for diagnostics". Any other error (e.g. a panic recovered
// elsewhere) passes through unchanged.
func (n *interner[S]) wrapError(err error) error {
	conflict, ok := err.(*ConflictError)
	if !ok {
		return err
	}

	return &CallerConflictError[S]{
		Kind: conflict.Kind,
		LHS:  boundType[S]{term: conflict.LHS, toSym: n.toSymbol},
		RHS:  boundType[S]{term: conflict.RHS, toSym: n.toSymbol},
	}
}
