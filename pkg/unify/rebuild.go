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
)

// boundType is the Type[S] the driver hands back to the caller for each
// solved binding: a thin wrapper translating a boolalg.Term back into the
// caller's Pure/Univ/Var/Complement/Union/Intersection vocabulary through
// the inverse of the interning map. Because boolalg.And/Or are flat n-ary
// nodes but the caller's Union/Intersection are binary, a node with more
// than two children is re-associated on demand: Left is its first child,
// Right is the same connective applied to the rest.
type boundType[S comparable] struct {
	term  boolalg.Term
	toSym func(uint) S
}

// Kind implements Type.
func (b boundType[S]) Kind() Kind {
	switch b.term.Kind() {
	case boolalg.KindTrue:
		return KindPure
	case boolalg.KindFalse:
		return KindUniv
	case boolalg.KindVar:
		return KindVar
	case boolalg.KindNot:
		return KindComplement
	case boolalg.KindAnd:
		// The dual lattice: boolalg's And is the caller's Union.
		return KindUnion
	case boolalg.KindOr:
		// The dual lattice: boolalg's Or is the caller's Intersection.
		return KindIntersection
	default:
		panic(fmt.Sprintf("unify: unreachable term kind %d", b.term.Kind()))
	}
}

// Symbol implements Type. Valid iff Kind() == KindVar.
func (b boundType[S]) Symbol() S {
	return b.toSym(b.term.VarID())
}

// Operand implements Type. Valid iff Kind() == KindComplement.
func (b boundType[S]) Operand() Type[S] {
	return boundType[S]{term: b.term.Children()[0], toSym: b.toSym}
}

// Left implements Type. Valid iff Kind() == KindUnion/KindIntersection.
func (b boundType[S]) Left() Type[S] {
	return boundType[S]{term: b.term.Children()[0], toSym: b.toSym}
}

// Right implements Type. Valid iff Kind() == KindUnion/KindIntersection.
func (b boundType[S]) Right() Type[S] {
	children := b.term.Children()
	if len(children) == 2 {
		return boundType[S]{term: children[1], toSym: b.toSym}
	}

	rest := children[1:]

	if b.term.Kind() == boolalg.KindAnd {
		return boundType[S]{term: boolalg.MkAnd(rest...), toSym: b.toSym}
	}

	return boundType[S]{term: boolalg.MkOr(rest...), toSym: b.toSym}
}

// TypeVars implements Type.
func (b boundType[S]) TypeVars() []S {
	fv := b.term.FreeVars()
	out := make([]S, 0, len(*fv))

	it := fv.Iter()
	for it.HasNext() {
		out = append(out, b.toSym(it.Next()))
	}

	return out
}
