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

// Package surface provides a concrete textual front-end for pkg/unify: a
// small effect-equation grammar, a recursive-descent parser, and a
// unify.Type[string] implementation (Term) that exercises the caller
// contract spec.md §6 leaves abstract.
package surface

import (
	"fmt"
	"strings"

	"github.com/lacuna-lang/effectunify/pkg/unify"
)

// Term is a caller-side effect type parsed from (or printed to) surface
// syntax. It satisfies unify.Type[string].
type Term struct {
	kind    unify.Kind
	sym     string
	operand *Term
	left    *Term
	right   *Term
}

// Pure constructs the identity element of union (⊤).
func Pure() Term { return Term{kind: unify.KindPure} }

// Univ constructs the identity element of intersection (⊥).
func Univ() Term { return Term{kind: unify.KindUniv} }

// Var constructs a variable with the given name.
func Var(name string) Term { return Term{kind: unify.KindVar, sym: name} }

// Complement constructs the complement of t.
func Complement(t Term) Term { return Term{kind: unify.KindComplement, operand: &t} }

// Union constructs the union of l and r.
func Union(l, r Term) Term { return Term{kind: unify.KindUnion, left: &l, right: &r} }

// Intersection constructs the intersection of l and r.
func Intersection(l, r Term) Term { return Term{kind: unify.KindIntersection, left: &l, right: &r} }

// Kind implements unify.Type.
func (t Term) Kind() unify.Kind { return t.kind }

// Symbol implements unify.Type. Valid iff Kind() == KindVar.
func (t Term) Symbol() string { return t.sym }

// Operand implements unify.Type. Valid iff Kind() == KindComplement.
func (t Term) Operand() unify.Type[string] { return *t.operand }

// Left implements unify.Type. Valid iff Kind() is KindUnion/KindIntersection.
func (t Term) Left() unify.Type[string] { return *t.left }

// Right implements unify.Type. Valid iff Kind() is KindUnion/KindIntersection.
func (t Term) Right() unify.Type[string] { return *t.right }

// TypeVars implements unify.Type.
func (t Term) TypeVars() []string {
	switch t.kind {
	case unify.KindVar:
		return []string{t.sym}
	case unify.KindComplement:
		return t.operand.TypeVars()
	case unify.KindUnion, unify.KindIntersection:
		vars := append([]string{}, t.left.TypeVars()...)
		return append(vars, t.right.TypeVars()...)
	default:
		return nil
	}
}

// Equal reports whether t and o denote the same surface expression (not
// whether they are semantically equivalent -- that question belongs to
// pkg/unify, not to this package).
func (t Term) Equal(o Term) bool {
	if t.kind != o.kind {
		return false
	}

	switch t.kind {
	case unify.KindPure, unify.KindUniv:
		return true
	case unify.KindVar:
		return t.sym == o.sym
	case unify.KindComplement:
		return t.operand.Equal(*o.operand)
	case unify.KindUnion, unify.KindIntersection:
		return t.left.Equal(*o.left) && t.right.Equal(*o.right)
	default:
		return false
	}
}

// String renders t in the same surface syntax the parser accepts.
func (t Term) String() string {
	var sb strings.Builder
	t.write(&sb, 0)

	return sb.String()
}

// precedence levels, used to decide when String needs to parenthesise a
// child: union binds loosest, intersection tighter, complement tightest.
const (
	precUnion = 1
	precInter = 2
	precAtom  = 3
)

func (t Term) prec() int {
	switch t.kind {
	case unify.KindUnion:
		return precUnion
	case unify.KindIntersection:
		return precInter
	default:
		return precAtom
	}
}

func (t Term) write(sb *strings.Builder, minPrec int) {
	if t.prec() < minPrec {
		sb.WriteByte('(')
		t.write(sb, 0)
		sb.WriteByte(')')

		return
	}

	switch t.kind {
	case unify.KindPure:
		sb.WriteString("⊤")
	case unify.KindUniv:
		sb.WriteString("⊥")
	case unify.KindVar:
		sb.WriteString(t.sym)
	case unify.KindComplement:
		sb.WriteString("!")
		t.operand.write(sb, precAtom)
	case unify.KindUnion:
		t.left.write(sb, precUnion)
		sb.WriteString(" | ")
		t.right.write(sb, precUnion+1)
	case unify.KindIntersection:
		t.left.write(sb, precInter)
		sb.WriteString(" & ")
		t.right.write(sb, precInter+1)
	default:
		panic(fmt.Sprintf("surface: unreachable term kind %d", t.kind))
	}
}

// FromType renders any unify.Type[string] (including the bindings UnifyAll
// returns) as a Term, so that solved substitutions and parsed equations
// print through the same String() implementation.
func FromType(t unify.Type[string]) Term {
	switch t.Kind() {
	case unify.KindPure:
		return Pure()
	case unify.KindUniv:
		return Univ()
	case unify.KindVar:
		return Var(t.Symbol())
	case unify.KindComplement:
		return Complement(FromType(t.Operand()))
	case unify.KindUnion:
		return Union(FromType(t.Left()), FromType(t.Right()))
	case unify.KindIntersection:
		return Intersection(FromType(t.Left()), FromType(t.Right()))
	default:
		panic(fmt.Sprintf("surface: unreachable type kind %d", t.Kind()))
	}
}
