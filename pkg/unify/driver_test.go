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
	"testing"

	"github.com/stretchr/testify/assert"
)

// node is a minimal Type[string] implementation used only by this
// package's own tests, standing in for a real caller's effect-type AST.
type node struct {
	kind    Kind
	sym     string
	operand Type[string]
	left    Type[string]
	right   Type[string]
}

func (n *node) Kind() Kind       { return n.kind }
func (n *node) Symbol() string   { return n.sym }
func (n *node) Operand() Type[string] { return n.operand }
func (n *node) Left() Type[string]    { return n.left }
func (n *node) Right() Type[string]   { return n.right }

func (n *node) TypeVars() []string {
	switch n.kind {
	case KindVar:
		return []string{n.sym}
	case KindComplement:
		return n.operand.TypeVars()
	case KindUnion, KindIntersection:
		return append(append([]string{}, n.left.TypeVars()...), n.right.TypeVars()...)
	default:
		return nil
	}
}

func pureT() Type[string]               { return &node{kind: KindPure} }
func univT() Type[string]               { return &node{kind: KindUniv} }
func varT(sym string) Type[string]      { return &node{kind: KindVar, sym: sym} }
func notT(o Type[string]) Type[string]  { return &node{kind: KindComplement, operand: o} }
func unionT(l, r Type[string]) Type[string] { return &node{kind: KindUnion, left: l, right: r} }
func interT(l, r Type[string]) Type[string] { return &node{kind: KindIntersection, left: l, right: r} }

// rigidityMap is a RigidityEnv[string] backed by a plain map.
type rigidityMap map[string]Rigidity

func (m rigidityMap) Get(sym string) Rigidity {
	if r, ok := m[sym]; ok {
		return r
	}

	return Flexible
}

func substType(t Type[string], sub CallerSubstitution[string]) Type[string] {
	switch t.Kind() {
	case KindPure, KindUniv:
		return t
	case KindVar:
		// A single substitution step, mirroring Substitution.Apply:
		// the bound value is returned as-is, not recursively re-substituted.
		// SVE's own bindings may legitimately mention their own key (the
		// classical parametric mgu form), which would recurse forever if
		// expanded eagerly.
		if bound, ok := sub.Lookup(t.Symbol()); ok {
			return bound
		}

		return t
	case KindComplement:
		return notT(substType(t.Operand(), sub))
	case KindUnion:
		return unionT(substType(t.Left(), sub), substType(t.Right(), sub))
	case KindIntersection:
		return interT(substType(t.Left(), sub), substType(t.Right(), sub))
	default:
		panic("unreachable")
	}
}

func evalType(t Type[string], assign map[string]bool) bool {
	switch t.Kind() {
	case KindPure:
		return true
	case KindUniv:
		return false
	case KindVar:
		return assign[t.Symbol()]
	case KindComplement:
		return !evalType(t.Operand(), assign)
	case KindUnion:
		return evalType(t.Left(), assign) && evalType(t.Right(), assign)
	case KindIntersection:
		return evalType(t.Left(), assign) || evalType(t.Right(), assign)
	default:
		panic("unreachable")
	}
}

func uniqueVars(vars []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(vars))

	for _, v := range vars {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}

func allAssignments(vars []string) []map[string]bool {
	if len(vars) == 0 {
		return []map[string]bool{{}}
	}

	out := []map[string]bool{{}}

	for _, v := range vars {
		var next []map[string]bool

		for _, a := range out {
			for _, b := range []bool{false, true} {
				na := make(map[string]bool, len(a)+1)
				for k, v := range a {
					na[k] = v
				}

				na[v] = b
				next = append(next, na)
			}
		}

		out = next
	}

	return out
}

// assertUnifies checks the soundness property directly: after applying
// sub, lhs and rhs must be equivalent Boolean functions over whatever
// variables remain free.
func assertUnifies(t *testing.T, lhs, rhs Type[string], sub CallerSubstitution[string]) {
	t.Helper()

	l := substType(lhs, sub)
	r := substType(rhs, sub)
	vars := uniqueVars(append(l.TypeVars(), r.TypeVars()...))

	for _, assign := range allAssignments(vars) {
		assert.Equal(t, evalType(l, assign), evalType(r, assign),
			"substitution must equate both sides under assignment %v", assign)
	}
}

func TestUnifyAllEmptyInput(t *testing.T) {
	sub, err := UnifyAll[string](nil, rigidityMap{}, Options{})
	assert.NoError(t, err)
	assert.True(t, sub.IsEmpty())
}

func TestUnifyAllTrivial(t *testing.T) {
	pairs := []Pair[string]{{LHS: pureT(), RHS: pureT()}}

	sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.NoError(t, err)
	assert.True(t, sub.IsEmpty())
}

func TestUnifyAllUnitPropagation(t *testing.T) {
	pairs := []Pair[string]{
		{LHS: varT("1"), RHS: pureT()},
		{LHS: varT("2"), RHS: pureT()},
		{LHS: varT("3"), RHS: unionT(varT("1"), varT("2"))},
	}

	sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.NoError(t, err)

	for _, sym := range []string{"1", "2", "3"} {
		bound, ok := sub.Lookup(sym)
		assert.True(t, ok, "expected %s to be bound", sym)
		assert.Equal(t, KindPure, bound.Kind())
	}
}

func TestUnifyAllVariableChain(t *testing.T) {
	pairs := []Pair[string]{
		{LHS: varT("1"), RHS: varT("2")},
		{LHS: varT("2"), RHS: varT("3")},
		{LHS: varT("3"), RHS: pureT()},
	}

	sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.NoError(t, err)

	for _, p := range pairs {
		assertUnifies(t, p.LHS, p.RHS, sub)
	}
}

func TestUnifyAllTrivialAssignment(t *testing.T) {
	pairs := []Pair[string]{
		{LHS: varT("1"), RHS: unionT(varT("2"), varT("3"))},
	}

	sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.NoError(t, err)

	bound, ok := sub.Lookup("1")
	assert.True(t, ok)
	assert.Equal(t, KindUnion, bound.Kind())
	assertUnifies(t, pairs[0].LHS, pairs[0].RHS, sub)
}

func TestUnifyAllConflict(t *testing.T) {
	pairs := []Pair[string]{{LHS: pureT(), RHS: univT()}}

	_, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.Error(t, err)

	var conflict *CallerConflictError[string]
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, MismatchedEffects, conflict.Kind)
}

func TestUnifyAllRequiresSVE(t *testing.T) {
	pairs := []Pair[string]{
		{LHS: interT(varT("1"), varT("2")), RHS: pureT()},
	}

	sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
	assert.NoError(t, err)
	assertUnifies(t, pairs[0].LHS, pairs[0].RHS, sub)
}

func TestUnifyAllRigidVariablesNeverBound(t *testing.T) {
	pairs := []Pair[string]{{LHS: varT("r"), RHS: varT("f")}}
	rigid := rigidityMap{"r": Rigid}

	sub, err := UnifyAll(pairs, rigid, Options{})
	assert.NoError(t, err)

	_, rigidBound := sub.Lookup("r")
	assert.False(t, rigidBound, "a rigid variable must never appear in the returned substitution")

	bound, ok := sub.Lookup("f")
	assert.True(t, ok)
	assert.Equal(t, KindVar, bound.Kind())
	assert.Equal(t, "r", bound.Symbol())
}

func TestUnifyAllDistinctRigidVariablesConflict(t *testing.T) {
	pairs := []Pair[string]{{LHS: varT("r1"), RHS: varT("r2")}}
	rigid := rigidityMap{"r1": Rigid, "r2": Rigid}

	_, err := UnifyAll(pairs, rigid, Options{})
	assert.Error(t, err)
}

// TestUnifyAllSoundnessAcrossSmallSystems checks soundness over a fixed
// set of small equation systems of different shapes, by exhaustive
// truth-table comparison of both sides after substitution.
func TestUnifyAllSoundnessAcrossSmallSystems(t *testing.T) {
	systems := [][]Pair[string]{
		{{LHS: varT("a"), RHS: interT(varT("b"), notT(varT("c")))}},
		{{LHS: varT("a"), RHS: pureT()}, {LHS: varT("b"), RHS: varT("a")}},
		{{LHS: interT(varT("x"), varT("y")), RHS: univT()}},
		{{LHS: unionT(varT("x"), notT(varT("x"))), RHS: pureT()}},
	}

	for _, pairs := range systems {
		sub, err := UnifyAll(pairs, rigidityMap{}, Options{})
		if err != nil {
			continue // an unsatisfiable system has nothing to check soundness against
		}

		for _, p := range pairs {
			assertUnifies(t, p.LHS, p.RHS, sub)
		}
	}
}
