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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMkNot(t *testing.T) {
	assert.True(t, MkNot(True).IsFalse())
	assert.True(t, MkNot(False).IsTrue())
	assert.True(t, MkNot(MkNot(Var(0))).Equal(Var(0)), "double negation should cancel")
}

func TestMkAndIdentityAndAnnihilator(t *testing.T) {
	assert.True(t, MkAnd(True, Var(0)).Equal(Var(0)), "⊤ is the identity of And")
	assert.True(t, MkAnd(False, Var(0)).IsFalse(), "⊥ is the annihilator of And")
	assert.True(t, MkAnd().IsTrue(), "the empty And is ⊤")
}

func TestMkOrIdentityAndAnnihilator(t *testing.T) {
	assert.True(t, MkOr(False, Var(0)).Equal(Var(0)), "⊥ is the identity of Or")
	assert.True(t, MkOr(True, Var(0)).IsTrue(), "⊤ is the annihilator of Or")
	assert.True(t, MkOr().IsFalse(), "the empty Or is ⊥")
}

func TestMkAndComplementaryPair(t *testing.T) {
	term := MkAnd(Var(0), MkNot(Var(0)))
	assert.True(t, term.IsFalse(), "x & !x must collapse to ⊥")
}

func TestMkOrComplementaryPair(t *testing.T) {
	term := MkOr(Var(0), MkNot(Var(0)))
	assert.True(t, term.IsTrue(), "x | !x must collapse to ⊤")
}

func TestMkAndFlattensNested(t *testing.T) {
	inner := MkAnd(Var(0), Var(1))
	outer := MkAnd(inner, Var(2))
	assert.Equal(t, KindAnd, outer.Kind())
	assert.Len(t, outer.Children(), 3, "nested And must flatten one level")
}

func TestMkOrFlattensNested(t *testing.T) {
	inner := MkOr(Var(0), Var(1))
	outer := MkOr(inner, Var(2))
	assert.Equal(t, KindOr, outer.Kind())
	assert.Len(t, outer.Children(), 3, "nested Or must flatten one level")
}

func TestMkAndDeduplicates(t *testing.T) {
	term := MkAnd(Var(0), Var(1), Var(0))
	assert.Len(t, term.Children(), 2, "duplicate children must be removed")
}

func TestMkOrDeduplicates(t *testing.T) {
	term := MkOr(Var(0), Var(1), Var(0))
	assert.Len(t, term.Children(), 2, "duplicate children must be removed")
}

func TestAndOrCollapseSingleChild(t *testing.T) {
	assert.True(t, MkAnd(Var(0)).IsVar())
	assert.True(t, MkOr(Var(0)).IsVar())
}

func TestEqualIgnoresConstructionOrder(t *testing.T) {
	a := MkAnd(Var(0), Var(1))
	b := MkAnd(Var(1), Var(0))
	assert.True(t, a.Equal(b), "canonical form must be order-independent")
}

func TestFreeVars(t *testing.T) {
	term := MkOr(MkAnd(Var(0), Var(1)), MkNot(Var(2)))
	fv := term.FreeVars()

	assert.True(t, fv.Contains(0))
	assert.True(t, fv.Contains(1))
	assert.True(t, fv.Contains(2))
	assert.False(t, fv.Contains(3))
}

func TestStringRendersWithMapping(t *testing.T) {
	term := MkAnd(Var(0), MkNot(Var(1)))
	name := func(id uint) string {
		names := []string{"a", "b"}
		return names[id]
	}

	assert.Equal(t, "a & !b", term.String(name))
}

func TestSizeCountsNodes(t *testing.T) {
	assert.Equal(t, uint(1), True.Size())
	assert.Equal(t, uint(1), Var(0).Size())
	assert.Equal(t, uint(2), MkNot(Var(0)).Size())
}

// TestCanonicalizationIsIdempotent exercises the idempotence-of-
// canonicalization property: re-applying the smart constructors to an
// already-canonical term's children must reproduce an Equal term.
func TestCanonicalizationIsIdempotent(t *testing.T) {
	term := MkOr(MkAnd(Var(0), Var(1)), MkAnd(Var(2), MkNot(Var(3))))
	rebuilt := MkOr(term.Children()[0], term.Children()[1])

	assert.True(t, term.Equal(rebuilt))
}

func TestMkXorTruthTable(t *testing.T) {
	cases := []struct {
		name     string
		l, r     Term
		expected Term
	}{
		{"T^T", True, True, False},
		{"T^F", True, False, True},
		{"F^T", False, True, True},
		{"F^F", False, False, False},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, MkXor(c.l, c.r).Equal(c.expected))
		})
	}
}
