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
package surface

import (
	"testing"

	"github.com/lacuna-lang/effectunify/pkg/unify"
	"github.com/lacuna-lang/effectunify/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, text string) Document {
	t.Helper()

	srcfile := source.NewSourceFile("test.eqn", []byte(text))
	doc, errs := Parse(srcfile)
	assert.Empty(t, errs)

	return doc
}

func TestParseSimpleEquation(t *testing.T) {
	doc := parse(t, "x ~ ⊤\n")

	assert.Len(t, doc.Equations, 1)
	assert.True(t, doc.Equations[0].LHS.(Term).Equal(Var("x")))
	assert.True(t, doc.Equations[0].RHS.(Term).Equal(Pure()))
}

func TestParseSkipsBlankLinesAndComments(t *testing.T) {
	doc := parse(t, "\n# a comment\nx ~ T\n\n# another\ny ~ F\n")
	assert.Len(t, doc.Equations, 2)
}

func TestParsePrecedence(t *testing.T) {
	doc := parse(t, "a & b | c ~ (a | b) & c\n")

	want := Union(Intersection(Var("a"), Var("b")), Var("c"))
	assert.True(t, doc.Equations[0].LHS.(Term).Equal(want))

	want2 := Intersection(Union(Var("a"), Var("b")), Var("c"))
	assert.True(t, doc.Equations[0].RHS.(Term).Equal(want2))
}

func TestParseComplementAndUnicode(t *testing.T) {
	doc := parse(t, "!x ~ ¬y ∧ z\n")

	assert.True(t, doc.Equations[0].LHS.(Term).Equal(Complement(Var("x"))))
	assert.True(t, doc.Equations[0].RHS.(Term).Equal(Intersection(Complement(Var("y")), Var("z"))))
}

func TestParseRigidMarker(t *testing.T) {
	doc := parse(t, "$r ~ f\n")

	assert.Equal(t, unify.Rigid, doc.Rigidity.Get("r"))
	assert.Equal(t, unify.Flexible, doc.Rigidity.Get("f"))
}

func TestParseMultipleEquationsAndRigidityIsGlobal(t *testing.T) {
	doc := parse(t, "$r ~ T\nx ~ r\n")

	assert.Len(t, doc.Equations, 2)
	assert.Equal(t, unify.Rigid, doc.Rigidity.Get("r"))
}

func TestParseSyntaxErrorOnUnknownText(t *testing.T) {
	srcfile := source.NewSourceFile("test.eqn", []byte("x ~ @\n"))
	_, errs := Parse(srcfile)
	assert.NotEmpty(t, errs)
}

func TestParseSyntaxErrorOnMissingTilde(t *testing.T) {
	srcfile := source.NewSourceFile("test.eqn", []byte("x y\n"))
	_, errs := Parse(srcfile)
	assert.NotEmpty(t, errs)
}

func TestParseEmptyFileHasNoEquations(t *testing.T) {
	doc := parse(t, "")
	assert.Empty(t, doc.Equations)
}

func TestSolveEndToEnd(t *testing.T) {
	doc := parse(t, "x ~ T\ny ~ x\n")

	solution, err := Solve(doc, unify.Options{})
	assert.NoError(t, err)

	bound, ok := solution["x"]
	assert.True(t, ok)
	assert.True(t, bound.Equal(Pure()))
}
