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

	"github.com/stretchr/testify/assert"
)

func TestTermTypeVars(t *testing.T) {
	term := Union(Var("a"), Intersection(Var("b"), Complement(Var("a"))))
	assert.ElementsMatch(t, []string{"a", "b", "a"}, term.TypeVars())
}

func TestTermEqual(t *testing.T) {
	a := Union(Var("x"), Var("y"))
	b := Union(Var("x"), Var("y"))
	c := Union(Var("y"), Var("x"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestTermString(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{Pure(), "⊤"},
		{Univ(), "⊥"},
		{Var("x"), "x"},
		{Complement(Var("x")), "!x"},
		{Union(Var("x"), Var("y")), "x | y"},
		{Intersection(Var("x"), Var("y")), "x & y"},
		{Intersection(Union(Var("x"), Var("y")), Var("z")), "(x | y) & z"},
		{Union(Intersection(Var("x"), Var("y")), Var("z")), "x & y | z"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.term.String())
	}
}

func TestFromTypeRoundTrips(t *testing.T) {
	term := Intersection(Complement(Var("a")), Union(Var("b"), Pure()))
	assert.True(t, term.Equal(FromType(term)))
}
