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

import "fmt"

// Eval evaluates this term to a truth value under the given variable
// assignment. Used by the unifier's brute-force base-case satisfiability
// check, which has no other way to decide a formula over a handful of
// remaining rigid variables.
func (t Term) Eval(assign func(uint) bool) bool {
	switch t.kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindVar:
		return assign(t.variable)
	case KindNot:
		return !t.children[0].Eval(assign)
	case KindAnd:
		for _, c := range t.children {
			if !c.Eval(assign) {
				return false
			}
		}

		return true
	case KindOr:
		for _, c := range t.children {
			if c.Eval(assign) {
				return true
			}
		}

		return false
	default:
		panic(fmt.Sprintf("boolalg: unreachable term kind %d", t.kind))
	}
}
