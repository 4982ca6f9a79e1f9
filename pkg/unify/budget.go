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

import "github.com/lacuna-lang/effectunify/pkg/boolalg"

// DefaultMaxEliminationDepth is a generous ceiling on the number of
// recursive SVE eliminations a single UnifyAll call may perform before
// TooComplex is raised. Ordinary inputs -- even large ones -- never come
// close, since the staged phases shrink the residue SVE actually sees.
const DefaultMaxEliminationDepth = 4096

// Budget bounds the total number of SVE recursive eliminations performed
// during a single solve, the implementation-defined limit spec's TooComplex
// error kind exists to surface.
type Budget struct {
	remaining int
}

// NewBudget constructs a Budget with the given elimination ceiling.
func NewBudget(max int) *Budget {
	return &Budget{remaining: max}
}

// Tick accounts for one SVE elimination step against the query term
// currently being decided, returning TooComplex once the budget is
// exhausted.
func (b *Budget) Tick(q boolalg.Term) error {
	if b.remaining <= 0 {
		return NewConflict(TooComplex, q, boolalg.False)
	}

	b.remaining--

	return nil
}
