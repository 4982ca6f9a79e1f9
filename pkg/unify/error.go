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

// ConflictKind distinguishes the two ways a unification call can fail.
type ConflictKind uint8

const (
	// MismatchedEffects means the equation system is provably unsolvable;
	// LHS and RHS witness the conflicting terms.
	MismatchedEffects ConflictKind = iota
	// TooComplex means SVE exceeded its elimination budget before it could
	// decide solvability. This is an implementation limit, not a proof
	// that the system is unsolvable.
	TooComplex
)

// String implements fmt.Stringer.
func (k ConflictKind) String() string {
	switch k {
	case MismatchedEffects:
		return "mismatched effects"
	case TooComplex:
		return "too complex"
	default:
		return "unknown conflict"
	}
}

// ConflictError is raised internally by a solver phase when the equation
// system being processed cannot be unified, or cannot be decided within
// budget. It carries its witness terms in interned (call-local) vocabulary;
// UnifyAll rewraps it as a CallerConflictError before returning to the client.
type ConflictError struct {
	Kind     ConflictKind
	LHS, RHS boolalg.Term
}

// NewConflict constructs a ConflictError.
func NewConflict(kind ConflictKind, lhs, rhs boolalg.Term) *ConflictError {
	return &ConflictError{Kind: kind, LHS: lhs, RHS: rhs}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s ~ %s", e.Kind, e.LHS.Error(), e.RHS.Error())
}

// CallerConflictError is the caller-vocabulary form of ConflictError:
// UnifyAll never returns a bare *ConflictError, since interned ids are not
// meaningful outside the call that produced them.
type CallerConflictError[S comparable] struct {
	Kind     ConflictKind
	LHS, RHS Type[S]
}

// Error implements the error interface.
func (e *CallerConflictError[S]) Error() string {
	return fmt.Sprintf("unify: %s", e.Kind)
}
