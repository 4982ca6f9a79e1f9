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
	log "github.com/sirupsen/logrus"

	"github.com/lacuna-lang/effectunify/pkg/util"
)

// Phase identifies a stage of the solver pipeline, passed to Hook and used
// in debug-level tracing.
type Phase uint8

const (
	// PhaseUnitPropagation is component D.
	PhaseUnitPropagation Phase = iota
	// PhaseVariablePropagation is component E.
	PhaseVariablePropagation
	// PhaseTrivialAssignment is component F.
	PhaseTrivialAssignment
	// PhaseSVE is component G.
	PhaseSVE
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseUnitPropagation:
		return "unit-propagation"
	case PhaseVariablePropagation:
		return "variable-propagation"
	case PhaseTrivialAssignment:
		return "trivial-assignment"
	case PhaseSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Hook observes the solver's progress after every phase completes. A
// no-op default hook costs nothing; implementations that need tracing or
// visualisation (e.g. pkg/cmd's trace subcommand) supply their own via
// Options.
type Hook interface {
	OnPhaseComplete(phase Phase, equations []Equation, substitution Substitution)
}

type noopHook struct{}

func (noopHook) OnPhaseComplete(Phase, []Equation, Substitution) {}

// Options configures a single UnifyAll call.
type Options struct {
	// MaxEliminationDepth bounds SVE's recursive elimination count before
	// TooComplex is raised. Zero selects DefaultMaxEliminationDepth.
	MaxEliminationDepth int
	// Hook, if non-nil, is notified after every phase completes.
	Hook Hook
}

func (o Options) hook() Hook {
	if o.Hook == nil {
		return noopHook{}
	}

	return o.Hook
}

func (o Options) budget() *Budget {
	if o.MaxEliminationDepth <= 0 {
		return NewBudget(DefaultMaxEliminationDepth)
	}

	return NewBudget(o.MaxEliminationDepth)
}

// UnifyAll is the package's sole entry point. It solves pairs under the
// given rigidity classification, running phases D through G in strict
// sequence and composing their substitutions, and returns either a
// most-general substitution in caller vocabulary or a conflict.
func UnifyAll[S comparable](pairs []Pair[S], rigidity RigidityEnv[S], opts Options) (CallerSubstitution[S], error) {
	if len(pairs) == 0 {
		return newCallerSubstitution[S](), nil
	}

	stats := util.NewPerfStats()
	hook := opts.hook()

	in := newInterner[S]()
	for _, p := range pairs {
		in.observe(p.LHS)
		in.observe(p.RHS)
	}

	rigid := in.rigidSet(rigidity)

	eqs := make([]Equation, 0, len(pairs))
	for _, p := range pairs {
		eqs = append(eqs, NewEquation(in.translate(p.LHS), in.translate(p.RHS)))
	}

	// Phase D: Unit Propagation.
	eqs, sigma, err := UnitPropagation(eqs, NewSubstitution(), rigid)
	if err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	hook.OnPhaseComplete(PhaseUnitPropagation, eqs, sigma)
	log.Debugf("unify: after unit propagation: %d equation(s), %d binding(s)", len(eqs), sigma.Len())

	if eqs, err = SimplifyAndCheck(eqs, rigid); err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	// Phase E: Variable Propagation.
	eqs, sigmaE, err := VariablePropagation(eqs, NewSubstitution(), rigid)
	if err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	sigma = sigmaE.Compose(sigma)
	hook.OnPhaseComplete(PhaseVariablePropagation, eqs, sigma)
	log.Debugf("unify: after variable propagation: %d equation(s), %d binding(s)", len(eqs), sigma.Len())

	if eqs, err = SimplifyAndCheck(eqs, rigid); err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	// Phase F: Trivial Assignment.
	eqs, sigmaF, err := TrivialAssignment(eqs, NewSubstitution(), rigid)
	if err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	sigma = sigmaF.Compose(sigma)
	hook.OnPhaseComplete(PhaseTrivialAssignment, eqs, sigma)
	log.Debugf("unify: after trivial assignment: %d equation(s), %d binding(s)", len(eqs), sigma.Len())

	if eqs, err = SimplifyAndCheck(eqs, rigid); err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	// Phase G: Successive Variable Elimination, over whatever residue the
	// cheap phases above could not discharge.
	sigmaG, err := SuccessiveVariableElimination(eqs, NewSubstitution(), rigid, opts.budget())
	if err != nil {
		return CallerSubstitution[S]{}, in.wrapError(err)
	}

	sigma = sigmaG.Compose(sigma)
	hook.OnPhaseComplete(PhaseSVE, nil, sigma)
	log.Debugf("unify: after sve: %d binding(s)", sigma.Len())

	stats.Log("unify: UnifyAll")

	return in.toCaller(sigma), nil
}
