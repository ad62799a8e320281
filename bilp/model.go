// Copyright 2025 The sudokusat Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bilp offers an API to build 0-1 linear feasibility models.
//
// The `Model` struct accumulates binary variables and cardinality
// constraints over them. The `BoolVar` and `Constraint` structs are
// references to specific variables and constraints in the model and
// provide helpful methods for interacting with them. A populated model
// is handed to a `Solver`, which decides feasibility and, on success,
// supplies a concrete 0/1 value for every variable.
package bilp

import (
	"errors"
	"fmt"

	log "github.com/golang/glog"
)

// ErrMixedModels holds the error when elements added to a model are different.
var ErrMixedModels = errors.New("elements are not part of the same model")

type (
	// VarIndex is the index of a variable in the model.
	VarIndex int32
	// ConstrIndex is the index of a constraint in the model.
	ConstrIndex int32
)

// BoolVar is a reference to a binary variable in the model.
type BoolVar struct {
	ind VarIndex
	mb  *Model
}

// Name returns the name of the variable.
func (b BoolVar) Name() string {
	return b.mb.varNames[b.ind]
}

// Index returns the index of the variable.
func (b BoolVar) Index() VarIndex {
	return b.ind
}

// WithName sets the name of the variable.
func (b BoolVar) WithName(s string) BoolVar {
	b.mb.varNames[b.ind] = s
	return b
}

// constraintKind distinguishes the cardinality families the model supports.
type constraintKind int8

const (
	exactlyOne constraintKind = iota
	atLeastOne
	atMostOne
)

type constraintData struct {
	kind constraintKind
	vars []VarIndex
	name string
}

// Constraint is a reference to a constraint in the model.
type Constraint struct {
	ind ConstrIndex
	mb  *Model
}

// Name returns the name of the constraint.
func (c Constraint) Name() string {
	return c.mb.constraints[c.ind].name
}

// Index returns the index of the constraint.
func (c Constraint) Index() ConstrIndex {
	return c.ind
}

// WithName sets the name of the constraint.
func (c Constraint) WithName(s string) Constraint {
	c.mb.constraints[c.ind].name = s
	return c
}

// Model is a container for binary variables and the linear cardinality
// constraints over them. It carries no solve state; it may be handed to
// any number of Solvers, which treat it as read-only.
type Model struct {
	numVars     int
	varNames    []string
	constraints []constraintData
	// The first and only the first error is reported to the solver.
	err error
}

// NewModel creates and returns a new empty Model.
func NewModel() *Model {
	return &Model{}
}

// NewBoolVar creates a new binary variable in the model.
func (mb *Model) NewBoolVar() BoolVar {
	boolVar := BoolVar{mb: mb, ind: VarIndex(mb.numVars)}
	mb.numVars++
	mb.varNames = append(mb.varNames, "")

	return boolVar
}

// AddExactlyOne adds the constraint that the variables must sum to one,
// i.e. exactly one of them is true.
func (mb *Model) AddExactlyOne(bvs ...BoolVar) Constraint {
	return mb.appendConstraint(exactlyOne, bvs)
}

// AddAtLeastOne adds the constraint that at least one of the variables
// must be true.
func (mb *Model) AddAtLeastOne(bvs ...BoolVar) Constraint {
	return mb.appendConstraint(atLeastOne, bvs)
}

// AddAtMostOne adds the constraint that at most one of the variables may
// be true.
func (mb *Model) AddAtMostOne(bvs ...BoolVar) Constraint {
	return mb.appendConstraint(atMostOne, bvs)
}

func (mb *Model) appendConstraint(kind constraintKind, bvs []BoolVar) Constraint {
	ct := constraintData{kind: kind, vars: make([]VarIndex, 0, len(bvs))}
	for _, bv := range bvs {
		mb.checkSameModelAndSetErrorf(bv.mb, "BoolVar %v added to Constraint %v", bv.Index(), len(mb.constraints))
		ct.vars = append(ct.vars, bv.ind)
	}

	i := ConstrIndex(len(mb.constraints))
	mb.constraints = append(mb.constraints, ct)

	return Constraint{mb: mb, ind: i}
}

// NumVariables returns the number of variables in the model.
func (mb *Model) NumVariables() int {
	return mb.numVars
}

// NumConstraints returns the number of constraints in the model.
func (mb *Model) NumConstraints() int {
	return len(mb.constraints)
}

// Validate returns the first error recorded while building the model, or
// nil if the model is well formed. Solvers refuse models with a non-nil
// build error.
func (mb *Model) Validate() error {
	return mb.err
}

// checkSameModelAndSetErrorf returns true if `mb` and `mb2` point to the same
// Model. If false, an error with the error message `format` is set on `mb` if
// `mb.err` is nil.
func (mb *Model) checkSameModelAndSetErrorf(mb2 *Model, format string, a ...any) bool {
	if mb == mb2 {
		return true
	}
	var args = make([]any, len(a)+1)
	copy(args, a)
	args[len(a)] = ErrMixedModels
	err := fmt.Errorf(format+": %w", args...)
	log.Errorf("%v; use `-log_backtrace_at` flag to get the error stack", err)
	if mb.err == nil {
		mb.err = err
	}
	return false
}
