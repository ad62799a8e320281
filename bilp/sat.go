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

package bilp

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// SATSolver decides feasibility by encoding the model's cardinality
// constraints to CNF clauses and handing them to the gini SAT solver.
type SATSolver struct{}

// NewSATSolver returns a new SAT-backed Solver.
func NewSATSolver() *SATSolver {
	return &SATSolver{}
}

// Solve implements Solver. It is a single blocking call with no timeout;
// gini decides plain CNF problems of this shape as satisfiable or
// unsatisfiable, so an Unknown status is not produced on this path.
func (s *SATSolver) Solve(mb *Model) (*Result, error) {
	if mb == nil {
		return nil, errors.New("nil model")
	}
	if err := mb.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}

	g := gini.NewV(mb.numVars)
	for _, ct := range mb.constraints {
		if !addClauses(g, ct) {
			return &Result{Status: Infeasible}, nil
		}
	}

	switch g.Solve() {
	case satisfiable:
		values := make([]bool, mb.numVars)
		for v := range values {
			values[v] = g.Value(litOf(VarIndex(v)))
		}
		return &Result{Status: Optimal, values: values}, nil
	case unsatisfiable:
		return &Result{Status: Infeasible}, nil
	}

	return &Result{Status: Unknown}, nil
}

// litOf maps a model variable to its positive gini literal. gini variables
// are numbered from 1.
func litOf(v VarIndex) z.Lit {
	return z.Var(uint32(v) + 1).Pos()
}

// addClauses teaches `g` the clauses encoding `ct`: a lower bound becomes
// one clause over the literals, an upper bound becomes pairwise exclusion
// clauses. It returns false when the constraint is unsatisfiable on its
// own (a lower bound over no variables), which has no clause form.
func addClauses(g *gini.Gini, ct constraintData) bool {
	if ct.kind == exactlyOne || ct.kind == atLeastOne {
		if len(ct.vars) == 0 {
			return false
		}
		for _, v := range ct.vars {
			g.Add(litOf(v))
		}
		g.Add(z.LitNull)
	}
	if ct.kind == exactlyOne || ct.kind == atMostOne {
		for a := 0; a < len(ct.vars); a++ {
			for b := a + 1; b < len(ct.vars); b++ {
				g.Add(litOf(ct.vars[a]).Not())
				g.Add(litOf(ct.vars[b]).Not())
				g.Add(z.LitNull)
			}
		}
	}
	return true
}
