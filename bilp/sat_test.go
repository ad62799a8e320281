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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ExactlyOne(t *testing.T) {
	model := NewModel()
	vars := []BoolVar{model.NewBoolVar(), model.NewBoolVar(), model.NewBoolVar()}
	model.AddExactlyOne(vars...)

	res, err := NewSATSolver().Solve(model)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)

	set := 0
	for _, v := range vars {
		if res.BooleanValue(v) {
			set++
		}
	}
	assert.Equal(t, 1, set)
}

func TestSolve_UnitConstraintPinsVariable(t *testing.T) {
	model := NewModel()
	a := model.NewBoolVar()
	b := model.NewBoolVar()
	model.AddExactlyOne(a)
	model.AddExactlyOne(a, b)

	res, err := NewSATSolver().Solve(model)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.True(t, res.BooleanValue(a))
	assert.False(t, res.BooleanValue(b))
}

func TestSolve_Infeasible(t *testing.T) {
	model := NewModel()
	a := model.NewBoolVar()
	b := model.NewBoolVar()
	model.AddExactlyOne(a)
	model.AddExactlyOne(b)
	model.AddAtMostOne(a, b)

	res, err := NewSATSolver().Solve(model)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, res.Status)
}

func TestSolve_EmptyLowerBoundIsInfeasible(t *testing.T) {
	for name, add := range map[string]func(*Model){
		"ExactlyOne": func(m *Model) { m.AddExactlyOne() },
		"AtLeastOne": func(m *Model) { m.AddAtLeastOne() },
	} {
		t.Run(name, func(t *testing.T) {
			model := NewModel()
			model.NewBoolVar()
			add(model)

			res, err := NewSATSolver().Solve(model)
			require.NoError(t, err)
			assert.Equal(t, Infeasible, res.Status)
		})
	}
}

func TestSolve_EmptyAtMostOneIsFeasible(t *testing.T) {
	model := NewModel()
	model.NewBoolVar()
	model.AddAtMostOne()

	res, err := NewSATSolver().Solve(model)
	require.NoError(t, err)
	assert.Equal(t, Optimal, res.Status)
}

func TestSolve_AtLeastAndAtMostCompose(t *testing.T) {
	model := NewModel()
	a := model.NewBoolVar()
	b := model.NewBoolVar()
	c := model.NewBoolVar()
	model.AddAtLeastOne(a, b)
	model.AddAtMostOne(a, b)
	model.AddExactlyOne(b, c)

	res, err := NewSATSolver().Solve(model)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)

	av, bv, cv := res.BooleanValue(a), res.BooleanValue(b), res.BooleanValue(c)
	assert.True(t, av || bv)
	assert.False(t, av && bv)
	assert.True(t, bv != cv)
}

func TestSolve_NilModel(t *testing.T) {
	_, err := NewSATSolver().Solve(nil)
	assert.Error(t, err)
}
