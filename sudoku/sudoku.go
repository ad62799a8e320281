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

// Package sudoku models generalized Sudoku puzzles as 0-1 linear
// feasibility problems and delegates the search to a bilp.Solver.
//
// The dimensions of a puzzle are defined by the size of a puzzle block.
// Each block has m rows and n columns. Since a block has m×n cells, the
// number of values a cell can take is N = m*n, and both the height and
// width of the board are N. The board therefore has n blocks in the
// vertical direction and m in the horizontal direction.
//
// Cells are indexed like matrix entries: (i,j) = (1,1) is the top-left
// corner, i grows downwards and j grows to the right. For every cell
// (i,j) and candidate value k in [1,N] the model holds a binary indicator
// variable meaning "cell (i,j) holds value k"; the Sudoku rules are four
// families of exactly-one constraints over those indicators.
package sudoku

import (
	"errors"
	"fmt"

	"github.com/satmodel/sudokusat/bilp"
)

// ErrPuzzleSolved is returned when a given is bound after a solve attempt
// has been made. The puzzle is frozen by the first Solve call regardless
// of its outcome.
var ErrPuzzleSolved = errors.New("puzzle has already been solved")

// ErrOutOfRange is returned when a row, column, value or block dimension
// lies outside its valid range.
var ErrOutOfRange = errors.New("index out of range")

// state is the lifecycle of a Puzzle: it transitions away from
// stateUnsolved exactly once, on the first solve attempt.
type state int8

const (
	stateUnsolved state = iota
	stateSolvedFeasible
	stateSolvedInfeasible
)

// cell is a 1-based board coordinate.
type cell struct {
	i, j int
}

// Puzzle is a generalized Sudoku instance encoded as a 0-1 feasibility
// model. It is not safe for concurrent use.
type Puzzle struct {
	m, n   int
	size   int
	model  *bilp.Model
	vars   []bilp.BoolVar
	solver bilp.Solver
	state  state
	result *bilp.Result
}

// New creates a puzzle with block size m×n, m, n ≥ 1, solved by the
// default SAT-backed feasibility solver. The variable universe and the
// four base constraint families are fully constructed here; no
// puzzle-specific information is present until givens are bound.
func New(m, n int) (*Puzzle, error) {
	return NewWithSolver(m, n, bilp.NewSATSolver())
}

// NewWithSolver is like New but delegates the feasibility search to `s`.
func NewWithSolver(m, n int, s bilp.Solver) (*Puzzle, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("block size %dx%d: %w", m, n, ErrOutOfRange)
	}
	if s == nil {
		return nil, errors.New("nil solver")
	}

	size := m * n
	p := &Puzzle{
		m:      m,
		n:      n,
		size:   size,
		model:  bilp.NewModel(),
		solver: s,
	}

	// One indicator per (cell, candidate value) triple, laid out so that
	// x(i,j,k) sits at (i-1)*N*N + (j-1)*N + (k-1).
	p.vars = make([]bilp.BoolVar, size*size*size)
	for v := range p.vars {
		p.vars[v] = p.model.NewBoolVar()
	}

	buf := make([]bilp.BoolVar, 0, size)

	// Each value k appears exactly once in each row i.
	for i := 1; i <= size; i++ {
		for k := 1; k <= size; k++ {
			buf = buf[:0]
			for j := 1; j <= size; j++ {
				buf = append(buf, p.x(i, j, k))
			}
			p.model.AddExactlyOne(buf...)
		}
	}

	// Each value k appears exactly once in each column j.
	for j := 1; j <= size; j++ {
		for k := 1; k <= size; k++ {
			buf = buf[:0]
			for i := 1; i <= size; i++ {
				buf = append(buf, p.x(i, j, k))
			}
			p.model.AddExactlyOne(buf...)
		}
	}

	// Each value k appears exactly once in each block (I,J).
	for I := 1; I <= n; I++ {
		for J := 1; J <= m; J++ {
			cells := p.blockCells(I, J)
			for k := 1; k <= size; k++ {
				buf = buf[:0]
				for _, c := range cells {
					buf = append(buf, p.x(c.i, c.j, k))
				}
				p.model.AddExactlyOne(buf...)
			}
		}
	}

	// Each cell (i,j) holds exactly one value k.
	for i := 1; i <= size; i++ {
		for j := 1; j <= size; j++ {
			buf = buf[:0]
			for k := 1; k <= size; k++ {
				buf = append(buf, p.x(i, j, k))
			}
			p.model.AddExactlyOne(buf...)
		}
	}

	return p, nil
}

// x returns the indicator variable for "cell (i,j) holds value k".
func (p *Puzzle) x(i, j, k int) bilp.BoolVar {
	return p.vars[(i-1)*p.size*p.size+(j-1)*p.size+(k-1)]
}

// blockCells lists the cells of block (I,J), 1 ≤ I ≤ n, 1 ≤ J ≤ m. The
// block spans rows [(I-1)m+1, Im] and columns [(J-1)n+1, Jn], so the N
// blocks tile the board with no gaps and no overlaps.
func (p *Puzzle) blockCells(I, J int) []cell {
	iLow := (I-1)*p.m + 1
	jLow := (J-1)*p.n + 1

	cells := make([]cell, 0, p.size)
	for i := iLow; i < iLow+p.m; i++ {
		for j := jLow; j < jLow+p.n; j++ {
			cells = append(cells, cell{i: i, j: j})
		}
	}
	return cells
}

// SetCellValue binds the given that cell (i,j) holds value k, as the
// equality x(i,j,k) == 1. Givens may only be bound before the first solve
// attempt; afterwards SetCellValue fails with ErrPuzzleSolved. Givens are
// not validated against each other: conflicting givens simply make the
// puzzle infeasible at solve time.
func (p *Puzzle) SetCellValue(i, j, k int) error {
	if p.state != stateUnsolved {
		return ErrPuzzleSolved
	}
	if err := p.checkIndex("row", i); err != nil {
		return err
	}
	if err := p.checkIndex("column", j); err != nil {
		return err
	}
	if err := p.checkIndex("value", k); err != nil {
		return err
	}

	p.model.AddExactlyOne(p.x(i, j, k))
	return nil
}

func (p *Puzzle) checkIndex(what string, v int) error {
	if v < 1 || v > p.size {
		return fmt.Errorf("%s %d not in [1,%d]: %w", what, v, p.size, ErrOutOfRange)
	}
	return nil
}

// Solve invokes the feasibility solver and reports whether a valid board
// exists: true iff the solver finds a feasible assignment, false for
// infeasible or any other non-optimal status. The first call freezes the
// puzzle regardless of outcome; later calls return the recorded outcome
// without invoking the solver again. The returned error carries only
// genuine solver malfunction, never infeasibility.
func (p *Puzzle) Solve() (bool, error) {
	if p.state != stateUnsolved {
		return p.state == stateSolvedFeasible, nil
	}

	res, err := p.solver.Solve(p.model)
	if err != nil || res.Status != bilp.Optimal {
		p.state = stateSolvedInfeasible
		return false, err
	}

	p.result = res
	p.state = stateSolvedFeasible
	return true, nil
}

// CellValue returns the value of cell (i,j). It is valid to call at any
// time: candidates are scanned in increasing order and the first k whose
// indicator is set is returned. When no indicator for the cell is set
// (the puzzle is unsolved, the solve was infeasible, or (i,j) is out of
// range), CellValue returns (0, false) rather than an error.
func (p *Puzzle) CellValue(i, j int) (int, bool) {
	if p.result == nil || i < 1 || i > p.size || j < 1 || j > p.size {
		return 0, false
	}
	for k := 1; k <= p.size; k++ {
		if p.result.BooleanValue(p.x(i, j, k)) {
			return k, true
		}
	}
	return 0, false
}

// Board returns the whole board as an N×N matrix of values in [1,N].
// The second return value is false when any cell has no value, in which
// case that cell holds 0.
func (p *Puzzle) Board() ([][]int, bool) {
	complete := true
	board := make([][]int, p.size)
	for i := 1; i <= p.size; i++ {
		board[i-1] = make([]int, p.size)
		for j := 1; j <= p.size; j++ {
			v, ok := p.CellValue(i, j)
			if !ok {
				complete = false
			}
			board[i-1][j-1] = v
		}
	}
	return board, complete
}

// Size returns the number of rows/columns of the board, N = m*n.
func (p *Puzzle) Size() int {
	return p.size
}

// BlockShape returns the block dimensions (m rows, n columns).
func (p *Puzzle) BlockShape() (m, n int) {
	return p.m, p.n
}
