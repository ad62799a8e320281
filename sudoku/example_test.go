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

package sudoku_test

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/satmodel/sudokusat/sudoku"
)

func Example() {
	// A classic 9x9 puzzle with a unique solution. '.' marks an empty cell.
	givens := []string{
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	}

	puzzle, err := sudoku.New(3, 3)
	if err != nil {
		log.Fatalf("Creating the puzzle returned with error %v", err)
	}
	for i, row := range givens {
		for j, ch := range row {
			if ch == '.' {
				continue
			}
			if err := puzzle.SetCellValue(i+1, j+1, int(ch-'0')); err != nil {
				log.Fatalf("Binding given (%v,%v) returned with error %v", i+1, j+1, err)
			}
		}
	}

	solved, err := puzzle.Solve()
	if err != nil {
		log.Fatalf("Solver returned with unexpected error %v", err)
	}
	if !solved {
		fmt.Println("no solution")
		return
	}

	for i := 1; i <= puzzle.Size(); i++ {
		for j := 1; j <= puzzle.Size(); j++ {
			v, _ := puzzle.CellValue(i, j)
			fmt.Print(v)
		}
		fmt.Println()
	}
	// Output:
	// 534678912
	// 672195348
	// 198342567
	// 859761423
	// 426853791
	// 713924856
	// 961537284
	// 287419635
	// 345286179
}
