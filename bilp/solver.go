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

// Status is the outcome of a feasibility query, independent of any
// particular backend's status vocabulary.
type Status int

const (
	// Unknown means the backend stopped without deciding feasibility.
	Unknown Status = iota
	// Optimal means a feasible assignment was found. The objective of a
	// pure feasibility problem is constant, so feasible and optimal
	// coincide.
	Optimal
	// Infeasible means no assignment satisfies all constraints.
	Infeasible
)

// String returns a short human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unknown:
		return "UNKNOWN"
	}
	return "INVALID"
}

// Result holds the outcome of a solve and, when the status is Optimal,
// the 0/1 value of every variable in the model.
type Result struct {
	Status Status

	values []bool
}

// BooleanValue returns the value assigned to `bv`. The returned value is
// only meaningful if the result's status is Optimal.
func (r *Result) BooleanValue(bv BoolVar) bool {
	if r == nil || int(bv.ind) >= len(r.values) {
		return false
	}
	return r.values[bv.ind]
}

// Solver decides feasibility of a system of 0-1 linear cardinality
// constraints.
//
// Infeasibility is a normal outcome reported through the Result status,
// never through the returned error, which is reserved for genuine
// malfunction of the backend or a malformed model.
type Solver interface {
	Solve(mb *Model) (*Result, error)
}
