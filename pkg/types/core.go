// Package types defines the core types and interfaces for the LP solver kit.
// It includes the canonical sparse problem representation, the solver backend
// interface, the unified status taxonomy, and common error types used across
// all solver backends.
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Shape declares the dimensions of a sparse matrix.
type Shape struct {
	NRows int `json:"nrows"`
	NCols int `json:"ncols"`
}

// SparseMatrix is an integer matrix stored in coordinate form: only the
// nonzero entries are kept, as parallel (row, col, value) sequences.
// Duplicate (row, col) pairs are passed through as-is; whether duplicates are
// summed or rejected is a backend concern.
type SparseMatrix struct {
	Rows  []int   `json:"rows"`
	Cols  []int   `json:"cols"`
	Vals  []int64 `json:"vals"`
	Shape Shape   `json:"shape"`
}

// NumNonzeros returns the number of stored entries.
func (m *SparseMatrix) NumNonzeros() int {
	return len(m.Vals)
}

// IsEmpty reports whether the matrix holds no entries at all.
func (m *SparseMatrix) IsEmpty() bool {
	return len(m.Rows) == 0 || len(m.Cols) == 0
}

// Bound is an inclusive integer interval for a variable. It serializes as a
// two-element array [lower, upper] on the wire.
type Bound struct {
	Lower int64
	Upper int64
}

// IsFixed reports whether the bound pins the variable to a single value.
func (b Bound) IsFixed() bool {
	return b.Lower == b.Upper
}

// IsBinary reports whether the bound describes a 0/1 variable.
func (b Bound) IsBinary() bool {
	return b.Lower == 0 && b.Upper == 1
}

// MarshalJSON serializes the bound as [lower, upper].
func (b Bound) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{b.Lower, b.Upper})
}

// UnmarshalJSON parses a [lower, upper] array.
func (b *Bound) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("bound must be a [lower, upper] array: %w", err)
	}
	b.Lower = pair[0]
	b.Upper = pair[1]
	return nil
}

// Variable is a bounded integer decision variable. Variables are created once
// per request from input and are immutable for the request's lifetime.
type Variable struct {
	ID    string `json:"id"`
	Bound Bound  `json:"bound"`
}

// Polyhedron is the canonical feasible region Ax <= b together with
// per-variable bounds. The order of Variables defines the column index
// correspondence: Variables[j] is column j of A.
type Polyhedron struct {
	A         SparseMatrix `json:"A"`
	B         []int64      `json:"b"`
	Variables []Variable   `json:"variables"`
}

// Objective maps variable ids to their coefficients in a linear objective.
// Ids absent from the polyhedron's variables are permitted and contribute
// nothing.
type Objective map[string]float64

// Direction selects the optimization sense for every objective in a request.
type Direction string

const (
	DirectionMaximize Direction = "maximize"
	DirectionMinimize Direction = "minimize"
)

// Valid reports whether the direction is one of the two supported senses.
func (d Direction) Valid() bool {
	return d == DirectionMaximize || d == DirectionMinimize
}

// SolveRequest is one canonical solve invocation: a fixed constraint set, an
// ordered list of objectives to optimize against it, one direction applied to
// all of them, and an optional per-request presolve override.
type SolveRequest struct {
	Polyhedron Polyhedron  `json:"polyhedron"`
	Objectives []Objective `json:"objectives"`
	Direction  Direction   `json:"direction"`

	// Presolve overrides the configured presolve default when set.
	Presolve *bool `json:"presolve,omitempty"`
}

// Outcome is the result of solving one objective. Solution holds a value for
// every variable id in the request, even when the backend's own result only
// reported a subset.
type Outcome struct {
	Status    Status           `json:"status"`
	Objective float64          `json:"objective"`
	Solution  map[string]int64 `json:"solution"`
	Error     string           `json:"error,omitempty"`
}

// SolveResponse carries one Outcome per requested objective, index-aligned
// with the request's objective sequence.
type SolveResponse struct {
	Solutions []Outcome `json:"solutions"`
}

// SolveOptions are the per-batch knobs passed through the Solver contract.
type SolveOptions struct {
	// Presolve requests engine-internal preprocessing where the engine
	// exposes it as a switch. Backends whose presolve is mandatory document
	// the toggle as a no-op.
	Presolve bool

	// TimeLimit bounds each individual solve. Zero means unlimited. Where an
	// engine offers no cooperative interrupt, the limit only bounds how long
	// the caller waits.
	TimeLimit time.Duration
}

// SolverConfig carries process-level backend configuration, resolved once at
// startup and immutable afterwards.
type SolverConfig struct {
	// Backend identifies the active solver backend.
	Backend BackendType

	// TimeLimit is the default per-solve time limit. Zero means unlimited.
	TimeLimit time.Duration

	// Threads limits engine-internal parallelism where supported. Zero lets
	// the engine decide.
	Threads int

	// LicenseFile points license-bound engines (Gurobi, Hexaly) at their
	// license, when the engine's own discovery is not sufficient.
	LicenseFile string

	// TermOutput enables the engine's native terminal output. Off by default.
	TermOutput bool
}
