// Package polyhedron validates and normalizes the canonical sparse problem
// representation before it is handed to a solver backend. After Validate and,
// where needed, GEToLE have run, every backend only ever sees a well-formed
// polyhedron in Ax <= b form.
//
// The package never densifies the constraint matrix; converting to whatever
// native layout an engine requires is each backend's own responsibility.
package polyhedron

import (
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// Validate checks the structural invariants of the canonical model and
// returns a validation SolverError on the first violation found. It checks:
//
//   - rows, cols and vals have equal length
//   - every row index is within [0, nrows) and every col index within [0, ncols)
//   - len(b) matches the declared number of rows
//   - the number of variables matches the declared number of columns
//   - no variable has an inverted bound (lower > upper)
//   - variable ids are unique
//
// Duplicate (row, col) pairs are deliberately not rejected here; engines may
// sum or reject them.
func Validate(p *types.Polyhedron) error {
	m := &p.A
	if len(m.Rows) != len(m.Cols) || len(m.Rows) != len(m.Vals) {
		return types.NewValidationError(
			"rows, cols and vals must have the same length, got (%d,%d,%d)",
			len(m.Rows), len(m.Cols), len(m.Vals))
	}
	for i, r := range m.Rows {
		if r < 0 || r >= m.Shape.NRows {
			return types.NewValidationError(
				"row index %d at entry %d out of range [0,%d)", r, i, m.Shape.NRows)
		}
	}
	for i, c := range m.Cols {
		if c < 0 || c >= m.Shape.NCols {
			return types.NewValidationError(
				"col index %d at entry %d out of range [0,%d)", c, i, m.Shape.NCols)
		}
	}
	if len(p.B) != m.Shape.NRows {
		return types.NewValidationError(
			"b must have one entry per constraint row, got %d for %d rows",
			len(p.B), m.Shape.NRows)
	}
	if len(p.Variables) != m.Shape.NCols {
		return types.NewValidationError(
			"the number of variables must equal the number of matrix columns, got (%d,%d)",
			len(p.Variables), m.Shape.NCols)
	}
	seen := make(map[string]struct{}, len(p.Variables))
	for _, v := range p.Variables {
		if v.Bound.Lower > v.Bound.Upper {
			return types.NewValidationError(
				"variable %q has inverted bound [%d,%d]", v.ID, v.Bound.Lower, v.Bound.Upper)
		}
		if _, dup := seen[v.ID]; dup {
			return types.NewValidationError("duplicate variable id %q", v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	return nil
}

// GEToLE converts a polyhedron whose constraints are meant as Ax >= b into
// the canonical Ax <= b form by negating both the matrix entries and the
// right-hand side. The conversion happens once, before any engine sees the
// model. The input is not modified.
func GEToLE(ge *types.Polyhedron) *types.Polyhedron {
	vals := make([]int64, len(ge.A.Vals))
	for i, v := range ge.A.Vals {
		vals[i] = -v
	}
	b := make([]int64, len(ge.B))
	for i, v := range ge.B {
		b[i] = -v
	}
	return &types.Polyhedron{
		A: types.SparseMatrix{
			Rows:  append([]int(nil), ge.A.Rows...),
			Cols:  append([]int(nil), ge.A.Cols...),
			Vals:  vals,
			Shape: ge.A.Shape,
		},
		B:         b,
		Variables: append([]types.Variable(nil), ge.Variables...),
	}
}

// ColumnIndex returns the variable id to column index mapping implied by the
// order of p.Variables.
func ColumnIndex(p *types.Polyhedron) map[string]int {
	idx := make(map[string]int, len(p.Variables))
	for j, v := range p.Variables {
		idx[v.ID] = j
	}
	return idx
}

// DenseObjective expands an objective mapping into one coefficient per
// column, in column order. Variables absent from the objective get
// coefficient zero; objective ids absent from the polyhedron's variables are
// dropped silently.
func DenseObjective(p *types.Polyhedron, obj types.Objective) []float64 {
	coeffs := make([]float64, len(p.Variables))
	for j, v := range p.Variables {
		coeffs[j] = obj[v.ID]
	}
	return coeffs
}

// IsEmpty reports whether the polyhedron's constraint matrix holds no
// entries. Empty problems never reach an engine; they short-circuit to
// EmptySpace outcomes.
func IsEmpty(p *types.Polyhedron) bool {
	return p.A.IsEmpty()
}
