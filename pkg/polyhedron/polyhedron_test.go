package polyhedron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

func validPolyhedron() types.Polyhedron {
	return types.Polyhedron{
		A: types.SparseMatrix{
			Rows:  []int{0, 0},
			Cols:  []int{0, 1},
			Vals:  []int64{1, 1},
			Shape: types.Shape{NRows: 1, NCols: 2},
		},
		B: []int64{10},
		Variables: []types.Variable{
			{ID: "x", Bound: types.Bound{Lower: 0, Upper: 10}},
			{ID: "y", Bound: types.Bound{Lower: 0, Upper: 10}},
		},
	}
}

func TestValidate_AcceptsWellFormed(t *testing.T) {
	p := validPolyhedron()
	assert.NoError(t, Validate(&p))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.Polyhedron)
	}{
		{
			name:   "vals length mismatch",
			mutate: func(p *types.Polyhedron) { p.A.Vals = []int64{1} },
		},
		{
			name:   "cols length mismatch",
			mutate: func(p *types.Polyhedron) { p.A.Cols = []int{0} },
		},
		{
			name:   "row index out of range",
			mutate: func(p *types.Polyhedron) { p.A.Rows[0] = 1 },
		},
		{
			name:   "negative row index",
			mutate: func(p *types.Polyhedron) { p.A.Rows[0] = -1 },
		},
		{
			name:   "col index out of range",
			mutate: func(p *types.Polyhedron) { p.A.Cols[1] = 2 },
		},
		{
			name:   "b length mismatch",
			mutate: func(p *types.Polyhedron) { p.B = []int64{10, 20} },
		},
		{
			name:   "variable count mismatch",
			mutate: func(p *types.Polyhedron) { p.Variables = p.Variables[:1] },
		},
		{
			name: "inverted bound",
			mutate: func(p *types.Polyhedron) {
				p.Variables[0].Bound = types.Bound{Lower: 5, Upper: 2}
			},
		},
		{
			name: "duplicate variable id",
			mutate: func(p *types.Polyhedron) {
				p.Variables[1].ID = "x"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPolyhedron()
			tt.mutate(&p)
			err := Validate(&p)
			require.Error(t, err)

			var solverErr *types.SolverError
			require.True(t, errors.As(err, &solverErr))
			assert.Equal(t, types.ErrCodeValidation, solverErr.Code)
		})
	}
}

func TestValidate_AllowsDuplicateMatrixEntries(t *testing.T) {
	// Duplicate (row, col) pairs pass through; engines decide what to do.
	p := validPolyhedron()
	p.A.Rows = []int{0, 0}
	p.A.Cols = []int{0, 0}
	assert.NoError(t, Validate(&p))
}

func TestGEToLE_NegatesMatrixAndRHS(t *testing.T) {
	ge := validPolyhedron()
	ge.B = []int64{2}

	le := GEToLE(&ge)

	assert.Equal(t, []int64{-1, -1}, le.A.Vals)
	assert.Equal(t, []int64{-2}, le.B)
	assert.Equal(t, ge.A.Rows, le.A.Rows)
	assert.Equal(t, ge.A.Cols, le.A.Cols)
	assert.Equal(t, ge.Variables, le.Variables)

	// Input untouched.
	assert.Equal(t, []int64{1, 1}, ge.A.Vals)
	assert.Equal(t, []int64{2}, ge.B)
}

func TestColumnIndex_FollowsVariableOrder(t *testing.T) {
	p := validPolyhedron()
	idx := ColumnIndex(&p)
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, idx)
}

func TestDenseObjective_DropsUnknownIDs(t *testing.T) {
	p := validPolyhedron()

	withUnknown := DenseObjective(&p, types.Objective{"x": 1, "z": 5})
	withoutUnknown := DenseObjective(&p, types.Objective{"x": 1})

	assert.Equal(t, []float64{1, 0}, withUnknown)
	assert.Equal(t, withoutUnknown, withUnknown)
}

func TestDenseObjective_EmptyObjective(t *testing.T) {
	p := validPolyhedron()
	assert.Equal(t, []float64{0, 0}, DenseObjective(&p, types.Objective{}))
}

func TestIsEmpty(t *testing.T) {
	p := validPolyhedron()
	assert.False(t, IsEmpty(&p))

	empty := types.Polyhedron{}
	assert.True(t, IsEmpty(&empty))
}
