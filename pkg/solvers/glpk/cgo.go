//go:build glpk

package glpk

/*
#cgo LDFLAGS: -lglpk
#include <stdlib.h>
#include <glpk.h>
*/
import "C"

import (
	"context"
	"fmt"
	"math"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

type engine struct{}

func newEngine() (matrix.Engine, error) {
	return engine{}, nil
}

func (engine) Name() string {
	return "GLPK"
}

func (engine) Type() types.BackendType {
	return types.BackendTypeGLPK
}

// NewModel uploads the polyhedron into a fresh glp_prob. Rows are GLP_UP
// bounded (Ax <= b); fixed variables become GLP_FX columns, binary bounds
// become GLP_BV columns and everything else GLP_IV.
func (engine) NewModel(p *types.Polyhedron, opts matrix.ModelOptions) (matrix.Model, error) {
	if opts.TermOutput {
		C.glp_term_out(C.GLP_ON)
	} else {
		C.glp_term_out(C.GLP_OFF)
	}

	lp := C.glp_create_prob()
	if lp == nil {
		return nil, fmt.Errorf("glp_create_prob returned NULL")
	}

	C.glp_add_rows(lp, C.int(len(p.B)))
	for i, b := range p.B {
		C.glp_set_row_bnds(lp, C.int(i+1), C.GLP_UP, 0, C.double(b))
	}

	fixed := make(map[int]int64)
	C.glp_add_cols(lp, C.int(len(p.Variables)))
	for j, v := range p.Variables {
		col := C.int(j + 1)
		switch {
		case v.Bound.IsFixed():
			C.glp_set_col_bnds(lp, col, C.GLP_FX, C.double(v.Bound.Lower), C.double(v.Bound.Upper))
			C.glp_set_col_kind(lp, col, C.GLP_IV)
			fixed[j] = v.Bound.Lower
		case v.Bound.IsBinary():
			C.glp_set_col_kind(lp, col, C.GLP_BV)
		default:
			C.glp_set_col_bnds(lp, col, C.GLP_DB, C.double(v.Bound.Lower), C.double(v.Bound.Upper))
			C.glp_set_col_kind(lp, col, C.GLP_IV)
		}
	}

	// glp_load_matrix expects 1-based arrays with a dummy leading element.
	ne := len(p.A.Vals)
	ia := make([]C.int, ne+1)
	ja := make([]C.int, ne+1)
	ar := make([]C.double, ne+1)
	for k := 0; k < ne; k++ {
		ia[k+1] = C.int(p.A.Rows[k] + 1)
		ja[k+1] = C.int(p.A.Cols[k] + 1)
		ar[k+1] = C.double(p.A.Vals[k])
	}
	C.glp_load_matrix(lp, C.int(ne), &ia[0], &ja[0], &ar[0])

	return &model{lp: lp, opts: opts, ncols: len(p.Variables), fixed: fixed}, nil
}

type model struct {
	lp    *C.glp_prob
	opts  matrix.ModelOptions
	ncols int
	fixed map[int]int64
}

func (m *model) SetObjective(coeffs []float64, dir types.Direction) error {
	if dir == types.DirectionMaximize {
		C.glp_set_obj_dir(m.lp, C.GLP_MAX)
	} else {
		C.glp_set_obj_dir(m.lp, C.GLP_MIN)
	}
	for j, c := range coeffs {
		C.glp_set_obj_coef(m.lp, C.int(j+1), C.double(c))
	}
	return nil
}

// Solve runs glp_intopt. GLPK offers no cooperative interrupt through this
// API, so ctx is only checked before the native call; a timeout is enforced
// through the engine's own tm_lim parameter.
func (m *model) Solve(ctx context.Context) (matrix.Result, error) {
	if err := ctx.Err(); err != nil {
		return matrix.Result{Status: types.StatusUndefined, Fixed: m.fixed}, err
	}

	var parm C.glp_iocp
	C.glp_init_iocp(&parm)
	if m.opts.TimeLimit > 0 {
		parm.tm_lim = C.int(m.opts.TimeLimit.Milliseconds())
	}

	if m.opts.Presolve {
		parm.presolve = C.GLP_ON
	} else {
		// Without the MIP presolver, glp_intopt requires an optimal LP
		// relaxation basis to start from.
		var smcp C.glp_smcp
		C.glp_init_smcp(&smcp)
		if m.opts.TimeLimit > 0 {
			smcp.tm_lim = C.int(m.opts.TimeLimit.Milliseconds())
		}
		if rc := C.glp_simplex(m.lp, &smcp); rc != 0 {
			return matrix.Result{Status: types.StatusSimplexFailed, Fixed: m.fixed},
				fmt.Errorf("GLPK simplex solver failed with code: %d", int(rc))
		}
	}

	if rc := C.glp_intopt(m.lp, &parm); rc != 0 {
		return matrix.Result{Status: types.StatusMIPFailed, Fixed: m.fixed},
			fmt.Errorf("GLPK MIP solver failed with code: %d", int(rc))
	}

	status := statusFromMIP(int(C.glp_mip_status(m.lp)))
	res := matrix.Result{
		Status:  status,
		Fixed:   m.fixed,
		Message: statusMessage(status),
	}
	if status.HasSolution() {
		res.Objective = float64(C.glp_mip_obj_val(m.lp))
		res.Values = make(map[int]int64, m.ncols)
		for j := 0; j < m.ncols; j++ {
			res.Values[j] = int64(math.Round(float64(C.glp_mip_col_val(m.lp, C.int(j+1)))))
		}
	}
	return res, nil
}

func (m *model) Release() {
	if m.lp != nil {
		C.glp_delete_prob(m.lp)
		m.lp = nil
	}
}
