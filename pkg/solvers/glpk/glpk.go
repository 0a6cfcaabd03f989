// Package glpk provides the GLPK solver backend. It binds the GNU Linear
// Programming Kit through its C API behind the "glpk" build tag; binaries
// built without the tag get an engine-init error at backend creation.
//
// GLPK exposes presolve as a real switch on the integer optimizer. With
// presolve off, the LP relaxation is solved first with the simplex method,
// whose failure surfaces as SimplexFailed; a failure of the integer search
// itself surfaces as MIPFailed.
package glpk

import (
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// NewSolver creates a GLPK-backed solver.
func NewSolver(config types.SolverConfig) (types.Solver, error) {
	engine, err := newEngine()
	if err != nil {
		return nil, types.NewEngineInitError(types.BackendTypeGLPK, err)
	}
	return matrix.NewAdapter(engine, config), nil
}
