// Package highs provides the HiGHS solver backend behind the "highs" build
// tag. HiGHS exposes presolve as a real option ("presolve" on/off), so the
// presolve toggle is honored directly.
//
// HiGHS reports a single family of failure statuses without distinguishing
// the LP relaxation from the integer search; this backend maps all of them
// to SimplexFailed, fixed per adapter.
package highs

import (
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// NewSolver creates a HiGHS-backed solver.
func NewSolver(config types.SolverConfig) (types.Solver, error) {
	engine, err := newEngine()
	if err != nil {
		return nil, types.NewEngineInitError(types.BackendTypeHiGHS, err)
	}
	return matrix.NewAdapter(engine, config), nil
}
