package factory

import (
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/glpk"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/gurobi"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/hexaly"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/highs"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// RegisterDefaultSolvers registers all built-in solver backends with the
// factory. Backends compiled out of the binary (missing build tag) still
// register; creating one reports an engine-init error naming the tag.
func RegisterDefaultSolvers(factory *SolverFactory) {
	factory.RegisterSolver(types.BackendTypeGLPK, func(config types.SolverConfig) (types.Solver, error) {
		return glpk.NewSolver(config)
	})

	factory.RegisterSolver(types.BackendTypeHiGHS, func(config types.SolverConfig) (types.Solver, error) {
		return highs.NewSolver(config)
	})

	factory.RegisterSolver(types.BackendTypeGurobi, func(config types.SolverConfig) (types.Solver, error) {
		return gurobi.NewSolver(config)
	})

	factory.RegisterSolver(types.BackendTypeHexaly, func(config types.SolverConfig) (types.Solver, error) {
		return hexaly.NewSolver(config)
	})
}
