// Package gurobi provides the Gurobi solver backend behind the "gurobi"
// build tag. Gurobi environments are license-bound and scarce: one
// environment is acquired per native model and released together with it on
// every exit path.
//
// The presolve toggle maps to Gurobi's Presolve parameter (automatic when
// on, disabled when off). Gurobi supports cooperative termination, so
// context cancellation interrupts an in-flight solve.
package gurobi

import (
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// NewSolver creates a Gurobi-backed solver.
func NewSolver(config types.SolverConfig) (types.Solver, error) {
	engine, err := newEngine(config.LicenseFile)
	if err != nil {
		return nil, types.NewEngineInitError(types.BackendTypeGurobi, err)
	}
	return matrix.NewAdapter(engine, config), nil
}
