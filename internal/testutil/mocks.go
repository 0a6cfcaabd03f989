// Package testutil provides shared testing utilities, mocks, and fixtures
// for use across the lp-solver-kit test suite.
package testutil

import (
	"context"
	"sync"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// ConfigurableMockSolver is a mock Solver implementation with configurable
// behavior. It allows tests to simulate various backend responses and
// scenarios.
type ConfigurableMockSolver struct {
	mu sync.Mutex

	// Configuration
	name        string
	backendType types.BackendType

	// Behavior control
	solveError error
	outcomeFn  func(obj types.Objective) types.Outcome

	// Call tracking
	solveCalled    int
	lastObjectives []types.Objective
	lastDirection  types.Direction
	lastOptions    types.SolveOptions
}

// NewConfigurableMockSolver creates a mock solver with the given identity.
func NewConfigurableMockSolver(name string, backendType types.BackendType) *ConfigurableMockSolver {
	return &ConfigurableMockSolver{
		name:        name,
		backendType: backendType,
	}
}

// SetSolveError makes every Solve call fail with err.
func (m *ConfigurableMockSolver) SetSolveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.solveError = err
}

// SetOutcomeFunc installs the per-objective outcome generator.
func (m *ConfigurableMockSolver) SetOutcomeFunc(fn func(obj types.Objective) types.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomeFn = fn
}

// SolveCalled returns how many times Solve ran.
func (m *ConfigurableMockSolver) SolveCalled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.solveCalled
}

// LastObjectives returns the objectives of the most recent Solve call.
func (m *ConfigurableMockSolver) LastObjectives() []types.Objective {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastObjectives
}

// LastOptions returns the options of the most recent Solve call.
func (m *ConfigurableMockSolver) LastOptions() types.SolveOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOptions
}

// Solve implements types.Solver.
func (m *ConfigurableMockSolver) Solve(ctx context.Context, p *types.Polyhedron, objectives []types.Objective, dir types.Direction, opts types.SolveOptions) ([]types.Outcome, error) {
	m.mu.Lock()
	m.solveCalled++
	m.lastObjectives = objectives
	m.lastDirection = dir
	m.lastOptions = opts
	solveError := m.solveError
	outcomeFn := m.outcomeFn
	m.mu.Unlock()

	if solveError != nil {
		return nil, solveError
	}

	outcomes := make([]types.Outcome, 0, len(objectives))
	for _, obj := range objectives {
		if outcomeFn != nil {
			outcomes = append(outcomes, outcomeFn(obj))
			continue
		}
		solution := make(map[string]int64, len(p.Variables))
		for _, v := range p.Variables {
			solution[v.ID] = v.Bound.Lower
		}
		outcomes = append(outcomes, types.Outcome{
			Status:   types.StatusOptimal,
			Solution: solution,
		})
	}
	return outcomes, nil
}

// Name implements types.Solver.
func (m *ConfigurableMockSolver) Name() string {
	return m.name
}

// Type implements types.Solver.
func (m *ConfigurableMockSolver) Type() types.BackendType {
	return m.backendType
}

// Description implements types.Solver.
func (m *ConfigurableMockSolver) Description() string {
	return m.name + " mock backend"
}
