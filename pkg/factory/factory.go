// Package factory provides solver backend registration and the one-time
// backend selection performed at process startup. Exactly one backend is
// active per process; the resolved Solver is passed explicitly into request
// handling and never switched at runtime.
package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// SolverFactory is the default factory implementation
type SolverFactory struct {
	solvers map[types.BackendType]func(types.SolverConfig) (types.Solver, error)
	mutex   sync.RWMutex
}

// NewSolverFactory creates a new solver factory
func NewSolverFactory() *SolverFactory {
	return &SolverFactory{
		solvers: make(map[types.BackendType]func(types.SolverConfig) (types.Solver, error)),
	}
}

// RegisterSolver registers a new backend type
func (f *SolverFactory) RegisterSolver(backend types.BackendType, factoryFunc func(types.SolverConfig) (types.Solver, error)) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.solvers[backend] = factoryFunc
}

// CreateSolver creates a solver instance for the given backend
func (f *SolverFactory) CreateSolver(backend types.BackendType, config types.SolverConfig) (types.Solver, error) {
	f.mutex.RLock()
	factoryFunc, exists := f.solvers[backend]
	f.mutex.RUnlock()

	if !exists {
		return nil, types.NewSolverError(backend, types.ErrCodeUnsupportedBackend,
			fmt.Sprintf("backend %q not registered (supported: %s)", backend, strings.Join(f.supportedNames(), ", ")))
	}

	return factoryFunc(config)
}

// GetSupportedBackends returns all registered backend types
func (f *SolverFactory) GetSupportedBackends() []types.BackendType {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	backends := make([]types.BackendType, 0, len(f.solvers))
	for backend := range f.solvers {
		backends = append(backends, backend)
	}
	sort.Slice(backends, func(i, j int) bool { return backends[i] < backends[j] })
	return backends
}

func (f *SolverFactory) supportedNames() []string {
	names := make([]string, 0, len(f.solvers))
	f.mutex.RLock()
	for backend := range f.solvers {
		names = append(names, string(backend))
	}
	f.mutex.RUnlock()
	sort.Strings(names)
	return names
}

// ParseBackendType parses a backend identifier, case-insensitively.
func ParseBackendType(s string) (types.BackendType, error) {
	switch strings.ToLower(s) {
	case "glpk":
		return types.BackendTypeGLPK, nil
	case "highs":
		return types.BackendTypeHiGHS, nil
	case "gurobi":
		return types.BackendTypeGurobi, nil
	case "hexaly":
		return types.BackendTypeHexaly, nil
	default:
		return "", types.NewSolverError("", types.ErrCodeUnsupportedBackend,
			fmt.Sprintf("unknown backend %q (supported: glpk, highs, gurobi, hexaly)", s))
	}
}

// ResolveSolver performs the one-time backend selection: it parses the
// configured backend identifier and creates the active solver. The result is
// immutable for the process lifetime.
func ResolveSolver(backendID string, config types.SolverConfig) (types.Solver, error) {
	backend, err := ParseBackendType(backendID)
	if err != nil {
		return nil, err
	}
	config.Backend = backend

	factory := NewSolverFactory()
	RegisterDefaultSolvers(factory)
	return factory.CreateSolver(backend, config)
}
