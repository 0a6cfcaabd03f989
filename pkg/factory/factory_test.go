package factory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/lp-solver-kit/internal/testutil"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/factory"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

func TestParseBackendType(t *testing.T) {
	tests := []struct {
		input string
		want  types.BackendType
	}{
		{"glpk", types.BackendTypeGLPK},
		{"GLPK", types.BackendTypeGLPK},
		{"highs", types.BackendTypeHiGHS},
		{"HiGHS", types.BackendTypeHiGHS},
		{"gurobi", types.BackendTypeGurobi},
		{"Gurobi", types.BackendTypeGurobi},
		{"hexaly", types.BackendTypeHexaly},
		{"HEXALY", types.BackendTypeHexaly},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := factory.ParseBackendType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBackendType_Unknown(t *testing.T) {
	for _, input := range []string{"", "cplex", "glpk ", "simplex"} {
		_, err := factory.ParseBackendType(input)
		var solverErr *types.SolverError
		require.True(t, errors.As(err, &solverErr), "input %q", input)
		assert.Equal(t, types.ErrCodeUnsupportedBackend, solverErr.Code)
		assert.Contains(t, solverErr.Message, "supported:")
	}
}

func TestRegisterAndCreateSolver(t *testing.T) {
	f := factory.NewSolverFactory()
	mock := testutil.NewConfigurableMockSolver("mock", types.BackendType("mock"))
	f.RegisterSolver(types.BackendType("mock"), func(config types.SolverConfig) (types.Solver, error) {
		return mock, nil
	})

	solver, err := f.CreateSolver(types.BackendType("mock"), types.SolverConfig{})
	require.NoError(t, err)
	assert.Equal(t, mock, solver)
}

func TestCreateSolver_Unregistered(t *testing.T) {
	f := factory.NewSolverFactory()
	f.RegisterSolver(types.BackendTypeGLPK, func(config types.SolverConfig) (types.Solver, error) {
		return testutil.NewConfigurableMockSolver("glpk", types.BackendTypeGLPK), nil
	})

	_, err := f.CreateSolver(types.BackendTypeGurobi, types.SolverConfig{})
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeUnsupportedBackend, solverErr.Code)
	assert.Contains(t, solverErr.Message, "glpk")
}

func TestGetSupportedBackends_Sorted(t *testing.T) {
	f := factory.NewSolverFactory()
	register := func(backend types.BackendType) {
		f.RegisterSolver(backend, func(config types.SolverConfig) (types.Solver, error) {
			return testutil.NewConfigurableMockSolver(string(backend), backend), nil
		})
	}
	register(types.BackendTypeHiGHS)
	register(types.BackendTypeGLPK)
	register(types.BackendTypeHexaly)

	assert.Equal(t, []types.BackendType{
		types.BackendTypeGLPK,
		types.BackendTypeHexaly,
		types.BackendTypeHiGHS,
	}, f.GetSupportedBackends())
}

func TestRegisterDefaultSolvers(t *testing.T) {
	f := factory.NewSolverFactory()
	factory.RegisterDefaultSolvers(f)

	assert.Equal(t, []types.BackendType{
		types.BackendTypeGLPK,
		types.BackendTypeGurobi,
		types.BackendTypeHexaly,
		types.BackendTypeHiGHS,
	}, f.GetSupportedBackends())
}

func TestResolveSolver_UnknownBackend(t *testing.T) {
	_, err := factory.ResolveSolver("cplex", types.SolverConfig{})
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeUnsupportedBackend, solverErr.Code)
}

// Without native engine build tags each backend constructor reports an
// engine-init error rather than a missing registration.
func TestCreateSolver_EngineCompiledOut(t *testing.T) {
	f := factory.NewSolverFactory()
	factory.RegisterDefaultSolvers(f)

	for _, backend := range f.GetSupportedBackends() {
		_, err := f.CreateSolver(backend, types.SolverConfig{})
		if err == nil {
			// Engine linked in via build tag; nothing to assert.
			continue
		}
		var solverErr *types.SolverError
		require.True(t, errors.As(err, &solverErr), "backend %s", backend)
		assert.Equal(t, types.ErrCodeEngineInit, solverErr.Code, "backend %s", backend)
	}
}
