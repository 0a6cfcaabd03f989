package solve_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/lp-solver-kit/internal/testutil"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/config"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/solve"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

func validRequest() *types.SolveRequest {
	return &types.SolveRequest{
		Polyhedron: types.Polyhedron{
			A: types.SparseMatrix{
				Rows:  []int{0, 0},
				Cols:  []int{0, 1},
				Vals:  []int64{1, 1},
				Shape: types.Shape{NRows: 1, NCols: 2},
			},
			B: []int64{10},
			Variables: []types.Variable{
				{ID: "x", Bound: types.Bound{Lower: 0, Upper: 10}},
				{ID: "y", Bound: types.Bound{Lower: 2, Upper: 10}},
			},
		},
		Objectives: []types.Objective{{"x": 1}, {"y": 1}},
		Direction:  types.DirectionMaximize,
	}
}

func newService(cfg config.Config) (*solve.Service, *testutil.ConfigurableMockSolver) {
	mock := testutil.NewConfigurableMockSolver("mock", types.BackendType("mock"))
	return solve.NewServiceWithSolver(mock, cfg), mock
}

func TestSolve_OneOutcomePerObjective(t *testing.T) {
	service, mock := newService(config.Default())

	resp, err := service.Solve(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Solutions, 2)
	for _, outcome := range resp.Solutions {
		assert.Equal(t, types.StatusOptimal, outcome.Status)
		assert.Len(t, outcome.Solution, 2)
	}
	assert.Equal(t, 1, mock.SolveCalled())
	assert.Len(t, mock.LastObjectives(), 2)
}

func TestSolve_InvalidDirection(t *testing.T) {
	service, mock := newService(config.Default())
	req := validRequest()
	req.Direction = "sideways"

	_, err := service.Solve(context.Background(), req)
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeValidation, solverErr.Code)
	assert.True(t, solverErr.IsClientError())
	assert.Equal(t, 0, mock.SolveCalled(), "validation failures must not reach the backend")
}

func TestSolve_InvalidPolyhedron(t *testing.T) {
	service, mock := newService(config.Default())
	req := validRequest()
	req.Polyhedron.B = []int64{10, 20} // wrong length

	_, err := service.Solve(context.Background(), req)
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeValidation, solverErr.Code)
	assert.Equal(t, 0, mock.SolveCalled())
}

func TestSolve_EmptyConstraintMatrix(t *testing.T) {
	service, mock := newService(config.Default())
	req := validRequest()
	req.Polyhedron.A = types.SparseMatrix{Shape: types.Shape{NRows: 0, NCols: 2}}
	req.Polyhedron.B = nil

	resp, err := service.Solve(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Solutions, 2)
	for _, outcome := range resp.Solutions {
		assert.Equal(t, types.StatusEmptySpace, outcome.Status)
		assert.Equal(t, map[string]int64{"x": 0, "y": 2}, outcome.Solution)
	}
	assert.Equal(t, 0, mock.SolveCalled(), "empty matrix never reaches an engine")
}

func TestSolve_PresolveDefaultFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Presolve = true
	service, mock := newService(cfg)

	_, err := service.Solve(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, mock.LastOptions().Presolve)
}

func TestSolve_PresolveRequestOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Presolve = true
	service, mock := newService(cfg)

	off := false
	req := validRequest()
	req.Presolve = &off

	_, err := service.Solve(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, mock.LastOptions().Presolve)
}

func TestSolve_TimeLimitFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TimeLimitMS = 15000
	service, mock := newService(cfg)

	_, err := service.Solve(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, mock.LastOptions().TimeLimit)
}

func TestSolve_BackendErrorWrapped(t *testing.T) {
	service, mock := newService(config.Default())
	mock.SetSolveError(errors.New("native crash"))

	_, err := service.Solve(context.Background(), validRequest())
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeSolveFailure, solverErr.Code)
	assert.Contains(t, solverErr.Message, "native crash")
}

func TestSolve_BackendSolverErrorPassedThrough(t *testing.T) {
	service, mock := newService(config.Default())
	original := types.NewEngineInitError(types.BackendTypeGLPK, errors.New("libglpk not found"))
	mock.SetSolveError(original)

	_, err := service.Solve(context.Background(), validRequest())
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Same(t, original, solverErr)
}

func TestSolve_ParallelPreservesOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Parallel = true
	service, mock := newService(cfg)

	// Tag each outcome with its objective's single coefficient so order is
	// observable in the response.
	mock.SetOutcomeFunc(func(obj types.Objective) types.Outcome {
		return types.Outcome{
			Status:    types.StatusOptimal,
			Objective: obj["x"],
			Solution:  map[string]int64{"x": 0, "y": 2},
		}
	})

	req := validRequest()
	req.Objectives = []types.Objective{{"x": 1}, {"x": 2}, {"x": 3}, {"x": 4}}

	resp, err := service.Solve(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Solutions, 4)
	for i, outcome := range resp.Solutions {
		assert.Equal(t, float64(i+1), outcome.Objective)
	}
	// One single-objective dispatch per objective.
	assert.Equal(t, 4, mock.SolveCalled())
	assert.Len(t, mock.LastObjectives(), 1)
}

func TestSolve_ParallelFailureAbortsRequest(t *testing.T) {
	cfg := config.Default()
	cfg.Parallel = true
	service, mock := newService(cfg)
	mock.SetSolveError(errors.New("worker crashed"))

	_, err := service.Solve(context.Background(), validRequest())
	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeSolveFailure, solverErr.Code)
}

// emptyBatchSolver returns no outcomes and no error, violating the
// one-outcome-per-objective contract.
type emptyBatchSolver struct{}

func (emptyBatchSolver) Solve(ctx context.Context, p *types.Polyhedron, objectives []types.Objective, dir types.Direction, opts types.SolveOptions) ([]types.Outcome, error) {
	return nil, nil
}

func (emptyBatchSolver) Name() string            { return "empty" }
func (emptyBatchSolver) Type() types.BackendType { return types.BackendType("empty") }
func (emptyBatchSolver) Description() string     { return "empty batch backend" }

func TestSolve_ParallelEmptyBatchIsAnError(t *testing.T) {
	cfg := config.Default()
	cfg.Parallel = true
	service := solve.NewServiceWithSolver(emptyBatchSolver{}, cfg)

	_, err := service.Solve(context.Background(), validRequest())

	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeSolveFailure, solverErr.Code)
	assert.Contains(t, solverErr.Message, "0 outcomes")
}

func TestSolve_AdmissionLimiterCancellation(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSolvesPerSecond = 0.001 // ~17 minutes between admissions
	service, _ := newService(cfg)

	// First request takes the single burst token.
	_, err := service.Solve(context.Background(), validRequest())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = service.Solve(ctx, validRequest())

	var solverErr *types.SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Equal(t, types.ErrCodeCanceled, solverErr.Code)
}

func TestSolve_SingleObjectiveSkipsParallelPath(t *testing.T) {
	cfg := config.Default()
	cfg.Parallel = true
	service, mock := newService(cfg)

	req := validRequest()
	req.Objectives = []types.Objective{{"x": 1}}

	resp, err := service.Solve(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Solutions, 1)
	assert.Equal(t, 1, mock.SolveCalled())
}
