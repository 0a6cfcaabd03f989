// Package solve implements the multi-objective solve orchestration: request
// validation, empty-space short-circuiting, dispatch to the active solver
// backend and ordered response assembly.
//
// Objectives are solved sequentially by default because native engine
// handles are not guaranteed safe for concurrent solves on a shared model.
// With the parallel option each objective is dispatched as its own
// single-objective batch, so every goroutine owns an independently
// constructed native model; output order is preserved by index.
package solve

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/cecil-the-coder/lp-solver-kit/internal/logger"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/config"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/factory"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/polyhedron"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// Service orchestrates solve requests against the one backend resolved at
// startup. It is safe for concurrent use; each request acquires and releases
// its own native engine handles.
type Service struct {
	solver  types.Solver
	cfg     config.Config
	limiter *rate.Limiter
}

// NewService resolves the configured backend once and returns a service
// bound to it. A failure to initialize the backend here is fatal by design:
// it happens at process startup.
func NewService(cfg config.Config) (*Service, error) {
	logger.SetLevel(cfg.LogLevel)

	solver, err := factory.ResolveSolver(cfg.Backend, types.SolverConfig{
		TimeLimit:   cfg.TimeLimit(),
		Threads:     cfg.Threads,
		LicenseFile: cfg.LicenseFile,
		TermOutput:  cfg.TermOutput,
	})
	if err != nil {
		return nil, err
	}
	return NewServiceWithSolver(solver, cfg), nil
}

// NewServiceWithSolver binds a service to an already constructed solver.
func NewServiceWithSolver(solver types.Solver, cfg config.Config) *Service {
	s := &Service{solver: solver, cfg: cfg}
	if cfg.MaxSolvesPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.MaxSolvesPerSecond), 1)
	}
	return s
}

// Solver returns the active backend.
func (s *Service) Solver() types.Solver {
	return s.solver
}

// Solve validates the request, dispatches its objectives to the active
// backend and assembles the ordered response. The returned error is always a
// *types.SolverError; validation failures never reach the backend.
func (s *Service) Solve(ctx context.Context, req *types.SolveRequest) (*types.SolveResponse, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, types.NewSolverError(s.solver.Type(), types.ErrCodeCanceled, "canceled while waiting for admission").WithOriginalErr(err)
		}
	}

	requestID := uuid.NewString()
	log := logger.Logger().With().
		Str("request_id", requestID).
		Str("backend", string(s.solver.Type())).
		Logger()

	if !req.Direction.Valid() {
		return nil, types.NewValidationError("direction must be %q or %q, got %q",
			types.DirectionMaximize, types.DirectionMinimize, req.Direction)
	}
	if err := polyhedron.Validate(&req.Polyhedron); err != nil {
		return nil, err
	}

	// An empty constraint matrix never reaches an engine; every backend
	// reports it identically.
	if polyhedron.IsEmpty(&req.Polyhedron) {
		log.Info().Int("objectives", len(req.Objectives)).Msg("empty constraint matrix")
		return emptySpaceResponse(req), nil
	}

	opts := types.SolveOptions{
		Presolve:  s.cfg.Presolve,
		TimeLimit: s.cfg.TimeLimit(),
	}
	if req.Presolve != nil {
		opts.Presolve = *req.Presolve
	}

	var outcomes []types.Outcome
	var err error
	if s.cfg.Parallel && len(req.Objectives) > 1 {
		outcomes, err = s.solveParallel(ctx, req, opts)
	} else {
		outcomes, err = s.solver.Solve(ctx, &req.Polyhedron, req.Objectives, req.Direction, opts)
	}
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		return nil, asSolverError(err, s.solver.Type())
	}

	log.Info().
		Int("objectives", len(req.Objectives)).
		Int("variables", len(req.Polyhedron.Variables)).
		Msg("request solved")
	return &types.SolveResponse{Solutions: outcomes}, nil
}

// solveParallel dispatches each objective as its own single-objective batch.
// Per-objective isolation holds because every Solver.Solve call constructs
// its own native model; order is preserved by writing results by index.
func (s *Service) solveParallel(ctx context.Context, req *types.SolveRequest, opts types.SolveOptions) ([]types.Outcome, error) {
	outcomes := make([]types.Outcome, len(req.Objectives))
	group, gctx := errgroup.WithContext(ctx)
	for i, obj := range req.Objectives {
		i, obj := i, obj
		group.Go(func() error {
			batch, err := s.solver.Solve(gctx, &req.Polyhedron, []types.Objective{obj}, req.Direction, opts)
			if err != nil {
				return err
			}
			if len(batch) != 1 {
				return types.NewSolverError(s.solver.Type(), types.ErrCodeSolveFailure,
					fmt.Sprintf("backend returned %d outcomes for a single objective", len(batch)))
			}
			outcomes[i] = batch[0]
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func emptySpaceResponse(req *types.SolveRequest) *types.SolveResponse {
	solutions := make([]types.Outcome, len(req.Objectives))
	for i := range solutions {
		// The value mapping stays complete even without an engine run;
		// every variable takes its declared lower bound.
		solution := make(map[string]int64, len(req.Polyhedron.Variables))
		for _, v := range req.Polyhedron.Variables {
			solution[v.ID] = v.Bound.Lower
		}
		solutions[i] = types.Outcome{
			Status:   types.StatusEmptySpace,
			Solution: solution,
		}
	}
	return &types.SolveResponse{Solutions: solutions}
}

func asSolverError(err error, backend types.BackendType) *types.SolverError {
	if solverErr, ok := err.(*types.SolverError); ok {
		return solverErr
	}
	return types.NewSolverError(backend, types.ErrCodeSolveFailure, err.Error()).WithOriginalErr(err)
}
