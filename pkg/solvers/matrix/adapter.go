package matrix

import (
	"context"
	"fmt"

	"github.com/cecil-the-coder/lp-solver-kit/internal/logger"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/polyhedron"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// Adapter implements types.Solver on top of a matrix-native Engine. It builds
// the native model once per batch and mutates only the objective row between
// iterations; the constraint set is identical for every objective.
type Adapter struct {
	engine Engine
	config types.SolverConfig
}

// NewAdapter creates an adapter for the given engine.
func NewAdapter(engine Engine, config types.SolverConfig) *Adapter {
	return &Adapter{
		engine: engine,
		config: config,
	}
}

// Name returns the engine name
func (a *Adapter) Name() string {
	return a.engine.Name()
}

// Type returns the backend identifier
func (a *Adapter) Type() types.BackendType {
	return a.engine.Type()
}

// Description returns the backend description
func (a *Adapter) Description() string {
	return fmt.Sprintf("%s matrix-native LP/MILP backend", a.engine.Name())
}

// Solve implements the Solver contract. The native model is released on
// every exit path, including panics escaping the engine binding.
func (a *Adapter) Solve(ctx context.Context, p *types.Polyhedron, objectives []types.Objective, dir types.Direction, opts types.SolveOptions) ([]types.Outcome, error) {
	timeLimit := opts.TimeLimit
	if timeLimit == 0 {
		timeLimit = a.config.TimeLimit
	}

	model, err := a.engine.NewModel(p, ModelOptions{
		Presolve:   opts.Presolve,
		TimeLimit:  timeLimit,
		Threads:    a.config.Threads,
		TermOutput: a.config.TermOutput,
	})
	if err != nil {
		return nil, types.NewEngineInitError(a.engine.Type(), err).WithOperation("new_model")
	}
	defer model.Release()

	log := logger.Logger().With().Str("backend", string(a.engine.Type())).Logger()

	outcomes := make([]types.Outcome, 0, len(objectives))
	for i, obj := range objectives {
		outcome := a.solveOne(ctx, model, p, obj, dir)
		log.Debug().
			Int("objective", i).
			Stringer("status", outcome.Status).
			Msg("objective solved")
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// solveOne runs one objective against the shared native model. Any failure,
// including a panic escaping the native call, is captured into the returned
// Outcome; it never aborts the remaining objectives in the batch.
func (a *Adapter) solveOne(ctx context.Context, model Model, p *types.Polyhedron, obj types.Objective, dir types.Direction) (out types.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = types.Outcome{
				Status:   types.StatusMIPFailed,
				Solution: reconcile(p, Result{}),
				Error:    fmt.Sprintf("%s engine panicked during solve: %v", a.engine.Name(), r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return types.Outcome{
			Status:   types.StatusUndefined,
			Solution: reconcile(p, Result{}),
			Error:    fmt.Sprintf("solve canceled before start: %v", err),
		}
	}

	coeffs := polyhedron.DenseObjective(p, obj)
	if err := model.SetObjective(coeffs, dir); err != nil {
		return types.Outcome{
			Status:   types.StatusUndefined,
			Solution: reconcile(p, Result{}),
			Error:    fmt.Sprintf("failed to set objective: %v", err),
		}
	}

	res, err := model.Solve(ctx)
	out = types.Outcome{
		Status:   res.Status,
		Solution: reconcile(p, res),
		Error:    res.Message,
	}
	if err != nil {
		if !out.Status.Valid() || out.Status == types.StatusOptimal {
			out.Status = types.StatusUndefined
		}
		out.Error = err.Error()
		return out
	}
	if !out.Status.Valid() {
		out.Status = types.StatusUndefined
	}
	if out.Status.HasSolution() {
		// A limit can stop the engine before any incumbent exists; a
		// solution status without values must not survive, or the
		// reconciled lower-bound fill would masquerade as a solution.
		if res.Values == nil {
			out.Status = types.StatusUndefined
			if out.Error == "" {
				out.Error = fmt.Sprintf("%s reported %s without an incumbent solution", a.engine.Name(), res.Status)
			}
			return out
		}
		out.Objective = res.Objective
	}
	return out
}

// reconcile builds the complete id-to-value mapping the contract requires:
// every requested variable appears, even if the engine's own result only
// reported a subset. A column missing from the result takes the
// engine-reported fixed value when one exists, otherwise the variable's
// declared lower bound.
func reconcile(p *types.Polyhedron, res Result) map[string]int64 {
	solution := make(map[string]int64, len(p.Variables))
	for j, v := range p.Variables {
		if val, ok := res.Values[j]; ok {
			solution[v.ID] = val
			continue
		}
		if val, ok := res.Fixed[j]; ok {
			solution[v.ID] = val
			continue
		}
		solution[v.ID] = v.Bound.Lower
	}
	return solution
}
