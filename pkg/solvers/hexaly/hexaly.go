// Package hexaly provides the Hexaly solver backend behind the "hexaly"
// build tag. Hexaly is a local-search engine with an imperative
// expression-tree model API, structurally unlike the matrix-native backends:
// the adapter builds one bounded integer decision expression per variable,
// one weighted-sum comparison per constraint row and one sum expression for
// the objective. It shares no construction code with the matrix pattern and
// is isolated behind the same Solver contract.
//
// Hexaly has no independently switchable presolve, so the presolve toggle is
// a documented no-op for this backend. Objective coefficients are rounded to
// the nearest integer because the engine's expression scalars are integral.
// Each objective is solved against its own independently constructed
// optimizer environment; the constraint set rebuilt for each is derived from
// the same immutable polyhedron, so it is semantically identical across the
// batch.
package hexaly

import (
	"context"
	"fmt"
	"math"

	"github.com/cecil-the-coder/lp-solver-kit/internal/logger"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// Adapter implements types.Solver through the expression-tree pattern.
type Adapter struct {
	config       types.SolverConfig
	newOptimizer func() (Optimizer, error)
}

// NewSolver creates a Hexaly-backed solver.
func NewSolver(config types.SolverConfig) (types.Solver, error) {
	if err := available(); err != nil {
		return nil, types.NewEngineInitError(types.BackendTypeHexaly, err)
	}
	return &Adapter{config: config, newOptimizer: newOptimizer}, nil
}

// NewAdapterWithOptimizer creates an adapter over a custom optimizer
// constructor. It exists for tests.
func NewAdapterWithOptimizer(config types.SolverConfig, constructor func() (Optimizer, error)) *Adapter {
	return &Adapter{config: config, newOptimizer: constructor}
}

// Name returns the engine name
func (a *Adapter) Name() string {
	return "Hexaly"
}

// Type returns the backend identifier
func (a *Adapter) Type() types.BackendType {
	return types.BackendTypeHexaly
}

// Description returns the backend description
func (a *Adapter) Description() string {
	return "Hexaly expression-tree local-search backend"
}

// Solve implements the Solver contract. One objective's failure never aborts
// the remaining objectives.
func (a *Adapter) Solve(ctx context.Context, p *types.Polyhedron, objectives []types.Objective, dir types.Direction, opts types.SolveOptions) ([]types.Outcome, error) {
	log := logger.Logger().With().Str("backend", string(types.BackendTypeHexaly)).Logger()

	outcomes := make([]types.Outcome, 0, len(objectives))
	for i, obj := range objectives {
		outcome := a.solveOne(ctx, p, obj, dir, opts)
		log.Debug().
			Int("objective", i).
			Stringer("status", outcome.Status).
			Msg("objective solved")
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// solveOne builds one fresh optimizer for one objective. Any failure,
// including a panic escaping the native call, is captured into the returned
// Outcome. The optimizer is closed on every exit path.
func (a *Adapter) solveOne(ctx context.Context, p *types.Polyhedron, obj types.Objective, dir types.Direction, opts types.SolveOptions) (out types.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = types.Outcome{
				Status:   types.StatusMIPFailed,
				Solution: lowerBoundSolution(p),
				Error:    fmt.Sprintf("Hexaly engine panicked during solve: %v", r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return types.Outcome{
			Status:   types.StatusUndefined,
			Solution: lowerBoundSolution(p),
			Error:    fmt.Sprintf("solve canceled before start: %v", err),
		}
	}

	opt, err := a.newOptimizer()
	if err != nil {
		return types.Outcome{
			Status:   types.StatusUndefined,
			Solution: lowerBoundSolution(p),
			Error:    fmt.Sprintf("failed to acquire Hexaly environment: %v", err),
		}
	}
	defer opt.Close()

	// One bounded integer decision per variable, in column order.
	decisions := make([]Expr, len(p.Variables))
	for j, v := range p.Variables {
		decisions[j] = opt.IntVar(v.Bound.Lower, v.Bound.Upper)
	}

	// One weighted-sum comparison per constraint row.
	rowTerms := make([][]Expr, len(p.B))
	for k, r := range p.A.Rows {
		term := opt.Prod(opt.Constant(p.A.Vals[k]), decisions[p.A.Cols[k]])
		rowTerms[r] = append(rowTerms[r], term)
	}
	for i, b := range p.B {
		lhs := opt.Sum(rowTerms[i]...)
		opt.AddConstraint(opt.Leq(lhs, opt.Constant(b)))
	}

	// One sum expression for the objective; ids outside the variable set
	// were already dropped when the coefficients were densified.
	var objTerms []Expr
	for j, v := range p.Variables {
		coef := int64(math.Round(obj[v.ID]))
		if coef == 0 {
			continue
		}
		objTerms = append(objTerms, opt.Prod(opt.Constant(coef), decisions[j]))
	}
	var objective Expr
	if len(objTerms) == 0 {
		objective = opt.Constant(0)
	} else {
		objective = opt.Sum(objTerms...)
	}
	if dir == types.DirectionMaximize {
		opt.Maximize(objective)
	} else {
		opt.Minimize(objective)
	}
	opt.CloseModel()

	if a.config.TermOutput {
		opt.SetVerbosity(1)
	} else {
		opt.SetVerbosity(0)
	}
	timeLimit := opts.TimeLimit
	if timeLimit == 0 {
		timeLimit = a.config.TimeLimit
	}
	if timeLimit > 0 {
		opt.SetTimeLimit(int(math.Ceil(timeLimit.Seconds())))
	}
	if a.config.Threads > 0 {
		opt.SetThreads(a.config.Threads)
	}

	nativeStatus, err := opt.Solve(ctx)
	if err != nil {
		return types.Outcome{
			Status:   types.StatusMIPFailed,
			Solution: lowerBoundSolution(p),
			Error:    fmt.Sprintf("Hexaly solve failed: %v", err),
		}
	}

	out = types.Outcome{
		Status:   statusFromSolution(nativeStatus),
		Solution: make(map[string]int64, len(p.Variables)),
	}
	if out.Status.HasSolution() {
		// The objective is recomputed host-side from the decision values and
		// the rounded coefficients; the engine's own expression values are
		// integral and cannot be read back as a double.
		var objVal float64
		for j, v := range p.Variables {
			val := opt.IntValue(decisions[j])
			out.Solution[v.ID] = val
			objVal += math.Round(obj[v.ID]) * float64(val)
		}
		out.Objective = objVal
	} else {
		out.Solution = lowerBoundSolution(p)
		out.Error = fmt.Sprintf("Hexaly reported no usable solution (status %d)", nativeStatus)
	}
	return out
}

// lowerBoundSolution fills the required complete id-to-value mapping when no
// engine values exist, using each variable's declared lower bound.
func lowerBoundSolution(p *types.Polyhedron) map[string]int64 {
	solution := make(map[string]int64, len(p.Variables))
	for _, v := range p.Variables {
		solution[v.ID] = v.Bound.Lower
	}
	return solution
}
