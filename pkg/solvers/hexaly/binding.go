package hexaly

import (
	"context"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// Expr is an opaque handle to one expression inside a native Hexaly model.
// Expressions are owned by the optimizer that created them.
type Expr interface{}

// Optimizer is the opaque capability one Hexaly environment exposes: an
// imperative expression-tree model builder plus a single solve invocation.
// An Optimizer is owned exclusively by one adapter invocation and must be
// closed on every exit path.
type Optimizer interface {
	// IntVar creates a bounded integer decision expression.
	IntVar(lower, upper int64) Expr

	// Constant creates a constant scalar expression, not a decision.
	Constant(value int64) Expr

	// Sum creates a sum expression over the given operands.
	Sum(operands ...Expr) Expr

	// Prod creates a product expression over the given operands.
	Prod(operands ...Expr) Expr

	// Leq creates a left <= right comparison expression.
	Leq(left, right Expr) Expr

	// AddConstraint adds a comparison expression as a model constraint.
	AddConstraint(constraint Expr)

	// Minimize and Maximize set the objective expression and direction.
	Minimize(objective Expr)
	Maximize(objective Expr)

	// CloseModel finalizes the model; it must be called before Solve.
	CloseModel()

	// SetVerbosity, SetTimeLimit and SetThreads configure solver parameters.
	SetVerbosity(verbosity int)
	SetTimeLimit(seconds int)
	SetThreads(n int)

	// Solve runs the local search and reports the solution status. Hexaly
	// offers no cooperative interrupt through this binding, so ctx is only
	// checked before the native call.
	Solve(ctx context.Context) (SolutionStatus, error)

	// IntValue reads the solution value of an integer expression.
	IntValue(expr Expr) int64

	// Close releases the native environment.
	Close()
}

// SolutionStatus is Hexaly's native solution classification.
type SolutionStatus int

const (
	SolutionNoSolution   SolutionStatus = 0
	SolutionInconsistent SolutionStatus = 1
	SolutionInfeasible   SolutionStatus = 2
	SolutionFeasible     SolutionStatus = 3
	SolutionOptimal      SolutionStatus = 4
)

// statusFromSolution maps Hexaly's native solution status onto the unified
// taxonomy. The mapping is total: unknown codes map to Undefined. Hexaly
// reports a single failure family; as a local-search engine over integer
// decisions its failures map to MIPFailed, fixed per adapter.
func statusFromSolution(s SolutionStatus) types.Status {
	switch s {
	case SolutionNoSolution:
		return types.StatusUndefined
	case SolutionInconsistent:
		return types.StatusNoFeasible
	case SolutionInfeasible:
		return types.StatusInfeasible
	case SolutionFeasible:
		return types.StatusFeasible
	case SolutionOptimal:
		return types.StatusOptimal
	default:
		return types.StatusUndefined
	}
}
