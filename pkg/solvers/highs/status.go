package highs

import "github.com/cecil-the-coder/lp-solver-kit/pkg/types"

// HiGHS model status codes as reported by Highs_getModelStatus.
const (
	modelStatusNotSet                = 0
	modelStatusLoadError             = 1
	modelStatusModelError            = 2
	modelStatusPresolveError         = 3
	modelStatusSolveError            = 4
	modelStatusPostsolveError        = 5
	modelStatusModelEmpty            = 6
	modelStatusOptimal               = 7
	modelStatusInfeasible            = 8
	modelStatusUnboundedOrInfeasible = 9
	modelStatusUnbounded             = 10
	modelStatusObjectiveBound        = 11
	modelStatusObjectiveTarget       = 12
	modelStatusTimeLimit             = 13
	modelStatusIterationLimit        = 14
	modelStatusUnknown               = 15
)

// statusFromModel maps a HiGHS model status onto the unified taxonomy. The
// mapping is total: unknown codes map to Undefined. HiGHS's error statuses do
// not distinguish LP from integer failure, so all of them map to
// SimplexFailed.
func statusFromModel(code int) types.Status {
	switch code {
	case modelStatusNotSet, modelStatusUnknown:
		return types.StatusUndefined
	case modelStatusLoadError, modelStatusModelError, modelStatusPresolveError,
		modelStatusSolveError, modelStatusPostsolveError:
		return types.StatusSimplexFailed
	case modelStatusModelEmpty:
		return types.StatusEmptySpace
	case modelStatusOptimal:
		return types.StatusOptimal
	case modelStatusInfeasible:
		return types.StatusInfeasible
	case modelStatusUnboundedOrInfeasible:
		return types.StatusNoFeasible
	case modelStatusUnbounded:
		return types.StatusUnbounded
	case modelStatusObjectiveBound, modelStatusObjectiveTarget,
		modelStatusTimeLimit, modelStatusIterationLimit:
		// The engine stopped with an incumbent but no optimality proof.
		return types.StatusFeasible
	default:
		return types.StatusUndefined
	}
}
