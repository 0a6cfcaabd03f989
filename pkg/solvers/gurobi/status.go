package gurobi

import "github.com/cecil-the-coder/lp-solver-kit/pkg/types"

// Gurobi optimization status codes (GRB_INT_ATTR_STATUS).
const (
	grbLoaded        = 1
	grbOptimal       = 2
	grbInfeasible    = 3
	grbInfOrUnbd     = 4
	grbUnbounded     = 5
	grbCutoff        = 6
	grbIterationLim  = 7
	grbNodeLimit     = 8
	grbTimeLimit     = 9
	grbSolutionLim   = 10
	grbInterrupted   = 11
	grbNumeric       = 12
	grbSuboptimal    = 13
	grbInProgress    = 14
	grbUserObjLimit  = 15
	grbWorkLimit     = 16
	grbMemLimit      = 17
)

// statusFromOptimize maps a Gurobi status code onto the unified taxonomy.
// The mapping is total: unknown codes map to Undefined. Gurobi reports one
// failure family without separating LP from integer failure; since every
// model this backend builds is a MIP, its failure signals map to MIPFailed.
// Limit statuses (iteration, node, time, solution, work) stop the search
// with a possible incumbent and map to Feasible; whether an incumbent
// actually exists is reflected by the solution values being present or not.
func statusFromOptimize(code int) types.Status {
	switch code {
	case grbLoaded, grbInProgress:
		return types.StatusUndefined
	case grbOptimal:
		return types.StatusOptimal
	case grbInfeasible:
		return types.StatusInfeasible
	case grbInfOrUnbd:
		return types.StatusNoFeasible
	case grbUnbounded:
		return types.StatusUnbounded
	case grbCutoff:
		return types.StatusUndefined
	case grbIterationLim, grbNodeLimit, grbTimeLimit, grbSolutionLim,
		grbSuboptimal, grbUserObjLimit, grbWorkLimit:
		return types.StatusFeasible
	case grbInterrupted:
		return types.StatusUndefined
	case grbNumeric, grbMemLimit:
		return types.StatusMIPFailed
	default:
		return types.StatusUndefined
	}
}
