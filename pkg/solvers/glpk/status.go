package glpk

import "github.com/cecil-the-coder/lp-solver-kit/pkg/types"

// GLPK solution status codes as reported by glp_mip_status.
const (
	glpUndef  = 1 // solution is undefined
	glpFeas   = 2 // solution is feasible
	glpInfeas = 3 // solution is infeasible
	glpNofeas = 4 // no feasible solution exists
	glpOpt    = 5 // solution is optimal
	glpUnbnd  = 6 // problem has unbounded solution
)

// statusFromMIP maps a glp_mip_status code onto the unified taxonomy. The
// mapping is total: codes outside the documented set map to Undefined.
func statusFromMIP(code int) types.Status {
	switch code {
	case glpUndef:
		return types.StatusUndefined
	case glpFeas:
		return types.StatusFeasible
	case glpInfeas:
		return types.StatusInfeasible
	case glpNofeas:
		return types.StatusNoFeasible
	case glpOpt:
		return types.StatusOptimal
	case glpUnbnd:
		return types.StatusUnbounded
	default:
		return types.StatusUndefined
	}
}

// statusMessage returns the human-readable diagnostic for non-success
// statuses, mirroring what GLPK documents for each code.
func statusMessage(s types.Status) string {
	switch s {
	case types.StatusUndefined:
		return "solution is undefined"
	case types.StatusInfeasible:
		return "solution is infeasible"
	case types.StatusNoFeasible:
		return "no feasible solution exists"
	case types.StatusUnbounded:
		return "problem is unbounded"
	default:
		return ""
	}
}
