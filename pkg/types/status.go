package types

import "strconv"

// Status is the unified outcome vocabulary shared by every solver backend.
// Each backend maps its engine's native result codes onto exactly one of
// these nine values; a native code with no clear counterpart maps to
// StatusUndefined, never silently to StatusOptimal.
//
// The integer tags are part of the wire format and must not be renumbered.
type Status int

const (
	// StatusUndefined means the engine produced no classifiable result.
	StatusUndefined Status = 1
	// StatusFeasible means a feasible but not proven optimal solution exists.
	StatusFeasible Status = 2
	// StatusInfeasible means the problem was proven infeasible.
	StatusInfeasible Status = 3
	// StatusNoFeasible means no feasible solution exists (dual evidence, or
	// the engine could not tell infeasibility and unboundedness apart).
	StatusNoFeasible Status = 4
	// StatusOptimal means an optimal solution was found and proven.
	StatusOptimal Status = 5
	// StatusUnbounded means the objective is unbounded over the polyhedron.
	StatusUnbounded Status = 6
	// StatusSimplexFailed means the LP relaxation solve failed.
	StatusSimplexFailed Status = 7
	// StatusMIPFailed means the integer search failed.
	StatusMIPFailed Status = 8
	// StatusEmptySpace means the constraint matrix held no entries.
	StatusEmptySpace Status = 9
)

var statusNames = map[Status]string{
	StatusUndefined:     "Undefined",
	StatusFeasible:      "Feasible",
	StatusInfeasible:    "Infeasible",
	StatusNoFeasible:    "NoFeasible",
	StatusOptimal:       "Optimal",
	StatusUnbounded:     "Unbounded",
	StatusSimplexFailed: "SimplexFailed",
	StatusMIPFailed:     "MIPFailed",
	StatusEmptySpace:    "EmptySpace",
}

// String returns the canonical name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the nine canonical values.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// HasSolution reports whether outcomes with this status carry meaningful
// objective and solution values.
func (s Status) HasSolution() bool {
	return s == StatusFeasible || s == StatusOptimal
}

// IsFailure reports whether the status describes an engine-level failure
// rather than a property of the problem.
func (s Status) IsFailure() bool {
	return s == StatusSimplexFailed || s == StatusMIPFailed
}
