package types

import "context"

// BackendType identifies a solver backend implementation.
type BackendType string

const (
	BackendTypeGLPK   BackendType = "glpk"
	BackendTypeHiGHS  BackendType = "highs"
	BackendTypeGurobi BackendType = "gurobi"
	BackendTypeHexaly BackendType = "hexaly"
)

// Solver is the capability contract every solver backend implements.
//
// Solve optimizes each objective in order against one fixed constraint set
// and returns exactly one Outcome per objective, index-aligned with the
// input. One objective's failure never aborts the remaining objectives: the
// failure is captured in that objective's Outcome and iteration continues.
// The constraint set must be semantically identical across all objectives in
// the batch; only the objective row varies between iterations.
//
// The polyhedron is pre-validated and already normalized to Ax <= b form
// before it reaches a backend. Backends must not mutate it.
//
// Cancellation through ctx is honored where the underlying engine offers a
// cooperative interrupt; otherwise it only bounds how long the caller waits.
type Solver interface {
	// Solve runs the batch. A non-nil error means the batch never started
	// (for example the engine environment could not be acquired); it is
	// always a *SolverError.
	Solve(ctx context.Context, p *Polyhedron, objectives []Objective, dir Direction, opts SolveOptions) ([]Outcome, error)

	// Name returns the human-readable backend name for logging.
	Name() string

	// Type returns the backend identifier.
	Type() BackendType

	// Description returns a short description of the backend.
	Description() string
}
