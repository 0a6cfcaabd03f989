// Package matrix implements the matrix-native solver adapter pattern shared
// by the GLPK, HiGHS and Gurobi backends. The adapter owns the translation
// from the canonical polyhedron into one native model per batch, the
// per-objective solve loop with failure isolation, presolve reconciliation of
// eliminated variables, and the guaranteed release of native handles on every
// exit path.
//
// Each engine package contributes only a narrow Engine implementation and an
// explicit, total mapping from its native result codes onto the unified
// status taxonomy.
package matrix

import (
	"context"
	"time"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// ModelOptions carries the engine knobs fixed for the lifetime of one native
// model.
type ModelOptions struct {
	// Presolve requests engine-internal preprocessing. Engines whose
	// presolve is mandatory ignore it and say so in their documentation.
	Presolve bool

	// TimeLimit bounds each solve invocation. Zero means unlimited.
	TimeLimit time.Duration

	// Threads limits engine-internal parallelism. Zero lets the engine
	// decide.
	Threads int

	// TermOutput enables the engine's native terminal output.
	TermOutput bool
}

// Engine is the opaque capability a matrix-native solver exposes: it can
// build one native model from a canonical polyhedron and nothing else. The
// numerical algorithms behind it are external and never reimplemented here.
type Engine interface {
	// Name returns the engine name for logging.
	Name() string

	// Type returns the backend identifier of the engine.
	Type() types.BackendType

	// NewModel acquires whatever native environment the engine needs and
	// uploads the constraint matrix, right-hand side, variable bounds and
	// integrality. The returned model is owned exclusively by the caller and
	// must be released exactly once.
	NewModel(p *types.Polyhedron, opts ModelOptions) (Model, error)
}

// Model is one native engine model holding a fixed constraint set. Only the
// objective row and direction may change between solves. A Model is not safe
// for concurrent solve invocations.
type Model interface {
	// SetObjective replaces the objective row with one coefficient per
	// column, in column order, and sets the optimization direction.
	SetObjective(coeffs []float64, dir types.Direction) error

	// Solve invokes the engine. Engine-reported non-success statuses are
	// returned inside the Result, not as an error; a non-nil error means the
	// invocation itself failed and the Result's Status carries the engine's
	// fixed failure classification.
	//
	// Cancellation through ctx is honored only if the engine offers a
	// cooperative interrupt.
	Solve(ctx context.Context) (Result, error)

	// Release frees the native model and any environment handle backing it.
	// It is safe to call once on every exit path, including failure paths.
	Release()
}

// Result is the engine's answer for one objective, already mapped onto the
// unified status taxonomy by the engine binding.
type Result struct {
	// Status is the canonical status the engine's native code mapped to.
	Status types.Status

	// Objective is the objective value at the reported solution, when
	// Status.HasSolution().
	Objective float64

	// Values holds one entry per column the engine reported a value for,
	// keyed by column index. Columns eliminated by the engine's presolve may
	// be absent.
	Values map[int]int64

	// Fixed holds engine-reported fixed values for columns the engine
	// eliminated before the main solve, keyed by column index. May be nil
	// when the engine exposes no such information.
	Fixed map[int]int64

	// Message carries the engine's human-readable diagnostic, if any.
	Message string
}
