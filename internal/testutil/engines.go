package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

// RecordingEngine is a matrix.Engine test double that records every call and
// replays scripted results. Results are consumed in order; the last one
// repeats when the script runs out.
type RecordingEngine struct {
	mu sync.Mutex

	// Behavior control
	NewModelError error
	SolveErrors   []error
	SolvePanic    bool
	Results       []matrix.Result

	// Call tracking
	NewModelCalled int
	ReleaseCalled  int
	SolveCalled    int
	LastOptions    matrix.ModelOptions
	SetObjectives  [][]float64
	Directions     []types.Direction
}

// Name implements matrix.Engine.
func (e *RecordingEngine) Name() string {
	return "Recording"
}

// Type implements matrix.Engine.
func (e *RecordingEngine) Type() types.BackendType {
	return types.BackendType("recording")
}

// NewModel implements matrix.Engine.
func (e *RecordingEngine) NewModel(p *types.Polyhedron, opts matrix.ModelOptions) (matrix.Model, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.NewModelCalled++
	e.LastOptions = opts
	if e.NewModelError != nil {
		return nil, e.NewModelError
	}
	return &recordingModel{engine: e}, nil
}

type recordingModel struct {
	engine *RecordingEngine
}

func (m *recordingModel) SetObjective(coeffs []float64, dir types.Direction) error {
	e := m.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	e.SetObjectives = append(e.SetObjectives, append([]float64(nil), coeffs...))
	e.Directions = append(e.Directions, dir)
	return nil
}

func (m *recordingModel) Solve(ctx context.Context) (matrix.Result, error) {
	e := m.engine
	e.mu.Lock()
	call := e.SolveCalled
	e.SolveCalled++
	panicNow := e.SolvePanic
	var err error
	if call < len(e.SolveErrors) {
		err = e.SolveErrors[call]
	}
	var res matrix.Result
	if len(e.Results) > 0 {
		if call < len(e.Results) {
			res = e.Results[call]
		} else {
			res = e.Results[len(e.Results)-1]
		}
	}
	e.mu.Unlock()

	if panicNow {
		panic("scripted engine panic")
	}
	return res, err
}

func (m *recordingModel) Release() {
	m.engine.mu.Lock()
	m.engine.ReleaseCalled++
	m.engine.mu.Unlock()
}

// BruteForceEngine is a matrix.Engine for tests that actually solves tiny
// integer problems by enumerating every point of the bound box and checking
// Ax <= b. It exists so scenario tests can assert real optima without a
// native engine. Duplicate (row, col) entries are summed.
type BruteForceEngine struct{}

// Name implements matrix.Engine.
func (BruteForceEngine) Name() string {
	return "BruteForce"
}

// Type implements matrix.Engine.
func (BruteForceEngine) Type() types.BackendType {
	return types.BackendType("bruteforce")
}

// NewModel implements matrix.Engine.
func (BruteForceEngine) NewModel(p *types.Polyhedron, opts matrix.ModelOptions) (matrix.Model, error) {
	points := 1
	for _, v := range p.Variables {
		span := int(v.Bound.Upper-v.Bound.Lower) + 1
		points *= span
		if points > 1_000_000 {
			return nil, errors.New("bound box too large for brute force")
		}
	}
	return &bruteForceModel{p: p}, nil
}

type bruteForceModel struct {
	p        *types.Polyhedron
	coeffs   []float64
	maximize bool
	released bool
}

func (m *bruteForceModel) SetObjective(coeffs []float64, dir types.Direction) error {
	m.coeffs = append([]float64(nil), coeffs...)
	m.maximize = dir == types.DirectionMaximize
	return nil
}

func (m *bruteForceModel) Solve(ctx context.Context) (matrix.Result, error) {
	if m.released {
		return matrix.Result{}, errors.New("solve on released model")
	}
	p := m.p
	point := make([]int64, len(p.Variables))
	for j, v := range p.Variables {
		point[j] = v.Bound.Lower
	}

	var best []int64
	var bestObj float64
	for {
		if m.feasible(point) {
			obj := 0.0
			for j, c := range m.coeffs {
				obj += c * float64(point[j])
			}
			better := best == nil ||
				(m.maximize && obj > bestObj) ||
				(!m.maximize && obj < bestObj)
			if better {
				best = append([]int64(nil), point...)
				bestObj = obj
			}
		}
		if !m.advance(point) {
			break
		}
	}

	if best == nil {
		return matrix.Result{
			Status:  types.StatusInfeasible,
			Message: "no feasible point in bound box",
		}, nil
	}
	values := make(map[int]int64, len(best))
	for j, v := range best {
		values[j] = v
	}
	return matrix.Result{
		Status:    types.StatusOptimal,
		Objective: bestObj,
		Values:    values,
	}, nil
}

func (m *bruteForceModel) feasible(point []int64) bool {
	p := m.p
	lhs := make([]int64, len(p.B))
	for k, r := range p.A.Rows {
		lhs[r] += p.A.Vals[k] * point[p.A.Cols[k]]
	}
	for i, b := range p.B {
		if lhs[i] > b {
			return false
		}
	}
	return true
}

// advance steps the point odometer-style through the bound box; it returns
// false once every point has been visited.
func (m *bruteForceModel) advance(point []int64) bool {
	for j := 0; j < len(point); j++ {
		if point[j] < m.p.Variables[j].Bound.Upper {
			point[j]++
			return true
		}
		point[j] = m.p.Variables[j].Bound.Lower
	}
	return false
}

func (m *bruteForceModel) Release() {
	m.released = true
}
