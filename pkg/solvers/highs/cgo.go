//go:build highs

package highs

/*
#cgo LDFLAGS: -lhighs
#include <stdlib.h>
#include <interfaces/highs_c_api.h>
*/
import "C"

import (
	"context"
	"fmt"
	"math"
	"unsafe"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

type engine struct{}

func newEngine() (matrix.Engine, error) {
	return engine{}, nil
}

func (engine) Name() string {
	return "HiGHS"
}

func (engine) Type() types.BackendType {
	return types.BackendTypeHiGHS
}

func setStringOption(h unsafe.Pointer, name, value string) {
	cName := C.CString(name)
	cValue := C.CString(value)
	C.Highs_setStringOptionValue(h, cName, cValue)
	C.free(unsafe.Pointer(cName))
	C.free(unsafe.Pointer(cValue))
}

func setBoolOption(h unsafe.Pointer, name string, value bool) {
	cName := C.CString(name)
	v := C.HighsInt(0)
	if value {
		v = 1
	}
	C.Highs_setBoolOptionValue(h, cName, v)
	C.free(unsafe.Pointer(cName))
}

func setDoubleOption(h unsafe.Pointer, name string, value float64) {
	cName := C.CString(name)
	C.Highs_setDoubleOptionValue(h, cName, C.double(value))
	C.free(unsafe.Pointer(cName))
}

func setIntOption(h unsafe.Pointer, name string, value int) {
	cName := C.CString(name)
	C.Highs_setIntOptionValue(h, cName, C.HighsInt(value))
	C.free(unsafe.Pointer(cName))
}

// NewModel uploads the polyhedron into a fresh Highs instance: one bounded
// integer column per variable, one upper-bounded row per constraint.
func (engine) NewModel(p *types.Polyhedron, opts matrix.ModelOptions) (matrix.Model, error) {
	h := C.Highs_create()
	if h == nil {
		return nil, fmt.Errorf("Highs_create returned NULL")
	}

	setBoolOption(h, "output_flag", opts.TermOutput)
	if opts.Presolve {
		setStringOption(h, "presolve", "on")
	} else {
		setStringOption(h, "presolve", "off")
	}
	if opts.TimeLimit > 0 {
		setDoubleOption(h, "time_limit", opts.TimeLimit.Seconds())
	}
	if opts.Threads > 0 {
		setIntOption(h, "threads", opts.Threads)
	}

	ncols := len(p.Variables)
	lower := make([]C.double, ncols)
	upper := make([]C.double, ncols)
	fixed := make(map[int]int64)
	for j, v := range p.Variables {
		lower[j] = C.double(v.Bound.Lower)
		upper[j] = C.double(v.Bound.Upper)
		if v.Bound.IsFixed() {
			fixed[j] = v.Bound.Lower
		}
	}
	if status := C.Highs_addVars(h, C.HighsInt(ncols), &lower[0], &upper[0]); status != 0 && status != 1 {
		C.Highs_destroy(h)
		return nil, fmt.Errorf("Highs_addVars failed with status %d", int(status))
	}
	integrality := make([]C.HighsInt, ncols)
	for j := range integrality {
		integrality[j] = C.kHighsVarTypeInteger
	}
	C.Highs_changeColsIntegralityByRange(h, 0, C.HighsInt(ncols-1), &integrality[0])

	// Group the coordinate entries by row; HiGHS wants one sparse row per
	// Highs_addRow call.
	rowCols := make([][]C.HighsInt, len(p.B))
	rowVals := make([][]C.double, len(p.B))
	for k, r := range p.A.Rows {
		rowCols[r] = append(rowCols[r], C.HighsInt(p.A.Cols[k]))
		rowVals[r] = append(rowVals[r], C.double(p.A.Vals[k]))
	}
	negInf := C.double(math.Inf(-1))
	for i, b := range p.B {
		var index *C.HighsInt
		var value *C.double
		if len(rowCols[i]) > 0 {
			index = &rowCols[i][0]
			value = &rowVals[i][0]
		}
		if status := C.Highs_addRow(h, negInf, C.double(b), C.HighsInt(len(rowCols[i])), index, value); status != 0 && status != 1 {
			C.Highs_destroy(h)
			return nil, fmt.Errorf("Highs_addRow failed with status %d", int(status))
		}
	}

	return &model{h: h, ncols: ncols, fixed: fixed}, nil
}

type model struct {
	h     unsafe.Pointer
	ncols int
	fixed map[int]int64
}

func (m *model) SetObjective(coeffs []float64, dir types.Direction) error {
	sense := C.HighsInt(C.kHighsObjSenseMinimize)
	if dir == types.DirectionMaximize {
		sense = C.HighsInt(C.kHighsObjSenseMaximize)
	}
	if status := C.Highs_changeObjectiveSense(m.h, sense); status != 0 && status != 1 {
		return fmt.Errorf("Highs_changeObjectiveSense failed with status %d", int(status))
	}
	costs := make([]C.double, len(coeffs))
	for j, c := range coeffs {
		costs[j] = C.double(c)
	}
	if status := C.Highs_changeColsCostByRange(m.h, 0, C.HighsInt(len(coeffs)-1), &costs[0]); status != 0 && status != 1 {
		return fmt.Errorf("Highs_changeColsCostByRange failed with status %d", int(status))
	}
	return nil
}

// Solve runs Highs_run. HiGHS offers no cooperative interrupt through the C
// API, so ctx is only checked before the native call; a timeout is enforced
// through the engine's own time_limit option.
func (m *model) Solve(ctx context.Context) (matrix.Result, error) {
	if err := ctx.Err(); err != nil {
		return matrix.Result{Status: types.StatusUndefined, Fixed: m.fixed}, err
	}

	runStatus := C.Highs_run(m.h)
	if runStatus != 0 && runStatus != 1 {
		return matrix.Result{Status: types.StatusSimplexFailed, Fixed: m.fixed},
			fmt.Errorf("HiGHS solver failed with status: %d", int(runStatus))
	}

	status := statusFromModel(int(C.Highs_getModelStatus(m.h)))
	res := matrix.Result{Status: status, Fixed: m.fixed}
	if status.HasSolution() {
		// Limit statuses map to Feasible, but a limit can fire before any
		// primal incumbent exists. kHighsSolutionStatusFeasible is 2.
		var primal C.HighsInt
		cPrimal := C.CString("primal_solution_status")
		C.Highs_getIntInfoValue(m.h, cPrimal, &primal)
		C.free(unsafe.Pointer(cPrimal))
		if int(primal) != 2 {
			res.Status = types.StatusUndefined
			res.Message = "stopped before finding a feasible incumbent"
			return res, nil
		}
		res.Objective = float64(C.Highs_getObjectiveValue(m.h))
		colValues := make([]C.double, m.ncols)
		C.Highs_getSolution(m.h, &colValues[0], nil, nil, nil)
		res.Values = make(map[int]int64, m.ncols)
		for j := 0; j < m.ncols; j++ {
			res.Values[j] = int64(math.Round(float64(colValues[j])))
		}
	}
	return res, nil
}

func (m *model) Release() {
	if m.h != nil {
		C.Highs_destroy(m.h)
		m.h = nil
	}
}
