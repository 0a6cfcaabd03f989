//go:build gurobi

package gurobi

/*
#cgo LDFLAGS: -lgurobi110
#include <stdlib.h>
#include <gurobi_c.h>
*/
import "C"

import (
	"context"
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

type engine struct{}

// newEngine points Gurobi at the configured license once, at backend
// construction; NewModel must not mutate process state because models are
// acquired concurrently.
func newEngine(licenseFile string) (matrix.Engine, error) {
	if licenseFile != "" {
		if err := os.Setenv("GRB_LICENSE_FILE", licenseFile); err != nil {
			return nil, err
		}
	}
	return engine{}, nil
}

func (engine) Name() string {
	return "Gurobi"
}

func (engine) Type() types.BackendType {
	return types.BackendTypeGurobi
}

func envError(env *C.GRBenv, op string, rc C.int) error {
	return fmt.Errorf("%s failed with code %d: %s", op, int(rc), C.GoString(C.GRBgeterrormsg(env)))
}

func setIntParam(env *C.GRBenv, name string, value int) {
	cName := C.CString(name)
	C.GRBsetintparam(env, cName, C.int(value))
	C.free(unsafe.Pointer(cName))
}

func setDblParam(env *C.GRBenv, name string, value float64) {
	cName := C.CString(name)
	C.GRBsetdblparam(env, cName, C.double(value))
	C.free(unsafe.Pointer(cName))
}

// NewModel acquires a Gurobi environment and uploads the polyhedron: one
// bounded integer variable per column, one '<' constraint per row. The
// environment is scoped to the returned model and released with it.
func (engine) NewModel(p *types.Polyhedron, opts matrix.ModelOptions) (matrix.Model, error) {
	var env *C.GRBenv
	if rc := C.GRBemptyenv(&env); rc != 0 {
		return nil, fmt.Errorf("GRBemptyenv failed with code %d", int(rc))
	}
	termOut := 0
	if opts.TermOutput {
		termOut = 1
	}
	setIntParam(env, "OutputFlag", termOut)
	if opts.TimeLimit > 0 {
		setDblParam(env, "TimeLimit", opts.TimeLimit.Seconds())
	}
	if opts.Threads > 0 {
		setIntParam(env, "Threads", opts.Threads)
	}
	if opts.Presolve {
		setIntParam(env, "Presolve", -1) // automatic
	} else {
		setIntParam(env, "Presolve", 0)
	}
	if rc := C.GRBstartenv(env); rc != 0 {
		err := envError(env, "GRBstartenv", rc)
		C.GRBfreeenv(env)
		return nil, err
	}

	ncols := len(p.Variables)
	lb := make([]C.double, ncols)
	ub := make([]C.double, ncols)
	vtype := make([]C.char, ncols)
	fixed := make(map[int]int64)
	for j, v := range p.Variables {
		lb[j] = C.double(v.Bound.Lower)
		ub[j] = C.double(v.Bound.Upper)
		if v.Bound.IsBinary() {
			vtype[j] = C.GRB_BINARY
		} else {
			vtype[j] = C.GRB_INTEGER
		}
		if v.Bound.IsFixed() {
			fixed[j] = v.Bound.Lower
		}
	}

	var mdl *C.GRBmodel
	cName := C.CString("polyhedron")
	rc := C.GRBnewmodel(env, &mdl, cName, C.int(ncols), nil, &lb[0], &ub[0], &vtype[0], nil)
	C.free(unsafe.Pointer(cName))
	if rc != 0 {
		err := envError(env, "GRBnewmodel", rc)
		C.GRBfreeenv(env)
		return nil, err
	}

	// Convert the coordinate entries to CSR, one '<' constraint per row.
	nrows := len(p.B)
	counts := make([]int, nrows)
	for _, r := range p.A.Rows {
		counts[r]++
	}
	cbeg := make([]C.int, nrows)
	next := make([]int, nrows)
	total := 0
	for i := 0; i < nrows; i++ {
		cbeg[i] = C.int(total)
		next[i] = total
		total += counts[i]
	}
	cind := make([]C.int, total)
	cval := make([]C.double, total)
	for k, r := range p.A.Rows {
		cind[next[r]] = C.int(p.A.Cols[k])
		cval[next[r]] = C.double(p.A.Vals[k])
		next[r]++
	}
	senses := make([]C.char, nrows)
	rhs := make([]C.double, nrows)
	for i, b := range p.B {
		senses[i] = C.GRB_LESS_EQUAL
		rhs[i] = C.double(b)
	}
	if rc := C.GRBaddconstrs(mdl, C.int(nrows), C.int(total), &cbeg[0], &cind[0], &cval[0], &senses[0], &rhs[0], nil); rc != 0 {
		err := envError(env, "GRBaddconstrs", rc)
		C.GRBfreemodel(mdl)
		C.GRBfreeenv(env)
		return nil, err
	}

	return &model{env: env, mdl: mdl, ncols: ncols, fixed: fixed}, nil
}

type model struct {
	env   *C.GRBenv
	mdl   *C.GRBmodel
	ncols int
	fixed map[int]int64
}

func (m *model) SetObjective(coeffs []float64, dir types.Direction) error {
	obj := make([]C.double, len(coeffs))
	for j, c := range coeffs {
		obj[j] = C.double(c)
	}
	cObj := C.CString("Obj")
	rc := C.GRBsetdblattrarray(m.mdl, cObj, 0, C.int(len(coeffs)), &obj[0])
	C.free(unsafe.Pointer(cObj))
	if rc != 0 {
		return envError(m.env, "GRBsetdblattrarray(Obj)", rc)
	}
	sense := 1 // minimize
	if dir == types.DirectionMaximize {
		sense = -1
	}
	cSense := C.CString("ModelSense")
	rc = C.GRBsetintattr(m.mdl, cSense, C.int(sense))
	C.free(unsafe.Pointer(cSense))
	if rc != 0 {
		return envError(m.env, "GRBsetintattr(ModelSense)", rc)
	}
	return nil
}

func (m *model) getIntAttr(name string) (int, error) {
	var value C.int
	cName := C.CString(name)
	rc := C.GRBgetintattr(m.mdl, cName, &value)
	C.free(unsafe.Pointer(cName))
	if rc != 0 {
		return 0, envError(m.env, "GRBgetintattr("+name+")", rc)
	}
	return int(value), nil
}

// Solve runs GRBoptimize. Gurobi supports cooperative termination, so a
// watcher goroutine calls GRBterminate when ctx is canceled mid-solve.
func (m *model) Solve(ctx context.Context) (matrix.Result, error) {
	if err := ctx.Err(); err != nil {
		return matrix.Result{Status: types.StatusUndefined, Fixed: m.fixed}, err
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			C.GRBterminate(m.mdl)
		case <-done:
		}
	}()
	rc := C.GRBoptimize(m.mdl)
	close(done)
	if rc != 0 {
		return matrix.Result{Status: types.StatusMIPFailed, Fixed: m.fixed},
			envError(m.env, "GRBoptimize", rc)
	}

	nativeStatus, err := m.getIntAttr("Status")
	if err != nil {
		return matrix.Result{Status: types.StatusMIPFailed, Fixed: m.fixed}, err
	}
	status := statusFromOptimize(nativeStatus)
	res := matrix.Result{Status: status, Fixed: m.fixed}
	if !status.HasSolution() {
		return res, nil
	}

	// Limit statuses map to Feasible, but a limit can fire before any
	// incumbent exists. Without one the Feasible claim is downgraded.
	solCount, err := m.getIntAttr("SolCount")
	if err != nil {
		return res, err
	}
	if solCount == 0 {
		res.Status = types.StatusUndefined
		res.Message = fmt.Sprintf("stopped with status %d before finding an incumbent", nativeStatus)
		return res, nil
	}

	var objVal C.double
	cObjVal := C.CString("ObjVal")
	rc = C.GRBgetdblattr(m.mdl, cObjVal, &objVal)
	C.free(unsafe.Pointer(cObjVal))
	if rc != 0 {
		return res, envError(m.env, "GRBgetdblattr(ObjVal)", rc)
	}
	res.Objective = float64(objVal)

	xs := make([]C.double, m.ncols)
	cX := C.CString("X")
	rc = C.GRBgetdblattrarray(m.mdl, cX, 0, C.int(m.ncols), &xs[0])
	C.free(unsafe.Pointer(cX))
	if rc != 0 {
		return res, envError(m.env, "GRBgetdblattrarray(X)", rc)
	}
	res.Values = make(map[int]int64, m.ncols)
	for j := 0; j < m.ncols; j++ {
		res.Values[j] = int64(math.Round(float64(xs[j])))
	}
	return res, nil
}

func (m *model) Release() {
	if m.mdl != nil {
		C.GRBfreemodel(m.mdl)
		m.mdl = nil
	}
	if m.env != nil {
		C.GRBfreeenv(m.env)
		m.env = nil
	}
}
