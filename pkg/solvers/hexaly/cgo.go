//go:build hexaly

package hexaly

/*
#cgo LDFLAGS: -lhexaly_wrapper -lhexaly
#include <stdlib.h>
#include "hexaly_wrapper.h"
*/
import "C"

import (
	"context"
	"fmt"
)

func available() error {
	return nil
}

func newOptimizer() (Optimizer, error) {
	env := C.hxw_create_optimizer()
	if env == nil {
		return nil, fmt.Errorf("failed to create Hexaly environment (license?)")
	}
	return &optimizer{env: env, model: C.hxw_get_model(env)}, nil
}

type optimizer struct {
	env   C.HxOptimizerWrapper
	model C.HxModelWrapper
}

type nativeExpr struct {
	ptr C.HxExprWrapper
}

func (o *optimizer) expr(e Expr) C.HxExprWrapper {
	return e.(nativeExpr).ptr
}

func (o *optimizer) IntVar(lower, upper int64) Expr {
	return nativeExpr{ptr: C.hxw_model_int(o.model, C.int64_t(lower), C.int64_t(upper))}
}

func (o *optimizer) Constant(value int64) Expr {
	return nativeExpr{ptr: C.hxw_model_scalar(o.model, C.int64_t(value))}
}

func (o *optimizer) Sum(operands ...Expr) Expr {
	sum := C.hxw_model_sum(o.model)
	for _, operand := range operands {
		C.hxw_expr_add_operand(sum, o.expr(operand))
	}
	return nativeExpr{ptr: sum}
}

func (o *optimizer) Prod(operands ...Expr) Expr {
	prod := C.hxw_model_prod(o.model)
	for _, operand := range operands {
		C.hxw_expr_add_operand(prod, o.expr(operand))
	}
	return nativeExpr{ptr: prod}
}

func (o *optimizer) Leq(left, right Expr) Expr {
	return nativeExpr{ptr: C.hxw_expr_leq(o.model, o.expr(left), o.expr(right))}
}

func (o *optimizer) AddConstraint(constraint Expr) {
	C.hxw_model_add_constraint(o.model, o.expr(constraint))
}

func (o *optimizer) Minimize(objective Expr) {
	C.hxw_model_minimize(o.model, o.expr(objective))
}

func (o *optimizer) Maximize(objective Expr) {
	C.hxw_model_maximize(o.model, o.expr(objective))
}

func (o *optimizer) CloseModel() {
	C.hxw_model_close(o.model)
}

func (o *optimizer) SetVerbosity(verbosity int) {
	C.hxw_param_set_verbosity(C.hxw_get_param(o.env), C.int32_t(verbosity))
}

func (o *optimizer) SetTimeLimit(seconds int) {
	C.hxw_param_set_time_limit(C.hxw_get_param(o.env), C.int32_t(seconds))
}

func (o *optimizer) SetThreads(n int) {
	C.hxw_param_set_nb_threads(C.hxw_get_param(o.env), C.int32_t(n))
}

func (o *optimizer) Solve(ctx context.Context) (SolutionStatus, error) {
	if err := ctx.Err(); err != nil {
		return SolutionNoSolution, err
	}
	C.hxw_solve(o.env)
	solution := C.hxw_get_solution(o.env)
	return SolutionStatus(C.hxw_solution_get_status(solution)), nil
}

func (o *optimizer) IntValue(expr Expr) int64 {
	solution := C.hxw_get_solution(o.env)
	return int64(C.hxw_solution_get_int_value(solution, o.expr(expr)))
}

func (o *optimizer) Close() {
	if o.env != nil {
		C.hxw_delete_optimizer(o.env)
		o.env = nil
	}
}
