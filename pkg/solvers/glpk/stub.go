//go:build !glpk

package glpk

import (
	"errors"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
)

func newEngine() (matrix.Engine, error) {
	return nil, errors.New("this binary was built without GLPK support (build with -tags glpk)")
}
