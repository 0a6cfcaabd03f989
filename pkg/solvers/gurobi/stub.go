//go:build !gurobi

package gurobi

import (
	"errors"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
)

func newEngine(licenseFile string) (matrix.Engine, error) {
	return nil, errors.New("this binary was built without Gurobi support (build with -tags gurobi)")
}
