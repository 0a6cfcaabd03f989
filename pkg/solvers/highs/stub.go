//go:build !highs

package highs

import (
	"errors"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/solvers/matrix"
)

func newEngine() (matrix.Engine, error) {
	return nil, errors.New("this binary was built without HiGHS support (build with -tags highs)")
}
