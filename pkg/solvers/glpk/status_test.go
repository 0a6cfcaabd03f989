package glpk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cecil-the-coder/lp-solver-kit/pkg/types"
)

func TestStatusFromMIP(t *testing.T) {
	tests := []struct {
		name string
		code int
		want types.Status
	}{
		{"undefined", glpUndef, types.StatusUndefined},
		{"feasible", glpFeas, types.StatusFeasible},
		{"infeasible", glpInfeas, types.StatusInfeasible},
		{"no feasible", glpNofeas, types.StatusNoFeasible},
		{"optimal", glpOpt, types.StatusOptimal},
		{"unbounded", glpUnbnd, types.StatusUnbounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromMIP(tt.code))
		})
	}
}

func TestStatusFromMIP_UnknownCodes(t *testing.T) {
	for _, code := range []int{0, 7, -1, 100} {
		assert.Equal(t, types.StatusUndefined, statusFromMIP(code), "code %d", code)
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "solution is undefined", statusMessage(types.StatusUndefined))
	assert.Equal(t, "no feasible solution exists", statusMessage(types.StatusNoFeasible))
	assert.Empty(t, statusMessage(types.StatusOptimal))
	assert.Empty(t, statusMessage(types.StatusFeasible))
}
