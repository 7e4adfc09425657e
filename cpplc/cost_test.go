package cpplc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlroute/cpplc"
)

func TestCostFuncs_BaseAtZeroLoad(t *testing.T) {
	// Every model must collapse to the classical cost on an empty vehicle.
	funcs := map[string]cpplc.CostFunc{
		"linear":    cpplc.Linear(0.5, 10),
		"quadratic": cpplc.Quadratic(0.8, 10),
		"piecewise": cpplc.Piecewise(10),
		"fuel":      cpplc.Fuel(50, 0.8),
	}
	for name, f := range funcs {
		assert.Equal(t, 7.0, f(7, 0), "%s must price load 0 at base", name)
	}
}

func TestCostFuncs_MonotoneInLoad(t *testing.T) {
	funcs := map[string]cpplc.CostFunc{
		"linear":    cpplc.Linear(0.5, 10),
		"quadratic": cpplc.Quadratic(0.8, 10),
		"piecewise": cpplc.Piecewise(10),
		"fuel":      cpplc.Fuel(50, 0.8),
	}
	for name, f := range funcs {
		prev := f(3, 0)
		for load := 1.0; load <= 12; load++ {
			cur := f(3, load)
			assert.GreaterOrEqual(t, cur, prev, "%s must not decrease with load", name)
			prev = cur
		}
	}
}

func TestCostFuncs_KnownValues(t *testing.T) {
	// Linear: 4·(1 + 0.5·5/10) = 5.
	assert.InDelta(t, 5.0, cpplc.Linear(0.5, 10)(4, 5), 1e-12)

	// Quadratic: 4·(1 + 1·(5/10)²) = 5.
	assert.InDelta(t, 5.0, cpplc.Quadratic(1, 10)(4, 5), 1e-12)

	// Fuel at β=1 is plain gross/empty weight ratio: 10·(100/50) = 20.
	assert.InDelta(t, 20.0, cpplc.Fuel(50, 1)(10, 50), 1e-12)

	// Piecewise bands: fill 0.2 → rate 0.2, fill 0.5 → 0.5, fill 0.9 → 1.0.
	pw := cpplc.Piecewise(10)
	assert.InDelta(t, 10*(1+0.2*0.2), pw(10, 2), 1e-12)
	assert.InDelta(t, 10*(1+0.5*0.5), pw(10, 5), 1e-12)
	assert.InDelta(t, 10*(1+1.0*0.9), pw(10, 9), 1e-12)
}

func TestCostFuncs_InfiniteCapacityIsClassical(t *testing.T) {
	f := cpplc.Linear(0.5, math.Inf(1))
	assert.Equal(t, 4.0, f(4, 1e9))
}
