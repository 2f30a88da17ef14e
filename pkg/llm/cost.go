package llm

import (
	"fmt"
	"sync"
)

// CostAccumulator tracks accumulated LLM spend for one job run against a
// dollar cap. Cost is only charged on successful calls; a charge that would
// exceed the cap is rejected whole, leaving the total untouched.
type CostAccumulator struct {
	mu    sync.Mutex
	cap   float64
	total float64
}

// NewCostAccumulator creates an accumulator with the given cap. A cap of 0
// or less means unlimited.
func NewCostAccumulator(costCap float64) *CostAccumulator {
	return &CostAccumulator{cap: costCap}
}

// Seed records spend carried over from earlier runs of the same job. Seeded
// spend counts against the cap but is never rejected; it already happened.
func (a *CostAccumulator) Seed(cost float64) {
	a.mu.Lock()
	a.total += cost
	a.mu.Unlock()
}

// Add charges cost to the accumulator. Returns a CostCapExceeded safety
// error, and records nothing, when the charge would cross the cap.
func (a *CostAccumulator) Add(cost float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cap > 0 && a.total+cost > a.cap {
		return NewSafetyError(SafetyCostCapExceeded,
			fmt.Errorf("charge of $%.4f would raise total $%.4f past cap $%.4f", cost, a.total, a.cap))
	}
	a.total += cost
	return nil
}

// Total returns the accumulated spend.
func (a *CostAccumulator) Total() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Exhausted reports whether the cap has been reached. The client refuses to
// issue calls for an exhausted accumulator.
func (a *CostAccumulator) Exhausted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cap > 0 && a.total >= a.cap
}

// Cap returns the configured cap.
func (a *CostAccumulator) Cap() float64 {
	return a.cap
}
