// Package asset defines the instruments a simulated agent can hold.
package asset

import "github.com/shopspring/decimal"

// Asset is anything an agent can own besides cash. Implementations evolve
// one day at a time: the engine calls Step exactly once per simulated day,
// starting on the acquisition day.
type Asset interface {
	// Name labels the asset in trade histories. It carries the asset's
	// parameters, so identically configured instruments share a name.
	Name() string
	// Value is the current liquidation value.
	Value() decimal.Decimal
	// Principal is the amount originally invested.
	Principal() decimal.Decimal
	// Age is the number of full days since acquisition.
	Age() int
	// Step advances the asset by one simulated day.
	Step()
	// Sellable reports whether the asset may be liquidated today. The
	// engine trusts sell decisions without re-checking; honest policies
	// consult it.
	Sellable() bool
	// Reset restores the just-acquired state so a scenario can be re-run
	// from scratch. Never called during a run.
	Reset()
}
