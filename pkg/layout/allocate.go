// Package layout implements the floor-plan layout engine: area allocation,
// room-list expansion, building-envelope sizing, spatial placement,
// adjacency annotation and opening placement.
//
// The engine is deterministic. No randomness is used anywhere, so identical
// inputs always produce identical geometry. Every stage reads only its
// explicit inputs and the immutable knowledge base.
package layout

import "github.com/floorforge/floorforge/pkg/knowledge"

// Allocation is the absolute floor area budget per space category, in
// square feet.
type Allocation struct {
	Living      float64
	Kitchen     float64
	Dining      float64
	Bedrooms    float64
	Bathrooms   float64
	Circulation float64
	Storage     float64
}

// Total returns the sum of all category budgets.
func (a Allocation) Total() float64 {
	return a.Living + a.Kitchen + a.Dining + a.Bedrooms +
		a.Bathrooms + a.Circulation + a.Storage
}

// Allocate splits totalSqFt across space categories using the style's share
// table, adjusted for the room program: many bedrooms shift area from
// living and circulation into the bedroom budget, many bathrooms shift
// area out of storage.
//
// Shares are not clamped. Extreme programs (e.g. ten bedrooms on a small
// plan) can drive circulation or storage negative; downstream stages floor
// individual rooms at the minimum room size instead.
func Allocate(totalSqFt float64, bedrooms, bathrooms int, style string) Allocation {
	shares := knowledge.AllocationShares(style)

	if bedrooms > 3 {
		shares.Bedrooms += 0.05
		shares.Living -= 0.03
		shares.Circulation -= 0.02
	}
	if bathrooms > 2 {
		shares.Bathrooms += 0.03
		shares.Storage -= 0.03
	}

	return Allocation{
		Living:      totalSqFt * shares.Living,
		Kitchen:     totalSqFt * shares.Kitchen,
		Dining:      totalSqFt * shares.Dining,
		Bedrooms:    totalSqFt * shares.Bedrooms,
		Bathrooms:   totalSqFt * shares.Bathrooms,
		Circulation: totalSqFt * shares.Circulation,
		Storage:     totalSqFt * shares.Storage,
	}
}
