package engine

import (
	"strings"

	"larder/internal/models"
)

// AvailabilityResult reports whether an inventory covers a requested
// quantity. Indeterminate is set when a match was found but the two units
// cannot be reconciled (unknown strings or different measure classes); it is
// distinct from both sufficient and insufficient and callers must treat it
// as its own outcome. Remaining is the raw difference — it may be negative,
// and callers clamp to zero for display.
type AvailabilityResult struct {
	Match         MatchResult
	Sufficient    bool
	Indeterminate bool
	Remaining     *models.Quantity
}

// Outcome labels an AvailabilityResult for logging and metrics.
func (r AvailabilityResult) Outcome() string {
	switch {
	case r.Match.Kind == MatchNone:
		return "no_match"
	case r.Indeterminate:
		return "indeterminate"
	case r.Sufficient:
		return "sufficient"
	default:
		return "insufficient"
	}
}

// Resolver decides ingredient availability. Optimistic controls the legacy
// behavior of assuming sufficiency when a matched entry's unit cannot be
// reconciled with the request's; the result is flagged Indeterminate either
// way so callers can see the assumption being made.
type Resolver struct {
	Optimistic bool
}

// NewResolver returns a resolver with the legacy optimistic fallback on.
func NewResolver() Resolver {
	return Resolver{Optimistic: true}
}

// Resolve matches a request against the inventory and compares quantities.
// With no requested quantity a match alone is sufficient and Remaining
// reports the current stock as informational. When units differ but share a
// measure class, the stock is converted into the request's unit before
// comparison, so Remaining comes back in the unit the caller asked in.
func (r Resolver) Resolve(req models.IngredientRequest, inventory []models.InventoryEntry) AvailabilityResult {
	match := FindMatch(req.Name, inventory)
	if match.Kind == MatchNone {
		return AvailabilityResult{Match: match}
	}
	entry := match.Entry

	if req.Quantity == nil {
		return AvailabilityResult{
			Match:      match,
			Sufficient: true,
			Remaining:  &models.Quantity{Value: entry.Quantity, Unit: entry.Unit},
		}
	}
	need := *req.Quantity

	// Identical unit strings compare directly, known or not ("handful"
	// against "handful" is fine).
	haveRaw := strings.ToLower(strings.TrimSpace(entry.Unit))
	needRaw := strings.ToLower(strings.TrimSpace(need.Unit))
	if haveRaw == needRaw {
		return AvailabilityResult{
			Match:      match,
			Sufficient: entry.Quantity >= need.Value,
			Remaining:  &models.Quantity{Value: entry.Quantity - need.Value, Unit: entry.Unit},
		}
	}

	haveUnit, okHave := ToCanonical(entry.Unit)
	needUnit, okNeed := ToCanonical(need.Unit)
	if okHave && okNeed {
		if converted, ok := Convert(entry.Quantity, haveUnit, needUnit); ok {
			return AvailabilityResult{
				Match:      match,
				Sufficient: converted >= need.Value,
				Remaining:  &models.Quantity{Value: converted - need.Value, Unit: need.Unit},
			}
		}
	}

	return AvailabilityResult{
		Match:         match,
		Sufficient:    r.Optimistic,
		Indeterminate: true,
	}
}

// Resolve runs a request through the default optimistic resolver.
func Resolve(req models.IngredientRequest, inventory []models.InventoryEntry) AvailabilityResult {
	return NewResolver().Resolve(req, inventory)
}
