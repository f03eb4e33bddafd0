package engine

import (
	"fmt"
	"strings"

	"larder/internal/models"
)

// normalizeUnit reduces a raw unit string to its canonical identifier when
// the table knows it, or its lower-cased trimmed form when it does not.
func normalizeUnit(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if u, ok := ToCanonical(s); ok {
		return string(u)
	}
	return s
}

// Consolidate merges duplicate grocery entries. Entries group by
// (normalized name, normalized unit, completed flag); only groups with a
// non-empty normalized unit merge — summing across implicit units would be
// nonsense, so unitless entries pass through untouched. The first entry of
// each group keeps its identity and position; absorbed duplicates add their
// parsed amounts, and the group keeps the longest unit string seen as the
// most descriptive one. The input slice is never modified.
func Consolidate(entries []models.GroceryEntry) []models.GroceryEntry {
	out := make([]models.GroceryEntry, 0, len(entries))

	type group struct {
		pos    int
		total  float64
		unit   string
		merged bool
	}
	groups := make(map[string]*group)

	for _, e := range entries {
		unit := normalizeUnit(e.Unit)
		if unit == "" {
			out = append(out, e)
			continue
		}
		key := fmt.Sprintf("%s\x00%s\x00%t", NormalizeName(e.Name), unit, e.Completed)

		g, ok := groups[key]
		if !ok {
			out = append(out, e)
			groups[key] = &group{
				pos:   len(out) - 1,
				total: ParseAmount(e.Amount).Value,
				unit:  e.Unit,
			}
			continue
		}
		g.total += ParseAmount(e.Amount).Value
		g.merged = true
		if len(e.Unit) > len(g.unit) {
			g.unit = e.Unit
		}
	}

	for _, g := range groups {
		if !g.merged {
			continue
		}
		out[g.pos].Amount = FormatConverted(g.total)
		out[g.pos].Unit = g.unit
	}
	return out
}

// AddOrMerge appends a single new item to a live list, merging into the
// first pending entry with the same normalized name. Unlike Consolidate,
// a missing unit on either side is treated as compatible: the amounts sum
// and the merged entry keeps whichever unit was present. Units that differ
// but share a measure class reconcile by conversion into the existing
// entry's unit. Units that are both present and irreconcilable fall back to
// concatenating the two amounts ("500 g + 2 cups") rather than discarding
// the new value. Returns a new slice; the input is never modified.
func AddOrMerge(list []models.GroceryEntry, item models.GroceryEntry) []models.GroceryEntry {
	out := make([]models.GroceryEntry, len(list))
	copy(out, list)

	name := NormalizeName(item.Name)
	for i := range out {
		if out[i].Completed || NormalizeName(out[i].Name) != name {
			continue
		}
		out[i] = mergeEntry(out[i], item)
		return out
	}
	return append(out, item)
}

// mergeEntry folds item into base, reconciling amounts and units.
func mergeEntry(base, item models.GroceryEntry) models.GroceryEntry {
	baseUnit := normalizeUnit(base.Unit)
	itemUnit := normalizeUnit(item.Unit)
	baseVal := ParseAmount(base.Amount).Value
	itemVal := ParseAmount(item.Amount).Value

	switch {
	case baseUnit == itemUnit:
		base.Amount = FormatConverted(baseVal + itemVal)
		if len(item.Unit) > len(base.Unit) {
			base.Unit = item.Unit
		}
	case baseUnit == "":
		base.Amount = FormatConverted(baseVal + itemVal)
		base.Unit = item.Unit
	case itemUnit == "":
		base.Amount = FormatConverted(baseVal + itemVal)
	default:
		from, okFrom := ToCanonical(item.Unit)
		to, okTo := ToCanonical(base.Unit)
		if okFrom && okTo {
			if converted, ok := Convert(itemVal, from, to); ok {
				base.Amount = FormatConverted(baseVal + converted)
				break
			}
		}
		// Irreconcilable units: keep both amounts visible.
		base.Amount = fmt.Sprintf("%s %s + %s %s",
			strings.TrimSpace(base.Amount), strings.TrimSpace(base.Unit),
			strings.TrimSpace(item.Amount), strings.TrimSpace(item.Unit))
		base.Unit = ""
	}
	return base
}
