// Package engine implements ingredient resolution and quantity
// reconciliation: quantity parsing, unit conversion, fuzzy name matching
// against a pantry inventory, availability resolution and grocery-list
// consolidation. Every operation is a pure function over its inputs plus
// static lookup tables; nothing here performs I/O or holds state.
package engine

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ParsedAmount is the result of parsing a free-text quantity string.
// UnitHint carries whatever trailed the numeric run ("cups", "g"); it is a
// raw string, not guaranteed to name a known unit.
type ParsedAmount struct {
	Value    float64
	UnitHint string
}

var (
	// Splits a leading numeric run (digits, fractions, ranges, decimals)
	// from a trailing unit hint.
	amountRe = regexp.MustCompile(`^([0-9.][0-9 .,/\x{2013}-]*)(.*)$`)
	mixedRe  = regexp.MustCompile(`^([0-9]+)\s+([0-9]+)/([0-9]+)$`)
	fracRe   = regexp.MustCompile(`^([0-9]+)/([0-9]+)$`)
	rangeRe  = regexp.MustCompile(`^(.+?)\s*[-\x{2013}]\s*(.+)$`)
)

// ParseAmount converts a quantity string into a numeric value plus an
// optional unit hint. Accepted forms: integers ("2"), decimals ("1.5",
// "1,5"), simple fractions ("1/2"), mixed numbers ("1 1/2") and ranges
// ("1-2", "1–2"), which resolve to the arithmetic mean of the bounds.
// Malformed input (empty, non-numeric, zero denominator) yields value 0;
// callers treat a zero quantity as the defined fallback, never an error.
func ParseAmount(text string) ParsedAmount {
	text = strings.TrimSpace(text)
	if text == "" {
		return ParsedAmount{}
	}

	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		return ParsedAmount{}
	}
	numeric := strings.TrimSpace(m[1])
	hint := strings.TrimSpace(m[2])

	value, ok := parseNumericRun(numeric)
	if !ok {
		return ParsedAmount{UnitHint: hint}
	}
	return ParsedAmount{Value: value, UnitHint: hint}
}

// parseNumericRun handles a numeric run that may be a range of two bounds.
func parseNumericRun(s string) (float64, bool) {
	if m := rangeRe.FindStringSubmatch(s); m != nil {
		lo, okLo := parseNumber(strings.TrimSpace(m[1]))
		hi, okHi := parseNumber(strings.TrimSpace(m[2]))
		if okLo && okHi {
			return (lo + hi) / 2, true
		}
		return 0, false
	}
	return parseNumber(s)
}

// parseNumber handles a single number: mixed, fraction or decimal.
// Fractions go through big.Rat so "1/3" style values stay exact until the
// final float conversion; 3 decimal places is all this domain needs.
func parseNumber(s string) (float64, bool) {
	if m := mixedRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseInt(m[1], 10, 64)
		frac, ok := ratValue(m[2], m[3])
		if !ok {
			return 0, false
		}
		return float64(whole) + frac, true
	}
	if m := fracRe.FindStringSubmatch(s); m != nil {
		return ratValue(m[1], m[2])
	}

	// Decimal comma is common in pasted European recipes.
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func ratValue(num, den string) (float64, bool) {
	n, _ := strconv.ParseInt(num, 10, 64)
	d, _ := strconv.ParseInt(den, 10, 64)
	if d == 0 {
		return 0, false
	}
	f, _ := new(big.Rat).SetFrac64(n, d).Float64()
	return f, true
}

// FormatAmount is the inverse of ParseAmount for plain values: up to three
// decimal places with trailing zeros trimmed, so parsed values survive a
// format/parse round trip at culinary precision.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// FormatConverted rounds a converted value to the display precision tier
// used across the product: 3 decimals below 0.01, 2 below 1, 1 below 100,
// whole numbers above. Trailing zeros are trimmed after rounding.
func FormatConverted(v float64) string {
	av := math.Abs(v)
	var s string
	switch {
	case av == 0:
		return "0"
	case av < 0.01:
		s = strconv.FormatFloat(v, 'f', 3, 64)
	case av < 1:
		s = strconv.FormatFloat(v, 'f', 2, 64)
	case av < 100:
		s = strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
