package domain

import (
	"math"
	"strconv"
)

// DefaultByteBudget is the maximum serialised length, in bytes, for a
// displayed numeric string.
const DefaultByteBudget = 8

// FormatWithBudget produces the shortest faithful decimal representation
// of v that does not exceed maxBytes when encoded as text. Invalid input
// (NaN) yields the empty string.
//
// The walk: start from the canonical decimal form; if over budget, reduce
// fixed-point precision from 10 down to 0, re-parsing at each step to
// strip trailing zeros; then fall back to exponential notation with two
// fraction digits; finally hard-truncate to maxBytes-1 characters. The
// truncated fallback is display-only and not guaranteed to remain a
// syntactically valid number.
func FormatWithBudget(v float64, maxBytes int) string {
	if math.IsNaN(v) {
		return ""
	}

	s := FormatNumber(v)
	if len(s) <= maxBytes {
		return s
	}
	return reduceToBudget(v, maxBytes)
}

// ClampNumericText applies the byte budget to user-entered text rather
// than a computed result. Transient non-numeric text ("", "-", ".") passes
// through unchanged so typing can continue; other unparseable text yields
// the empty string; text already within budget is returned as typed.
func ClampNumericText(raw string, maxBytes int) string {
	switch raw {
	case "", "-", ".":
		return raw
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	if len(raw) <= maxBytes {
		return raw
	}
	return reduceToBudget(v, maxBytes)
}

// reduceToBudget runs the precision-reduction walk for a value already
// known to overflow the budget in its default form.
func reduceToBudget(v float64, maxBytes int) string {
	for prec := 10; prec >= 0; prec-- {
		fixed := strconv.FormatFloat(v, 'f', prec, 64)
		parsed, err := strconv.ParseFloat(fixed, 64)
		if err != nil {
			continue
		}
		// Re-stringify to strip trailing zeros.
		s := FormatNumber(parsed)
		if len(s) <= maxBytes {
			return s
		}
	}

	s := strconv.FormatFloat(v, 'e', 2, 64)
	if len(s) <= maxBytes {
		return s
	}

	if maxBytes <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > maxBytes-1 {
		runes = runes[:maxBytes-1]
	}
	return string(runes)
}
