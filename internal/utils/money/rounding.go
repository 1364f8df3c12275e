// Package money holds the shared rounding laws. All monetary rounding in
// the engine goes through these helpers so the "round half away from zero,
// at N decimal places" rule is applied in exactly one place.
package money

import (
	"fmt"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

var pointNinetyNine = decimal.New(99, -2)

// Round applies the engine's rounding law: half away from zero, at the
// given number of decimal places.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// ApplyRule rounds a derived price according to a pricing rounding rule.
// The psychological rule intentionally ignores currency precision: it
// floors to the integer part and appends a fixed .99 suffix.
func ApplyRule(d decimal.Decimal, rule domain.RoundingRule, places int32) (decimal.Decimal, error) {
	switch rule {
	case domain.RoundNone:
		return d.Truncate(places), nil
	case domain.RoundUp:
		return d.RoundCeil(places), nil
	case domain.RoundDown:
		return d.RoundFloor(places), nil
	case domain.RoundNearest:
		return d.Round(places), nil
	case domain.RoundPsychological:
		return d.Floor().Add(pointNinetyNine), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown rounding rule %q", rule)
	}
}
