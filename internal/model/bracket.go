package model

import "github.com/shopspring/decimal"

// UnboundedUpper marks a bracket with no upper bound (the top bracket
// of a schedule).
var UnboundedUpper = decimal.NewFromInt(-1)

// Bracket is one row of a tax schedule. Incomes in [Lower, Upper] owe
// Base plus Rate applied to the excess over Lower. Both bounds are
// inclusive.
type Bracket struct {
	Status FilingStatus
	Lower  decimal.Decimal
	Upper  decimal.Decimal // UnboundedUpper if open-ended
	Base   decimal.Decimal
	Rate   decimal.Decimal
}

// OpenEnded reports whether the bracket has no upper bound.
func (b Bracket) OpenEnded() bool {
	return b.Upper.Equal(UnboundedUpper)
}

// Contains reports whether income falls within the bracket's bounds.
func (b Bracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Lower) {
		return false
	}
	return b.OpenEnded() || income.LessThanOrEqual(b.Upper)
}

// Tax returns Base + Rate * (income - Lower). The caller is expected to
// have checked Contains first.
func (b Bracket) Tax(income decimal.Decimal) decimal.Decimal {
	return b.Base.Add(income.Sub(b.Lower).Mul(b.Rate))
}
