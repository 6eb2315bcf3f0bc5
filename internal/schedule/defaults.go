package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/mntax-dev/mntax/internal/model"
)

// DefaultBrackets returns the built-in Minnesota basic tax schedule,
// one bracket group per filing status.
func DefaultBrackets() []model.Bracket {
	var all []model.Bracket
	all = append(all, marriedJointlyBrackets()...)
	all = append(all, marriedSeparatelyBrackets()...)
	all = append(all, singleBrackets()...)
	all = append(all, headOfHouseholdBrackets()...)
	return all
}

func marriedJointlyBrackets() []model.Bracket {
	return []model.Bracket{
		bracket(model.FilingMarriedJointly, "0", "36080", "0", "0.0535"),
		bracket(model.FilingMarriedJointly, "36080", "90000", "1930.28", "0.0705"),
		bracket(model.FilingMarriedJointly, "90000", "143350", "5731.64", "0.0705"),
		bracket(model.FilingMarriedJointly, "143350", "254240", "9492.82", "0.0785"),
		bracket(model.FilingMarriedJointly, "254240", "-1", "18197.69", "0.0985"),
	}
}

func marriedSeparatelyBrackets() []model.Bracket {
	return []model.Bracket{
		bracket(model.FilingMarriedSeparately, "0", "18040", "0", "0.0535"),
		bracket(model.FilingMarriedSeparately, "18040", "71680", "695.14", "0.0705"),
		bracket(model.FilingMarriedSeparately, "71680", "90000", "4746.76", "0.0785"),
		bracket(model.FilingMarriedSeparately, "90000", "127120", "6164.88", "0.0785"),
		bracket(model.FilingMarriedSeparately, "127120", "-1", "9098.80", "0.0985"),
	}
}

func singleBrackets() []model.Bracket {
	return []model.Bracket{
		bracket(model.FilingSingle, "0", "24680", "0", "0.0535"),
		bracket(model.FilingSingle, "24680", "81080", "1320.38", "0.0705"),
		bracket(model.FilingSingle, "81080", "90000", "5296.58", "0.0785"),
		bracket(model.FilingSingle, "90000", "152540", "59996.80", "0.0785"),
		bracket(model.FilingSingle, "152540", "-1", "10906.19", "0.0985"),
	}
}

func headOfHouseholdBrackets() []model.Bracket {
	return []model.Bracket{
		bracket(model.FilingHeadOfHousehold, "0", "30390", "0", "0.0535"),
		bracket(model.FilingHeadOfHousehold, "30390", "90000", "1625.87", "0.0705"),
		bracket(model.FilingHeadOfHousehold, "90000", "122110", "5828.38", "0.0705"),
		bracket(model.FilingHeadOfHousehold, "122110", "203390", "8092.13", "0.0785"),
		bracket(model.FilingHeadOfHousehold, "203390", "-1", "14472.61", "0.0985"),
	}
}

func bracket(status model.FilingStatus, lower, upper, base, rate string) model.Bracket {
	return model.Bracket{
		Status: status,
		Lower:  dec(lower),
		Upper:  dec(upper),
		Base:   dec(base),
		Rate:   dec(rate),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("bad decimal literal: " + s)
	}
	return d
}
