package schedule

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mntax-dev/mntax/internal/model"
)

// ValidationError describes a single invariant violation in a schedule.
type ValidationError struct {
	Invariant   int
	Status      model.FilingStatus
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Status, e.Description)
}

// ValidateBrackets enforces 5 invariants on a schedule's brackets.
func ValidateBrackets(brackets []model.Bracket) []ValidationError {
	var errs []ValidationError

	// Group brackets by filing status.
	groups := make(map[model.FilingStatus][]model.Bracket)
	var groupOrder []model.FilingStatus
	for _, b := range brackets {
		if _, seen := groups[b.Status]; !seen {
			groupOrder = append(groupOrder, b.Status)
		}
		groups[b.Status] = append(groups[b.Status], b)
	}

	// Invariant 1: every known filing status has at least one bracket,
	// and only known statuses appear.
	for _, status := range model.AllFilingStatuses() {
		if len(groups[status]) == 0 {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Status:      status,
				Description: "no brackets defined",
			})
		}
	}
	for _, status := range groupOrder {
		if !status.IsValid() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Status:      status,
				Description: "unknown filing status",
			})
		}
	}

	one := decimal.NewFromInt(1)

	for _, status := range groupOrder {
		group := groups[status]

		// Invariant 2: the first bracket starts at zero.
		if !group[0].Lower.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Status:      status,
				Description: fmt.Sprintf("first bracket starts at %s, want 0", group[0].Lower),
			})
		}

		// Invariant 3: consecutive brackets are contiguous.
		for i := 1; i < len(group); i++ {
			prev, cur := group[i-1], group[i]
			if prev.OpenEnded() {
				continue
			}
			if !cur.Lower.Equal(prev.Upper) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					Status:      status,
					Description: fmt.Sprintf("bracket starting at %s does not continue from previous upper bound %s", cur.Lower, prev.Upper),
				})
			}
		}

		// Invariant 4: exactly the last bracket is open-ended, and
		// bounded brackets span a positive range.
		for i, b := range group {
			last := i == len(group)-1
			switch {
			case last && !b.OpenEnded():
				errs = append(errs, ValidationError{
					Invariant:   4,
					Status:      status,
					Description: fmt.Sprintf("last bracket (starting at %s) must be open-ended", b.Lower),
				})
			case !last && b.OpenEnded():
				errs = append(errs, ValidationError{
					Invariant:   4,
					Status:      status,
					Description: fmt.Sprintf("bracket starting at %s is open-ended but not last", b.Lower),
				})
			}
			if !b.OpenEnded() && b.Upper.LessThanOrEqual(b.Lower) {
				errs = append(errs, ValidationError{
					Invariant:   4,
					Status:      status,
					Description: fmt.Sprintf("upper bound %s does not exceed lower bound %s", b.Upper, b.Lower),
				})
			}
		}

		// Invariant 5: rates within [0, 1], amounts non-negative.
		for _, b := range group {
			if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Status:      status,
					Description: fmt.Sprintf("rate %s outside [0, 1]", b.Rate),
				})
			}
			if b.Lower.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Status:      status,
					Description: fmt.Sprintf("negative lower bound %s", b.Lower),
				})
			}
			if b.Base.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Status:      status,
					Description: fmt.Sprintf("negative base tax %s", b.Base),
				})
			}
		}
	}

	return errs
}
