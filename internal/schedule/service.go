package schedule

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mntax-dev/mntax/internal/model"
)

// Service provides in-memory bracket lookup and basic tax computation
// over a loaded schedule.
type Service struct {
	brackets []model.Bracket
	byStatus map[model.FilingStatus][]model.Bracket
	statuses []model.FilingStatus
}

// NewService creates a Service from a slice of brackets. Bracket order
// within each filing status is preserved; lookups scan in that order.
func NewService(brackets []model.Bracket) *Service {
	byStatus := make(map[model.FilingStatus][]model.Bracket)
	var statuses []model.FilingStatus
	for _, b := range brackets {
		if _, seen := byStatus[b.Status]; !seen {
			statuses = append(statuses, b.Status)
		}
		byStatus[b.Status] = append(byStatus[b.Status], b)
	}
	return &Service{brackets: brackets, byStatus: byStatus, statuses: statuses}
}

// Default returns a Service backed by the built-in schedule.
func Default() *Service {
	return NewService(DefaultBrackets())
}

// Load reads a schedule CSV from disk, validates it, and returns a
// Service. Schedules that violate any invariant are rejected.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule: %w", err)
	}
	defer f.Close()

	brackets, err := ReadBrackets(f)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}

	if verrs := ValidateBrackets(brackets); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid schedule: %s", strings.Join(msgs, "; "))
	}
	return NewService(brackets), nil
}

// All returns every bracket in schedule order.
func (s *Service) All() []model.Bracket {
	return s.brackets
}

// Statuses returns the filing statuses present in the schedule, in
// first-appearance order.
func (s *Service) Statuses() []model.FilingStatus {
	return s.statuses
}

// Brackets returns the brackets for one filing status.
func (s *Service) Brackets(status model.FilingStatus) []model.Bracket {
	return s.byStatus[status]
}

// Match returns the first bracket for status that contains income.
// When two brackets share a boundary the earlier one wins.
func (s *Service) Match(status model.FilingStatus, income decimal.Decimal) (model.Bracket, bool) {
	for _, b := range s.byStatus[status] {
		if b.Contains(income) {
			return b, true
		}
	}
	return model.Bracket{}, false
}

// BasicTax computes the basic tax owed on income for a filing status.
// Income that no bracket contains owes zero.
func (s *Service) BasicTax(status model.FilingStatus, income decimal.Decimal) decimal.Decimal {
	b, ok := s.Match(status, income)
	if !ok {
		return decimal.Zero
	}
	return b.Tax(income)
}

// BasicTaxFor parses statusText and computes the basic tax owed on
// income. Unrecognized status text is an error.
func (s *Service) BasicTaxFor(statusText string, income decimal.Decimal) (decimal.Decimal, error) {
	status, err := model.ParseFilingStatus(statusText)
	if err != nil {
		return decimal.Zero, err
	}
	return s.BasicTax(status, income), nil
}

// Save writes the schedule to a CSV file.
func (s *Service) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating schedule file: %w", err)
	}
	defer f.Close()

	if err := WriteBrackets(f, s.brackets); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	return nil
}
