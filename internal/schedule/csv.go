package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mntax-dev/mntax/internal/model"
)

// Header is the CSV header for schedule files.
const Header = "filing_status,lower_bound,upper_bound,base_tax,rate"

const (
	numFields = 5
	colStatus = 0
	colLower  = 1
	colUpper  = 2
	colBase   = 3
	colRate   = 4
)

// ReadBrackets reads all brackets from a schedule CSV reader.
func ReadBrackets(r io.Reader) ([]model.Bracket, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schedule CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var brackets []model.Bracket
	for i, rec := range records[1:] {
		b, err := UnmarshalBracket(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		brackets = append(brackets, b)
	}
	return brackets, nil
}

// WriteBrackets writes brackets to a schedule CSV writer (including
// header).
func WriteBrackets(w io.Writer, brackets []model.Bracket) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range brackets {
		if err := cw.Write(MarshalBracket(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBracket converts a Bracket to a CSV row.
func MarshalBracket(b model.Bracket) []string {
	row := make([]string, numFields)
	row[colStatus] = string(b.Status)
	row[colLower] = b.Lower.String()
	row[colUpper] = b.Upper.String()
	row[colBase] = b.Base.StringFixed(2)
	row[colRate] = b.Rate.String()
	return row
}

// UnmarshalBracket converts a CSV row to a Bracket. The upper bound may
// be -1 or empty for an open-ended bracket.
func UnmarshalBracket(record []string) (model.Bracket, error) {
	if len(record) != numFields {
		return model.Bracket{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	status, err := model.ParseFilingStatus(record[colStatus])
	if err != nil {
		return model.Bracket{}, fmt.Errorf("parsing filing_status: %w", err)
	}

	lower, err := decimal.NewFromString(record[colLower])
	if err != nil {
		return model.Bracket{}, fmt.Errorf("parsing lower_bound %q: %w", record[colLower], err)
	}

	upper := model.UnboundedUpper
	if record[colUpper] != "" {
		upper, err = decimal.NewFromString(record[colUpper])
		if err != nil {
			return model.Bracket{}, fmt.Errorf("parsing upper_bound %q: %w", record[colUpper], err)
		}
	}

	base, err := decimal.NewFromString(record[colBase])
	if err != nil {
		return model.Bracket{}, fmt.Errorf("parsing base_tax %q: %w", record[colBase], err)
	}

	rate, err := decimal.NewFromString(record[colRate])
	if err != nil {
		return model.Bracket{}, fmt.Errorf("parsing rate %q: %w", record[colRate], err)
	}

	return model.Bracket{
		Status: status,
		Lower:  lower,
		Upper:  upper,
		Base:   base,
		Rate:   rate,
	}, nil
}
