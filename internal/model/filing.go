package model

import "github.com/shopspring/decimal"

// Filing represents one row of a filings CSV: a taxpayer identifier,
// filing status, and annual income. Filings are transient batch input;
// nothing is persisted.
type Filing struct {
	ID     string
	Status FilingStatus
	Income decimal.Decimal
}
