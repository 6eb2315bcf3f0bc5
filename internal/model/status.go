package model

import (
	"errors"
	"fmt"
	"strings"
)

// FilingStatus classifies a taxpayer for bracket lookup.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married filing jointly"
	FilingMarriedSeparately FilingStatus = "married filing separately"
	FilingHeadOfHousehold   FilingStatus = "head of household"
)

// ErrUnknownFilingStatus is returned when a status string does not match
// any known filing status.
var ErrUnknownFilingStatus = errors.New("unknown filing status")

// AllFilingStatuses returns the known filing statuses in the order the
// published schedule lists them.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{
		FilingMarriedJointly,
		FilingMarriedSeparately,
		FilingSingle,
		FilingHeadOfHousehold,
	}
}

// ParseFilingStatus converts user-supplied text into a FilingStatus.
// Matching ignores case, surrounding whitespace, and accepts underscores
// or hyphens as word separators. The double-L "filling" spelling that
// appears in some published schedules is accepted too.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch normalizeStatus(s) {
	case "single":
		return FilingSingle, nil
	case "married filing jointly", "married filling jointly":
		return FilingMarriedJointly, nil
	case "married filing separately", "married filling separately":
		return FilingMarriedSeparately, nil
	case "head of household":
		return FilingHeadOfHousehold, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilingStatus, s)
}

// String returns the canonical lower-case form.
func (s FilingStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known filing statuses.
func (s FilingStatus) IsValid() bool {
	switch s {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparately, FilingHeadOfHousehold:
		return true
	}
	return false
}

func normalizeStatus(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
