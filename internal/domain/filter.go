package domain

import (
	"fmt"
	"time"
)

// dateLayouts are the ISO 8601 forms the created: qualifier accepts.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var validSigns = map[string]bool{">": true, "<": true, "=": true, ">=": true, "<=": true}

// DateFilter restricts the search to pull requests created relative to a date.
type DateFilter struct {
	Sign string
	Date string
}

// NewDateFilter validates sign and date and returns the filter.
func NewDateFilter(sign, date string) (DateFilter, error) {
	if !validSigns[sign] {
		return DateFilter{}, fmt.Errorf("%w: unsupported sign %q", ErrInvalidDateFilter, sign)
	}
	if !isISODate(date) {
		return DateFilter{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD or an RFC 3339 time", ErrInvalidDateFilter, date)
	}
	return DateFilter{Sign: sign, Date: date}, nil
}

func isISODate(date string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, date); err == nil {
			return true
		}
	}
	return false
}

// String returns the qualifier value, e.g. ">=2024-01-01".
func (f DateFilter) String() string {
	return f.Sign + f.Date
}
