package date

import (
	"fmt"
	"time"
)

// Month identifies a calendar month, the bucket used for monthly revenue
// trends.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// normalize through a Date so that month 13 rolls over.
	return New(year, month, 1).MonthOf()
}

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Month returns the month's calendar month.
func (m Month) Month() time.Month { return m.m }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Next returns the following month.
func (m Month) Next() Month { return New(m.y, m.m+1, 1).MonthOf() }

// Before reports whether m is before x.
func (m Month) Before(x Month) bool { return m.First().Before(x.First()) }

// String formats the month as "2006-01".
func (m Month) String() string { return m.First().time().Format("2006-01") }

// ParseMonth parses a Month from a "2006-01" string.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse("2006-01", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, "2006-01", err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// Compare orders months chronologically, for use with slices.SortFunc.
func (m Month) Compare(x Month) int {
	switch {
	case m.Before(x):
		return -1
	case x.Before(m):
		return 1
	default:
		return 0
	}
}
