package analytics

import (
	"strings"
	"time"

	"github.com/ballinwear/assistant-backend/pkg/localtime"
)

// Filter selects the sales window a top-seller ranking covers.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterThisMonth Filter = "thisMonth"
	FilterLastMonth Filter = "lastMonth"
	FilterThisYear  Filter = "thisYear"
)

var validFilters = []Filter{
	FilterAll,
	FilterThisMonth,
	FilterLastMonth,
	FilterThisYear,
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Filter.
func (f Filter) IsValid() bool {
	for _, candidate := range validFilters {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFilter maps raw input onto a Filter. Anything unrecognized means all time.
func ParseFilter(value string) Filter {
	f := Filter(strings.TrimSpace(value))
	if f.IsValid() {
		return f
	}
	return FilterAll
}

// Window resolves the filter against the store's calendar date for now. The
// boundaries are UTC midnights of that date. The bool is false when no date
// restriction applies.
func (f Filter) Window(now time.Time) (localtime.Window, bool) {
	switch f {
	case FilterThisMonth:
		return localtime.MonthOf(now), true
	case FilterLastMonth:
		return localtime.PreviousMonthOf(now), true
	case FilterThisYear:
		return localtime.YearOf(now), true
	default:
		return localtime.Window{}, false
	}
}
