// Package localtime pins the store's civil timezone (UTC+8, no DST) and the
// calendar windows used by sales reports.
package localtime

import "time"

// Zone is the fixed Philippine civil timezone.
var Zone = time.FixedZone("PHT", 8*60*60)

// DisplayLayout renders as "March 15, 2024 12:30 PM".
const DisplayLayout = "January 02, 2006 03:04 PM"

// Now returns the current instant in Zone.
func Now() time.Time {
	return time.Now().In(Zone)
}

// In converts t to Zone.
func In(t time.Time) time.Time {
	return t.In(Zone)
}

// Format renders a stored UTC timestamp in Zone using DisplayLayout.
func Format(t time.Time) string {
	return In(t).Format(DisplayLayout)
}

// Window is a half-open [Start, End) interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthOf returns [first of now's month, first of next month). The month is
// read from the Zone calendar; the boundaries are midnights in UTC, the zone
// order_date is stored in.
func MonthOf(now time.Time) Window {
	now = now.In(Zone)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthOf returns [first of previous month, first of now's month), with
// the same boundary rule as MonthOf.
func PreviousMonthOf(now time.Time) Window {
	current := MonthOf(now)
	return Window{Start: current.Start.AddDate(0, -1, 0), End: current.Start}
}

// YearOf returns [Jan 1 of now's year, Jan 1 of next year), with the year read
// from the Zone calendar and the boundaries at UTC midnight.
func YearOf(now time.Time) Window {
	now = now.In(Zone)
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}
