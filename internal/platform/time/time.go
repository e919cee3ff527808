// Package time contains time related helpers
package time

import "time"

// DayLayout is the calendar day form shown next to each event
const DayLayout = "2006/01/02"

// FromMillis converts a Unix epoch millisecond count to a time in loc.
// A nil loc means UTC
func FromMillis(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc)
}

// Day formats an epoch millisecond count as YYYY/MM/DD in loc
func Day(ms int64, loc *time.Location) string {
	return FromMillis(ms, loc).Format(DayLayout)
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
