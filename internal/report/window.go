package report

import (
	"strconv"
	"strings"
	"time"
)

// DaysPerWeek is the fixed length of a report window.
const DaysPerWeek = 7

// Window is the resolved 7-day calendar range a report covers.
//
// Weeks are anchored to Monday in the report timezone. Start is the first
// instant of the window's Monday; End is the last instant of its Sunday.
// QueryEnd is the last instant of min(End's day, today) so a query over
// [Start, QueryEnd] covers the whole current day without reaching into
// future days.
type Window struct {
	Start    time.Time
	End      time.Time
	QueryEnd time.Time
}

// ResolveWindow computes the window for the week weekOffset weeks before
// the week containing now. Offsets below zero are treated as zero: future
// weeks have no sessions to report on.
func ResolveWindow(now time.Time, loc *time.Location, weekOffset int) Window {
	if weekOffset < 0 {
		weekOffset = 0
	}
	now = now.In(loc)

	// Days back to the most recent Monday (time.Weekday has Sunday == 0).
	back := (int(now.Weekday()) - int(time.Monday) + DaysPerWeek) % DaysPerWeek
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -back-DaysPerWeek*weekOffset)

	end := endOfDay(monday.AddDate(0, 0, DaysPerWeek-1))
	queryEnd := end
	if now.Before(end) {
		queryEnd = endOfDay(now)
	}

	return Window{Start: monday, End: end, QueryEnd: queryEnd}
}

// ParseWeekOffset converts a raw offset parameter to a usable offset.
// Anything that is not a non-negative integer collapses to 0.
func ParseWeekOffset(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
