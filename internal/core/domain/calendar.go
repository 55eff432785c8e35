package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Calendar helpers work on civil dates only. Day counting never goes through
// time.Duration so DST shifts and zone offsets cannot skew a gap.

// Today returns the calendar date of now as seen in loc (UTC when nil).
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}

// DaysBetween returns the signed number of calendar days from -> to.
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// DayLabel is the short weekday name, e.g. "Mon".
func DayLabel(d civil.Date) string {
	return d.In(time.UTC).Weekday().String()[:3]
}

// FullDateLabel renders the "Mon DD" chart label, e.g. "Jan 2".
func FullDateLabel(d civil.Date) string {
	return d.In(time.UTC).Format("Jan 2")
}

func isZeroDate(d civil.Date) bool {
	return d == civil.Date{}
}
