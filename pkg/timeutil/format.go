package timeutil

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Layouts for formatting and parsing.
const (
	LayoutServerDateTime    = "2006-01-02T15:04:05.000Z"
	LayoutServerMinute      = "2006-01-02T15:04"
	LayoutDateBackwards     = "2006-01-02"
	LayoutDateTimeBackwards = "2006-01-02 15:04:05"

	LayoutReadableDate     = "Jan 02, 2006"
	LayoutReadableTime     = "03:04 PM"
	LayoutReadableDateTime = "Jan 02, 2006 03:04 PM"
	LayoutReadableDayName  = "Jan 02, 2006 Monday"
	LayoutDayMonthName     = "January 02, 2006 Monday"
	LayoutMonthYear        = "Jan, 06"
	LayoutDayMonthYear     = "02-01-2006"
	LayoutReport           = "02/01/2006"
	LayoutDotted           = "02.01.06"
	LayoutDottedLong       = "02.01.2006"
	LayoutMonth            = "January"
	LayoutMonthYearCompact = "0106"
)

// format renders t in loc. A nil loc keeps t's own location and a zero t renders as "".
func format(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layout)
}

// ReadableDateTime formats t like "Mar 04, 2024 09:30 AM" in loc.
func ReadableDateTime(t time.Time, loc *time.Location) string {
	return format(t, loc, LayoutReadableDateTime)
}

// ReadableDate formats t like "Mar 04, 2024" in loc.
func ReadableDate(t time.Time, loc *time.Location) string {
	return format(t, loc, LayoutReadableDate)
}

// ReadableTime formats t like "09:30 AM" in loc.
func ReadableTime(t time.Time, loc *time.Location) string {
	return format(t, loc, LayoutReadableTime)
}

// ReadableDateRange formats both ends as readable dates joined by " - ".
func ReadableDateRange(start, end time.Time, loc *time.Location) string {
	return ReadableDate(start, loc) + " - " + ReadableDate(end, loc)
}

// IsValidTimeZone reports whether name is a loadable IANA zone.
// The empty name is rejected even though the standard library maps it to UTC.
func IsValidTimeZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// LoadLocation resolves an IANA zone name. Unknown zones yield apperr.InvalidError.
func LoadLocation(name string) (*time.Location, error) {
	if !IsValidTimeZone(name) {
		return nil, apperr.Invalid(fmt.Sprintf("unknown time zone %q", name))
	}
	return time.LoadLocation(name)
}

// ParseServerDateTime parses a value in LayoutServerDateTime. The trailing Z is
// a literal, so the wall clock is interpreted in loc; a nil loc means UTC.
func ParseServerDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(LayoutServerDateTime, value, loc)
	if err != nil {
		return time.Time{}, apperr.Invalid(fmt.Sprintf("invalid server date time %q", value))
	}
	return t, nil
}
