package timeutil

import "time"

func zone(t time.Time, loc *time.Location) *time.Location {
	if loc != nil {
		return loc
	}
	return t.Location()
}

// DayStart returns midnight of the calendar day containing t in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	loc = zone(t, loc)
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayEnd returns the last millisecond of the calendar day containing t in loc.
// Days shortened or lengthened by a DST change end at local 23:59:59.999.
func DayEnd(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// MonthStart returns midnight of the first day of t's month in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	loc = zone(t, loc)
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}

// MonthEnd returns the last millisecond of t's month in loc.
func MonthEnd(t time.Time, loc *time.Location) time.Time {
	return MonthStart(t, loc).AddDate(0, 1, 0).Add(-time.Millisecond)
}

// WeekStart returns midnight of the Sunday that starts t's week in loc.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	start := DayStart(t, loc)
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// WeekEnd returns the last millisecond of t's week in loc.
func WeekEnd(t time.Time, loc *time.Location) time.Time {
	return WeekStart(t, loc).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// YearStart returns midnight of January 1 of t's year in loc.
func YearStart(t time.Time, loc *time.Location) time.Time {
	loc = zone(t, loc)
	return time.Date(t.In(loc).Year(), time.January, 1, 0, 0, 0, 0, loc)
}

// YearEnd returns the last millisecond of t's year in loc.
func YearEnd(t time.Time, loc *time.Location) time.Time {
	return YearStart(t, loc).AddDate(1, 0, 0).Add(-time.Millisecond)
}

// Clock reports the current time.
type Clock func() time.Time

// IsToday reports whether t falls within the current day in loc.
func IsToday(t time.Time, loc *time.Location) bool {
	return Clock(time.Now).IsToday(t, loc)
}

// IsToday reports whether t falls within the day the clock is in, bounds included.
func (c Clock) IsToday(t time.Time, loc *time.Location) bool {
	now := c()
	start, end := DayStart(now, loc), DayEnd(now, loc)
	return !t.Before(start) && !t.After(end)
}

// IsPast reports whether t is before the clock's current time.
func (c Clock) IsPast(t time.Time) bool {
	return t.Before(c())
}

// DaysBetween returns the calendar-day distance from "from" to "to" in loc.
// The result is negative when to precedes from.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	a, b := DayStart(from, loc), DayStart(to, loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / (24 * time.Hour))
}

// DatesBetween returns each day start from start up to, but excluding, end.
func DatesBetween(start, end time.Time, loc *time.Location) []time.Time {
	var days []time.Time
	for d := DayStart(start, loc); d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
