package timeutil

import "time"

// Period names a reporting window relative to now.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this_week"
	PeriodLastWeek  Period = "last_week"
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodThisYear  Period = "this_year"
	PeriodLastYear  Period = "last_year"
	PeriodAllTime   Period = "all_time"
)

// ParsePeriod maps a name to a Period. Unknown names yield PeriodAllTime.
func ParsePeriod(name string) Period {
	switch p := Period(name); p {
	case PeriodToday, PeriodThisWeek, PeriodLastWeek, PeriodThisMonth,
		PeriodLastMonth, PeriodThisYear, PeriodLastYear:
		return p
	}
	return PeriodAllTime
}

// Range returns the inclusive bounds of p around now in loc.
// PeriodAllTime starts at the Unix epoch and ends with the current year.
func (p Period) Range(now time.Time, loc *time.Location) (from, to time.Time) {
	switch p {
	case PeriodToday:
		return DayStart(now, loc), DayEnd(now, loc)
	case PeriodThisWeek:
		return WeekStart(now, loc), WeekEnd(now, loc)
	case PeriodLastWeek:
		prev := WeekStart(now, loc).AddDate(0, 0, -7)
		return prev, WeekEnd(prev, loc)
	case PeriodThisMonth:
		return MonthStart(now, loc), MonthEnd(now, loc)
	case PeriodLastMonth:
		prev := MonthStart(now, loc).AddDate(0, -1, 0)
		return prev, MonthEnd(prev, loc)
	case PeriodThisYear:
		return YearStart(now, loc), YearEnd(now, loc)
	case PeriodLastYear:
		prev := YearStart(now, loc).AddDate(-1, 0, 0)
		return prev, YearEnd(prev, loc)
	}
	return time.Unix(0, 0).In(zone(now, loc)), YearEnd(now, loc)
}
