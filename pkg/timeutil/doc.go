// Package timeutil formats instants for display and computes calendar
// boundaries in a given time zone.
//
// Readable layouts follow a US style ("Mar 04, 2024 09:30 AM"). Every
// function takes an explicit *time.Location; nil keeps the location already
// attached to the time value.
//
//	loc, err := timeutil.LoadLocation("Asia/Dhaka")
//	if err != nil {
//		return err // apperr.InvalidError
//	}
//	from, to := timeutil.PeriodThisMonth.Range(time.Now(), loc)
//	label := timeutil.ReadableDateRange(from, to, loc)
//
// IsToday uses the wall clock. Tests inject a Clock instead:
//
//	clock := timeutil.Clock(func() time.Time { return fixed })
//	clock.IsToday(t, loc)
package timeutil
