package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commonkit/pkg/timeutil"
)

func TestDayBounds(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC)

	start := timeutil.DayStart(ts, dhaka)
	end := timeutil.DayEnd(ts, dhaka)

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, dhaka), start)
	assert.Equal(t, start.AddDate(0, 0, 1).Add(-time.Millisecond), end)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), timeutil.DayStart(ts, nil))
}

func TestCalendarBounds(t *testing.T) {
	t.Parallel()

	// Wednesday.
	ts := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), timeutil.MonthStart(ts, nil))
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC), timeutil.MonthEnd(ts, nil))
	assert.Equal(t, time.Date(2024, time.February, 11, 0, 0, 0, 0, time.UTC), timeutil.WeekStart(ts, nil))
	assert.Equal(t, time.Date(2024, time.February, 17, 23, 59, 59, 999_000_000, time.UTC), timeutil.WeekEnd(ts, nil))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), timeutil.YearStart(ts, nil))
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999_000_000, time.UTC), timeutil.YearEnd(ts, nil))
}

func TestClock_IsToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	clock := timeutil.Clock(func() time.Time { return now })

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "same moment", t: now, want: true},
		{name: "day start", t: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), want: true},
		{name: "day end", t: time.Date(2024, time.March, 4, 23, 59, 59, 999_000_000, time.UTC), want: true},
		{name: "next day", t: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), want: false},
		{name: "yesterday", t: now.AddDate(0, 0, -1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clock.IsToday(tt.t, time.UTC))
		})
	}

	// 20:00 UTC on March 4 is already March 5 in Dhaka.
	late := time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC)
	assert.False(t, clock.IsToday(late, dhaka))
	assert.True(t, clock.IsToday(late, time.UTC))
}

func TestIsToday_WallClock(t *testing.T) {
	t.Parallel()

	assert.True(t, timeutil.IsToday(time.Now(), time.UTC))
	assert.False(t, timeutil.IsToday(time.Now().AddDate(0, 0, -2), time.UTC))
}

func TestClock_IsPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	clock := timeutil.Clock(func() time.Time { return now })

	assert.True(t, clock.IsPast(now.Add(-time.Second)))
	assert.False(t, clock.IsPast(now))
	assert.False(t, clock.IsPast(now.Add(time.Second)))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 4, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, timeutil.DaysBetween(from, to, time.UTC))
	assert.Equal(t, -3, timeutil.DaysBetween(to, from, time.UTC))
	assert.Equal(t, 0, timeutil.DaysBetween(from, from, time.UTC))
}

func TestDatesBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	days := timeutil.DatesBetween(start, end, time.UTC)
	assert.Equal(t, []time.Time{
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
	}, days)

	assert.Empty(t, timeutil.DatesBetween(end, start, time.UTC))
}

func TestDayBounds_DaylightSaving(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name  string
		day   time.Time
		hours time.Duration
	}{
		{name: "spring forward", day: time.Date(2024, time.March, 10, 12, 0, 0, 0, ny), hours: 23},
		{name: "fall back", day: time.Date(2024, time.November, 3, 12, 0, 0, 0, ny), hours: 25},
		{name: "regular day", day: time.Date(2024, time.June, 1, 12, 0, 0, 0, ny), hours: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start := timeutil.DayStart(tt.day, ny)
			end := timeutil.DayEnd(tt.day, ny)

			y, m, d := tt.day.Date()
			assert.Equal(t, time.Date(y, m, d, 23, 59, 59, 999_000_000, ny), end)
			assert.Equal(t, tt.hours*time.Hour-time.Millisecond, end.Sub(start))

			next := time.Date(y, m, d+1, 0, 30, 0, 0, ny)
			clock := timeutil.Clock(func() time.Time { return tt.day })
			assert.False(t, clock.IsToday(next, ny))
			assert.True(t, clock.IsToday(end, ny))

			from, to := timeutil.PeriodToday.Range(tt.day, ny)
			assert.True(t, start.Equal(from))
			assert.True(t, end.Equal(to))
			assert.True(t, to.Before(timeutil.DayStart(next, ny)))
		})
	}
}
