package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/commonkit/pkg/timeutil"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, timeutil.PeriodToday, timeutil.ParsePeriod("today"))
	assert.Equal(t, timeutil.PeriodLastMonth, timeutil.ParsePeriod("last_month"))
	assert.Equal(t, timeutil.PeriodAllTime, timeutil.ParsePeriod("forever"))
	assert.Equal(t, timeutil.PeriodAllTime, timeutil.ParsePeriod(""))
}

func TestPeriod_Range(t *testing.T) {
	t.Parallel()

	// Wednesday.
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	last := func(y int, m time.Month, d int) time.Time {
		return date(y, m, d).AddDate(0, 0, 1).Add(-time.Millisecond)
	}

	tests := []struct {
		period   timeutil.Period
		from, to time.Time
	}{
		{period: timeutil.PeriodToday, from: date(2024, time.March, 13), to: last(2024, time.March, 13)},
		{period: timeutil.PeriodThisWeek, from: date(2024, time.March, 10), to: last(2024, time.March, 16)},
		{period: timeutil.PeriodLastWeek, from: date(2024, time.March, 3), to: last(2024, time.March, 9)},
		{period: timeutil.PeriodThisMonth, from: date(2024, time.March, 1), to: last(2024, time.March, 31)},
		{period: timeutil.PeriodLastMonth, from: date(2024, time.February, 1), to: last(2024, time.February, 29)},
		{period: timeutil.PeriodThisYear, from: date(2024, time.January, 1), to: last(2024, time.December, 31)},
		{period: timeutil.PeriodLastYear, from: date(2023, time.January, 1), to: last(2023, time.December, 31)},
		{period: timeutil.PeriodAllTime, from: time.Unix(0, 0).UTC(), to: last(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			t.Parallel()
			from, to := tt.period.Range(now, time.UTC)
			assert.True(t, tt.from.Equal(from), "from: want %s, got %s", tt.from, from)
			assert.True(t, tt.to.Equal(to), "to: want %s, got %s", tt.to, to)
		})
	}
}
