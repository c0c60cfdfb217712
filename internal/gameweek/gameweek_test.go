package gameweek

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func newKST(t *testing.T) *Calculator {
	t.Helper()
	c, err := New(kst)
	require.NoError(t, err)
	return c
}

func kstTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, kst)
}

func TestNew(t *testing.T) {
	t.Run("nil location is rejected", func(t *testing.T) {
		c, err := New(nil)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNilLocation)
	})

	t.Run("location is kept", func(t *testing.T) {
		c := newKST(t)
		assert.Equal(t, kst, c.Location())
	})
}

func TestCurrentDeadline(t *testing.T) {
	c := newKST(t)

	// 2025-01-01 среда, 2025-01-03 пятница
	cases := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"wednesday morning", kstTime(2025, 1, 1, 10, 0), kstTime(2025, 1, 3, 21, 0)},
		{"friday one minute before", kstTime(2025, 1, 3, 20, 59), kstTime(2025, 1, 3, 21, 0)},
		{"friday exactly at deadline", kstTime(2025, 1, 3, 21, 0), kstTime(2025, 1, 10, 21, 0)},
		{"friday after deadline", kstTime(2025, 1, 3, 21, 1), kstTime(2025, 1, 10, 21, 0)},
		{"saturday noon", kstTime(2025, 1, 4, 12, 0), kstTime(2025, 1, 10, 21, 0)},
		{"sunday midnight", kstTime(2025, 1, 5, 0, 0), kstTime(2025, 1, 10, 21, 0)},
		{"monday", kstTime(2025, 1, 6, 8, 30), kstTime(2025, 1, 10, 21, 0)},
		{"thursday late", kstTime(2025, 1, 9, 23, 59), kstTime(2025, 1, 10, 21, 0)},
		{"month rollover", kstTime(2025, 1, 29, 9, 0), kstTime(2025, 1, 31, 21, 0)},
		{"year rollover", kstTime(2025, 12, 27, 9, 0), kstTime(2026, 1, 2, 21, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.CurrentDeadline(tc.ref)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}

	t.Run("reference in UTC is read in club zone", func(t *testing.T) {
		// пятница 12:30 UTC = пятница 21:30 KST, дедлайн уже прошёл
		ref := time.Date(2025, 1, 3, 12, 30, 0, 0, time.UTC)
		got := c.CurrentDeadline(ref)
		assert.True(t, kstTime(2025, 1, 10, 21, 0).Equal(got))
	})
}

func TestCurrentDeadlineProperties(t *testing.T) {
	c := newKST(t)
	start := kstTime(2025, 2, 20, 0, 0)

	for ref := start; ref.Before(start.AddDate(0, 0, 21)); ref = ref.Add(17 * time.Minute) {
		deadline := c.CurrentDeadline(ref)
		local := deadline.In(kst)

		require.Equal(t, time.Friday, local.Weekday(), "ref %s", ref)
		require.Equal(t, 21, local.Hour())
		require.Zero(t, local.Minute())
		require.Zero(t, local.Second())

		pastFridayDeadline := ref.Weekday() == time.Friday && ref.Hour() >= 21
		if pastFridayDeadline {
			todays := time.Date(ref.Year(), ref.Month(), ref.Day(), 21, 0, 0, 0, kst)
			require.True(t, todays.AddDate(0, 0, 7).Equal(deadline), "ref %s", ref)
		} else {
			require.False(t, deadline.Before(ref), "ref %s", ref)
			require.Less(t, deadline.Sub(ref), 7*24*time.Hour)
		}
	}
}

func TestWeekFor(t *testing.T) {
	c := newKST(t)

	t.Run("window bounds", func(t *testing.T) {
		deadline := kstTime(2025, 1, 10, 21, 0)
		w := c.WeekFor(deadline)

		assert.True(t, kstTime(2025, 1, 4, 0, 0).Equal(w.Start))
		assert.True(t, deadline.Equal(w.End))
		assert.Equal(t, 6*24*time.Hour+21*time.Hour, w.End.Sub(w.Start))
		assert.Equal(t, "2025-01-03T15:00:00.000Z", w.StartUTC())
		assert.Equal(t, "2025-01-10T12:00:00.000Z", w.EndUTC())
	})

	t.Run("idempotent", func(t *testing.T) {
		deadline := kstTime(2025, 3, 14, 21, 0)
		assert.Equal(t, c.WeekFor(deadline), c.WeekFor(deadline))
	})

	t.Run("window crosses month boundary", func(t *testing.T) {
		w := c.WeekFor(kstTime(2025, 3, 7, 21, 0))
		assert.True(t, kstTime(2025, 3, 1, 0, 0).Equal(w.Start))

		w = c.WeekFor(kstTime(2025, 3, 6, 21, 0))
		assert.Equal(t, 2, int(w.Start.In(kst).Month()))
	})

	labels := []struct {
		deadline time.Time
		want     string
	}{
		{kstTime(2025, 1, 3, 21, 0), "2025년 1월 1주차"},
		{kstTime(2025, 1, 10, 21, 0), "2025년 1월 2주차"},
		{kstTime(2025, 1, 14, 21, 0), "2025년 1월 2주차"},
		{kstTime(2025, 1, 15, 21, 0), "2025년 1월 3주차"},
		{kstTime(2025, 1, 31, 21, 0), "2025년 1월 5주차"},
		{kstTime(2025, 2, 7, 21, 0), "2025년 2월 1주차"},
		{kstTime(2025, 12, 26, 21, 0), "2025년 12월 4주차"},
	}
	for _, tc := range labels {
		t.Run("label "+tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, c.WeekFor(tc.deadline).Label)
		})
	}

	t.Run("label uses club zone date", func(t *testing.T) {
		// 2025-01-31 12:00 UTC = 21:00 KST, 31 января
		w := c.WeekFor(time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, "2025년 1월 5주차", w.Label)
	})
}

func TestGenerateWeeks(t *testing.T) {
	c := newKST(t)
	ref := kstTime(2025, 1, 1, 10, 0)

	t.Run("three consecutive weeks", func(t *testing.T) {
		weeks, err := c.GenerateWeeks(ref, 3)
		require.NoError(t, err)
		require.Len(t, weeks, 3)

		assert.True(t, kstTime(2025, 1, 3, 21, 0).Equal(weeks[0].End))
		for i := 1; i < len(weeks); i++ {
			assert.Equal(t, 7*24*time.Hour, weeks[i].End.Sub(weeks[i-1].End))
			assert.Equal(t, 7*24*time.Hour, weeks[i].Start.Sub(weeks[i-1].Start))
		}
	})

	t.Run("every window has the same length", func(t *testing.T) {
		weeks, err := c.GenerateWeeks(ref, 60)
		require.NoError(t, err)
		for _, w := range weeks {
			assert.Equal(t, 6*24*time.Hour+21*time.Hour, w.End.Sub(w.Start), w.Label)
		}
	})

	t.Run("windows are contiguous", func(t *testing.T) {
		weeks, err := c.GenerateWeeks(ref, 10)
		require.NoError(t, err)
		for i := 1; i < len(weeks); i++ {
			// следующее окно начинается через 3 часа после предыдущего дедлайна
			assert.Equal(t, 3*time.Hour, weeks[i].Start.Sub(weeks[i-1].End))
		}
	})

	t.Run("non positive count is rejected", func(t *testing.T) {
		for _, count := range []int{0, -1, -8} {
			weeks, err := c.GenerateWeeks(ref, count)
			assert.Nil(t, weeks)
			assert.ErrorIs(t, err, ErrInvalidCount)
		}
	})

	t.Run("first element matches week at offset zero", func(t *testing.T) {
		weeks, err := c.GenerateWeeks(ref, 1)
		require.NoError(t, err)
		assert.Equal(t, c.WeekAt(ref, 0), weeks[0])
	})
}

func TestWeekAt(t *testing.T) {
	c := newKST(t)
	ref := kstTime(2025, 1, 1, 10, 0)

	weeks, err := c.GenerateWeeks(ref, 4)
	require.NoError(t, err)

	for i, w := range weeks {
		assert.Equal(t, w, c.WeekAt(ref, i))
	}

	prev := c.WeekAt(ref, -1)
	assert.True(t, kstTime(2024, 12, 27, 21, 0).Equal(prev.End))
	assert.Equal(t, "2024년 12월 4주차", prev.Label)
}

func TestWeekContains(t *testing.T) {
	c := newKST(t)
	w := c.WeekFor(kstTime(2025, 1, 10, 21, 0))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.True(t, w.Contains(kstTime(2025, 1, 7, 12, 0)))
	assert.False(t, w.Contains(w.End.Add(time.Second)))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
	// окно суббота 00:00..21:00 пятницы предыдущей недели не захватывает
	assert.False(t, w.Contains(kstTime(2025, 1, 3, 22, 0)))
}

func TestWeekMarshalJSON(t *testing.T) {
	c := newKST(t)
	w := c.WeekFor(kstTime(2025, 1, 10, 21, 0))

	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"label": "2025년 1월 2주차",
		"start_date": "2025-01-03T15:00:00.000Z",
		"end_date": "2025-01-10T12:00:00.000Z"
	}`, string(raw))
}

func TestDaylightSavingZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	c, err := New(loc)
	require.NoError(t, err)

	// переход на летнее время 9 марта 2025
	weeks, err := c.GenerateWeeks(time.Date(2025, 2, 25, 12, 0, 0, 0, loc), 4)
	require.NoError(t, err)

	for _, w := range weeks {
		end := w.End.In(loc)
		assert.Equal(t, time.Friday, end.Weekday())
		assert.Equal(t, 21, end.Hour())
		start := w.Start.In(loc)
		assert.Equal(t, time.Saturday, start.Weekday())
		assert.Zero(t, start.Hour())
	}
}

func TestWeekOfMonth(t *testing.T) {
	cases := map[int]int{1: 1, 7: 1, 8: 2, 14: 2, 15: 3, 21: 3, 22: 4, 28: 4, 29: 5, 31: 5}
	for day, want := range cases {
		assert.Equal(t, want, WeekOfMonth(day), "day %d", day)
	}
}
