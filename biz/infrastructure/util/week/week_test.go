package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlignment(t *testing.T) {
	base := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	span := 6*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

	// 覆盖跨月, 跨年以及一天内的不同时刻
	for h := 0; h < 24*21; h += 5 {
		ref := base.Add(time.Duration(h)*time.Hour + 17*time.Minute)
		for anchor := 0; anchor < DaysPerWeek; anchor++ {
			w, err := Resolve(ref, anchor)
			require.NoError(t, err)

			assert.Equal(t, time.Weekday(anchor), w.Start.Weekday(), "ref=%s anchor=%d", ref, anchor)
			assert.Equal(t, span, w.End.Sub(w.Start), "ref=%s anchor=%d", ref, anchor)
			assert.True(t, w.Contains(ref), "ref=%s anchor=%d", ref, anchor)
			assert.Zero(t, w.Start.Hour())
			assert.Zero(t, w.Start.Minute())
			assert.Zero(t, w.Start.Nanosecond())
			assert.True(t, ref.Sub(w.Start) < 7*24*time.Hour)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	ref := time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)
	w1, err := Resolve(ref, 2)
	require.NoError(t, err)
	w2, err := Resolve(ref, 2)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)

	// 同一天内任意时刻得到同一区间
	later := time.Date(2025, time.March, 12, 23, 59, 59, 0, time.UTC)
	w3, err := Resolve(later, 2)
	require.NoError(t, err)
	assert.True(t, w1.Start.Equal(w3.Start))
	assert.True(t, w1.End.Equal(w3.End))
}

func TestResolveSaturdayAnchorOnWednesday(t *testing.T) {
	// 2025-03-12 是周三
	ref := time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, ref.Weekday())

	w, err := Resolve(ref, 6)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Saturday, w.Start.Weekday())
	assert.Equal(t, time.Date(2025, time.March, 14, 23, 59, 59, 999000000, time.UTC), w.End)
	assert.Equal(t, time.Friday, w.End.Weekday())
}

func TestResolveSameDay(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, ref.Weekday())

	w, err := Resolve(ref, int(time.Saturday))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestResolveAcrossYearBoundary(t *testing.T) {
	// 2025-01-01 周三, 周日起算应回到 2024-12-29
	ref := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	w, err := Resolve(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.January, 4, 23, 59, 59, 999000000, time.UTC), w.End)
}

func TestResolveKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	// UTC 周五 20:00 在 UTC+6 已是周六 02:00
	ref := time.Date(2025, time.March, 14, 20, 0, 0, 0, time.UTC).In(loc)
	w, err := Resolve(ref, 6)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, loc, w.Start.Location())
}

func TestResolveInvalidAnchorDay(t *testing.T) {
	ref := time.Now()
	for _, day := range []int{-1, 7, 100} {
		_, err := Resolve(ref, day)
		assert.ErrorIs(t, err, ErrInvalidAnchorDay, "day=%d", day)
	}
}

func TestWindowContains(t *testing.T) {
	w, err := Resolve(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), 6)
	require.NoError(t, err)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}
