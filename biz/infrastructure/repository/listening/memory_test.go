package listening

import (
	"context"
	"listening-show/biz/infrastructure/consts"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMapperUniqueWeek(t *testing.T) {
	m := NewMemoryMapper()
	ctx := context.Background()
	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)

	_, err := m.FindByStudentAndWeek(ctx, "s1", start)
	assert.ErrorIs(t, err, consts.ErrNotFound)

	l, err := m.Create(ctx, "s1", start, end, "u1")
	require.NoError(t, err)
	assert.Empty(t, l.Rows)

	_, err = m.Create(ctx, "s1", start, end, "u2")
	assert.ErrorIs(t, err, consts.ErrConflict)

	// 其他学生或其他周不受影响
	_, err = m.Create(ctx, "s2", start, end, "u1")
	require.NoError(t, err)
	_, err = m.Create(ctx, "s1", start.AddDate(0, 0, 7), end.AddDate(0, 0, 7), "u1")
	require.NoError(t, err)

	list, err := m.FindByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].WeekStart.After(list[1].WeekStart))
}

func TestMemoryMapperVersionCheck(t *testing.T) {
	m := NewMemoryMapper()
	ctx := context.Background()
	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)

	created, err := m.Create(ctx, "s1", start, start.AddDate(0, 0, 7), "u1")
	require.NoError(t, err)

	first, err := m.FindByStudentAndWeek(ctx, "s1", start)
	require.NoError(t, err)
	second, err := m.FindByStudentAndWeek(ctx, "s1", start)
	require.NoError(t, err)

	first.Rows = append(first.Rows, NewEntry(RowA, 5, ""))
	require.NoError(t, m.Save(ctx, first))
	assert.Equal(t, int64(1), first.Version)

	second.Rows = append(second.Rows, NewEntry(RowB, 6, ""))
	assert.ErrorIs(t, m.Save(ctx, second), consts.ErrConflict)

	got, err := m.FindByStudentAndWeek(ctx, "s1", start)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, RowA, got.Rows[0].Row)
	assert.Equal(t, created.ID, got.ID)

	// 返回的是副本, 修改不会影响存储
	got.Rows[0].Score = 0
	again, err := m.FindByStudentAndWeek(ctx, "s1", start)
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Rows[0].Score)

	n, err := m.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestParseRow(t *testing.T) {
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		r, ok := ParseRow(s)
		assert.True(t, ok)
		assert.Equal(t, Row(s), r)
	}
	for _, s := range []string{"", "F", "a", "AB", " A"} {
		_, ok := ParseRow(s)
		assert.False(t, ok, s)
	}
	assert.Equal(t, "x", NewEntry(RowA, 1, "  x  ").Comments)
}
