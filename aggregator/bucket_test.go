package aggregator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyOf(t *testing.T) {
	t.Parallel()

	for _, ts := range []uint64{0, 1, 86399, 86400, 186400, 1407564301, 1<<62 + 12345, math.MaxInt64} {
		key := DayKeyOf(ts)
		assert.Zero(t, uint64(key)%secondsPerDay, "key of %d", ts)
		assert.LessOrEqual(t, uint64(key), ts)
		assert.Greater(t, uint64(key)+secondsPerDay, ts)
	}
}

func TestDayKeyTime(t *testing.T) {
	t.Parallel()

	got := DayKeyOf(1407564301).Time()
	assert.Equal(t, time.Date(2014, time.August, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestDayKeyTimeAscending(t *testing.T) {
	t.Parallel()

	keys := []DayKey{DayKeyOf(0), DayKeyOf(1407564301), DayKeyOf(1 << 62), DayKeyOf(math.MaxInt64)}
	for i := 1; i < len(keys); i++ {
		assert.True(t, keys[i-1].Time().Before(keys[i].Time()), "%d before %d", keys[i-1], keys[i])
	}
}

func TestAggregateTableAccumulate(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()
	for _, r := range []HitRecord{
		{Timestamp: 10, URL: "a"},
		{Timestamp: 86399, URL: "b"},
		{Timestamp: 20, URL: "a"},
		{Timestamp: 86400, URL: "a"},
		{Timestamp: 172799, URL: "c"},
	} {
		table.Accumulate(r)
	}

	require.Equal(t, 2, table.Len())

	day0, ok := table.Day(0)
	require.True(t, ok)
	assert.Equal(t, int64(2), day0.Count("a"))
	assert.Equal(t, int64(1), day0.Count("b"))
	assert.Equal(t, int64(0), day0.Count("c"))
	assert.Equal(t, int64(3), day0.Total())
	assert.Equal(t, []URLCount{{URL: "a", Count: 2}, {URL: "b", Count: 1}}, day0.Entries())

	day1, ok := table.Day(86400)
	require.True(t, ok)
	assert.Equal(t, 2, day1.Len())
	assert.Equal(t, int64(2), day1.Total())

	_, ok = table.Day(172800)
	assert.False(t, ok)
}

func TestDailyHitTableEntriesIsACopy(t *testing.T) {
	t.Parallel()

	daily := newDailyHitTable()
	daily.add("a")
	entries := daily.Entries()
	entries[0].Count = 99

	assert.Equal(t, int64(1), daily.Count("a"))
}
