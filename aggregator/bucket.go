package aggregator

import "time"

const secondsPerDay = 86400

// DayKey is a timestamp rounded down to the start of its UTC day. It is always
// a multiple of 86400.
type DayKey uint64

// DayKeyOf returns the DayKey of a timestamp in seconds since the Unix epoch.
func DayKeyOf(timestamp uint64) DayKey {
	return DayKey(timestamp / secondsPerDay * secondsPerDay)
}

// Time returns the UTC midnight the key stands for. Keys built from parsed
// records never exceed math.MaxInt64.
func (d DayKey) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

// URLCount is the number of hits of a single URL.
type URLCount struct {
	URL   string
	Count int64
}

// DailyHitTable counts hits per URL for one day. URLs are kept in the order
// they were first seen.
type DailyHitTable struct {
	index  map[string]int
	counts []URLCount
}

func newDailyHitTable() *DailyHitTable {
	return &DailyHitTable{index: make(map[string]int)}
}

func (t *DailyHitTable) add(url string) {
	i, ok := t.index[url]
	if !ok {
		i = len(t.counts)
		t.index[url] = i
		t.counts = append(t.counts, URLCount{URL: url})
	}
	t.counts[i].Count++
}

// Count returns the hits recorded for url, or 0.
func (t *DailyHitTable) Count(url string) int64 {
	if i, ok := t.index[url]; ok {
		return t.counts[i].Count
	}
	return 0
}

// Len returns the number of distinct URLs.
func (t *DailyHitTable) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *DailyHitTable) Total() int64 {
	var total int64
	for _, c := range t.counts {
		total += c.Count
	}
	return total
}

// Entries returns a copy of the counts in first-seen order.
func (t *DailyHitTable) Entries() []URLCount {
	return append([]URLCount(nil), t.counts...)
}

// AggregateTable holds one DailyHitTable per day seen in the input.
type AggregateTable struct {
	days map[DayKey]*DailyHitTable
}

// NewAggregateTable returns an empty table.
func NewAggregateTable() *AggregateTable {
	return &AggregateTable{days: make(map[DayKey]*DailyHitTable)}
}

// Accumulate adds one hit for the record's URL on the record's day.
func (a *AggregateTable) Accumulate(r HitRecord) {
	key := r.DayKey()
	daily, ok := a.days[key]
	if !ok {
		daily = newDailyHitTable()
		a.days[key] = daily
	}
	daily.add(r.URL)
}

// Day returns the table of a single day.
func (a *AggregateTable) Day(key DayKey) (*DailyHitTable, bool) {
	daily, ok := a.days[key]
	return daily, ok
}

// Len returns the number of distinct days.
func (a *AggregateTable) Len() int {
	return len(a.days)
}
