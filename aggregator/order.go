package aggregator

import "url_report/radix"

// DayReport lists the URLs of one day, most hits first.
type DayReport struct {
	Day  DayKey
	URLs []URLCount
}

// OrderedReport is the fully ordered report: days ascending.
type OrderedReport []DayReport

// Order sorts days ascending and, within each day, URLs by descending count.
// Among URLs with equal counts, the one seen first in the input comes first.
// When top is positive, each day keeps at most top URLs.
func Order(table *AggregateTable, top int) OrderedReport {
	days := make([]DayKey, 0, len(table.days))
	for key := range table.days {
		days = append(days, key)
	}
	days = radix.SortFunc(days, func(d DayKey) uint64 { return uint64(d) })

	report := make(OrderedReport, 0, len(days))
	for _, day := range days {
		report = append(report, DayReport{
			Day:  day,
			URLs: orderURLs(table.days[day], top),
		})
	}
	return report
}

// orderURLs sorts a day's URLs ascending by count and reads the result
// backwards. The URLs are fed in reverse first-seen order so that reading
// backwards restores first-seen order among ties.
func orderURLs(daily *DailyHitTable, top int) []URLCount {
	n := len(daily.counts)
	entries := make([]radix.Entry[string], n)
	for i := range daily.counts {
		c := daily.counts[n-1-i]
		entries[i] = radix.Entry[string]{Key: uint64(c.Count), Payload: c.URL}
	}
	entries = radix.Sort(entries)

	limit := n
	if top > 0 && top < n {
		limit = top
	}
	urls := make([]URLCount, 0, limit)
	for i := n - 1; i >= 0 && len(urls) < limit; i-- {
		urls = append(urls, URLCount{URL: entries[i].Payload, Count: int64(entries[i].Key)})
	}
	return urls
}
