// Package radix implements a stable least-significant-digit radix sort for
// non-negative integer keys.
//
// Keys are bucketed one decimal digit at a time, starting with the ones place.
// Entries are never compared with each other, so the cost is O(d*n) where d is
// the number of decimal digits in the largest key.
package radix

import "math"

const base = 10

// Entry pairs a sort key with an arbitrary payload.
type Entry[T any] struct {
	Key     uint64
	Payload T
}

// Sort orders entries ascending by Key. Entries with equal keys keep their
// relative order, so callers may reverse the result to get a descending order
// in which ties appear in reverse input order.
//
// The slice is reordered in place and returned.
func Sort[T any](entries []Entry[T]) []Entry[T] {
	sorted, _ := sortPasses(entries)
	return sorted
}

// SortFunc orders items ascending by the key extracted from each item. It is
// stable, like Sort. The input slice is left untouched.
func SortFunc[T any](items []T, key func(T) uint64) []T {
	entries := make([]Entry[T], len(items))
	for i, item := range items {
		entries[i] = Entry[T]{Key: key(item), Payload: item}
	}
	entries = Sort(entries)

	sorted := make([]T, len(entries))
	for i, e := range entries {
		sorted[i] = e.Payload
	}
	return sorted
}

// sortPasses does the work for Sort and reports how many distribution passes
// were made.
//
// The loop stops after a pass in which every key had no digits left at or above
// the current place. A pass that finds the highest digit still non-zero is
// therefore always followed by one more pass that moves nothing.
func sortPasses[T any](entries []Entry[T]) ([]Entry[T], int) {
	if len(entries) == 0 {
		return entries, 0
	}

	var buckets [base][]Entry[T]
	passes := 0
	place := uint64(1)
	for {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}

		maxDigitReached := true
		for _, e := range entries {
			rest := e.Key / place
			d := rest % base
			buckets[d] = append(buckets[d], e)
			if rest > 0 {
				maxDigitReached = false
			}
		}

		n := 0
		for _, bucket := range buckets {
			n += copy(entries[n:], bucket)
		}
		passes++

		// place cannot grow past 10^19 in a uint64; by then every digit has
		// been consumed.
		if maxDigitReached || place > math.MaxUint64/base {
			return entries, passes
		}
		place *= base
	}
}
