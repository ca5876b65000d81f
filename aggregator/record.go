package aggregator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	fieldSeparator = "|"
	// maxTimestamp keeps every DayKey representable as a time.Time.
	maxTimestamp = math.MaxInt64
)

// HitRecord is a single parsed line of the access log.
type HitRecord struct {
	// Timestamp is the access time in seconds since the Unix epoch.
	Timestamp uint64
	URL       string
}

// DayKey returns the start of the UTC day the record falls on.
func (r HitRecord) DayKey() DayKey {
	return DayKeyOf(r.Timestamp)
}

// ParseRecord parses a "<timestampSeconds>|<url>" line. The timestamp must be
// an unsigned decimal no larger than math.MaxInt64. Every failure wraps
// ErrMalformedRecord.
func ParseRecord(line string) (HitRecord, error) {
	if n := strings.Count(line, fieldSeparator) + 1; n != 2 {
		return HitRecord{}, fmt.Errorf("%w: got %d", ErrFieldCount, n)
	}
	rawTimestamp, url, _ := strings.Cut(line, fieldSeparator)

	ts, err := strconv.ParseUint(rawTimestamp, 10, 64)
	if err != nil {
		return HitRecord{}, fmt.Errorf("%w: %v", ErrTimestamp, err)
	}
	if ts > maxTimestamp {
		return HitRecord{}, fmt.Errorf("%w: %d exceeds %d", ErrTimestamp, ts, uint64(maxTimestamp))
	}
	if url == "" {
		return HitRecord{}, ErrEmptyURL
	}
	return HitRecord{Timestamp: ts, URL: url}, nil
}
