package aggregator

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the root of every error returned for a line that
// cannot be turned into a HitRecord. Use errors.Is to test for it.
var ErrMalformedRecord = errors.New("malformed record")

var (
	ErrFieldCount  = fmt.Errorf("%w: expected 2 '|' separated fields", ErrMalformedRecord)
	ErrTimestamp   = fmt.Errorf("%w: invalid timestamp", ErrMalformedRecord)
	ErrEmptyURL    = fmt.Errorf("%w: empty URL", ErrMalformedRecord)
	ErrURLTooLong  = fmt.Errorf("%w: URL too long", ErrMalformedRecord)
	ErrLineTooLong = fmt.Errorf("%w: line does not fit in the read buffer", ErrMalformedRecord)
)
