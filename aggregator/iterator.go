package aggregator

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"url_report/logger"
)

// Summary tallies the lines read from an input.
type Summary struct {
	Valid     int64
	Malformed int64
}

// Iterator over the valid records of an access log, line by line.
// Malformed lines are counted and skipped; they never stop the iteration.
// Lines that do not fit in the reader's buffer are discarded up to the next
// newline and counted as malformed.
type recordIterator struct {
	// Reads the underlying input.
	reader *bufio.Reader
	// Parsed record of the current line.
	record HitRecord

	maxURLLength int
	log          logger.Interface

	line    int64
	summary Summary
	err     error
	done    bool
}

func newRecordIterator(reader *bufio.Reader, maxURLLength int, log logger.Interface) *recordIterator {
	return &recordIterator{reader: reader, maxURLLength: maxURLLength, log: log}
}

// Next advances to the next valid record.
// Returns false at EOF or when the underlying reader fails.
func (it *recordIterator) Next() bool {
	if it.err != nil || it.done {
		return false
	}
	for {
		line, ok, err := it.readLine()
		if err != nil {
			it.err = fmt.Errorf("line %d: %w", it.line+1, err)
			it.done = true
			return false
		}
		if !ok {
			it.done = true
			return false
		}
		it.line++

		record, err := it.parse(line)
		if err != nil {
			it.summary.Malformed++
			it.log.Debug("Skipping unexpected line", "line", it.line, "error", err)
			continue
		}
		it.summary.Valid++
		it.record = record
		return true
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// ok is false once the input is exhausted. A line longer than the buffer is
// drained and returned as nil.
func (it *recordIterator) readLine() (line []byte, ok bool, err error) {
	b, err := it.reader.ReadSlice('\n')
	n := len(b)
	tooLong := false
	for errors.Is(err, bufio.ErrBufferFull) {
		tooLong = true
		b, err = it.reader.ReadSlice('\n')
		n += len(b)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}
	if tooLong {
		return nil, true, nil
	}
	b = bytes.TrimSuffix(b, []byte{'\n'})
	b = bytes.TrimSuffix(b, []byte{'\r'})
	return b, true, nil
}

func (it *recordIterator) parse(line []byte) (HitRecord, error) {
	if line == nil {
		return HitRecord{}, fmt.Errorf("%w: larger than %d bytes", ErrLineTooLong, it.reader.Size())
	}
	record, err := ParseRecord(string(line))
	if err != nil {
		return HitRecord{}, err
	}
	if it.maxURLLength > 0 && len(record.URL) > it.maxURLLength {
		return HitRecord{}, fmt.Errorf("%w: %d bytes", ErrURLTooLong, len(record.URL))
	}
	return record, nil
}

func (it *recordIterator) Value() HitRecord {
	return it.record
}

func (it *recordIterator) Err() error {
	return it.err
}

func (it *recordIterator) Done() bool {
	return it.done
}

// Summary reports the lines seen so far.
func (it *recordIterator) Summary() Summary {
	return it.summary
}
