package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/rendstat/internal/render"
)

// MalformedRowError reports a row whose required fields could not be
// decoded: a non-integer frame count or a wrong column count. It carries the
// file basename and 1-based line number of the offending row.
type MalformedRowError struct {
	File string
	Line int
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s line %d: malformed row: %v", e.File, e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Scanner streams one day-log file as decoded, filter-accepted records.
// It is forward-only and not restartable; a file is opened, fully streamed,
// and closed before the next file begins.
type Scanner struct {
	file     *os.File
	reader   *csv.Reader
	criteria render.Criteria
	name     string
}

// OpenScanner opens path for streaming with the given row filter.
// The caller owns the returned Scanner and must Close it.
func OpenScanner(path string, criteria render.Criteria) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = render.FieldCount
	return &Scanner{
		file:     f,
		reader:   r,
		criteria: criteria,
		name:     filepath.Base(path),
	}, nil
}

// Next returns the next record accepted by the filter. ok is false at end of
// file. Any error is fatal for the run: the scan does not resume past a
// malformed row.
func (s *Scanner) Next() (render.Record, bool, error) {
	for {
		fields, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			return render.Record{}, false, nil
		}
		if err != nil {
			return render.Record{}, false, s.malformed(err)
		}

		rec, err := render.Decode(fields)
		if err != nil {
			return render.Record{}, false, s.malformed(err)
		}

		if !s.criteria.Accept(rec) {
			continue
		}
		return rec, true, nil
	}
}

// Close releases the underlying file handle.
func (s *Scanner) Close() error {
	return s.file.Close()
}

// malformed wraps cause with file and line context. The line comes from the
// csv parse error when the reader itself failed, and from the position of
// the just-read row when decoding failed.
func (s *Scanner) malformed(cause error) error {
	var pe *csv.ParseError
	if errors.As(cause, &pe) {
		return &MalformedRowError{File: s.name, Line: pe.Line, Err: pe.Err}
	}
	line, _ := s.reader.FieldPos(0)
	return &MalformedRowError{File: s.name, Line: line, Err: cause}
}
