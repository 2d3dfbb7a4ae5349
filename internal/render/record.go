// Package render defines the decoded render-log record and the row filter
// applied to it during a scan.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldCount is the fixed number of columns in a day-log row:
// id, application, renderer, frame count, success, render time (ms),
// peak RAM (MB), peak CPU (%).
const FieldCount = 8

// Record is one decoded render job. Optional numeric fields are nil when the
// source column was empty or unparsable; a present zero and an absent value
// are distinct.
type Record struct {
	ID          string
	Application string
	Renderer    string
	FrameCount  int
	Succeeded   bool

	RenderTimeMillis *int64
	PeakRAMMB        *float64
	PeakCPUPercent   *float64
}

// Decode builds a Record from one raw CSV row. FrameCount must parse as an
// integer; any failure there (or a wrong column count) makes the whole row
// malformed. The success column is trimmed and compared case-sensitively
// against the literal "true"; everything else means failed. The three
// trailing numeric columns are each parsed independently and degrade to
// absent on failure.
func Decode(fields []string) (Record, error) {
	if len(fields) != FieldCount {
		return Record{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}

	frames, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return Record{}, fmt.Errorf("frame count %q is not an integer", fields[3])
	}

	return Record{
		ID:               fields[0],
		Application:      fields[1],
		Renderer:         fields[2],
		FrameCount:       frames,
		Succeeded:        strings.TrimSpace(fields[4]) == "true",
		RenderTimeMillis: optionalInt(fields[5]),
		PeakRAMMB:        optionalFloat(fields[6]),
		PeakCPUPercent:   optionalFloat(fields[7]),
	}, nil
}

// optionalInt parses s as an integer, returning nil when it doesn't parse.
func optionalInt(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// optionalFloat parses s as a float, returning nil when it doesn't parse.
func optionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
