// Package pipeline orchestrates file selection, per-file streaming, and the
// fold into the run's statistics accumulator.
package pipeline

import (
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/backmassage/rendstat/internal/config"
	"github.com/backmassage/rendstat/internal/logging"
	"github.com/backmassage/rendstat/internal/render"
	"github.com/backmassage/rendstat/internal/stats"
)

// Run is the top-level scan entry point. It selects the day-log files under
// cfg.Path and streams them sequentially through the decoder and filter,
// folding accepted records into a single accumulator.
//
// The run aborts on the first malformed row (no partial output): a required
// field that fails to parse means the file is not trustworthy, matching the
// strict behavior downstream tooling expects.
func Run(cfg *config.Config, log *logging.Logger) (*stats.Aggregate, error) {
	files, err := SelectFiles(cfg.Path)
	if err != nil {
		return nil, err
	}
	log.Debug(cfg.Verbose, "Found %d day log(s) in %s", len(files), cfg.Path)

	criteria := cfg.Criteria()
	agg := stats.New()
	for _, path := range files {
		accepted, err := scanFile(path, criteria, agg)
		if err != nil {
			return nil, err
		}
		log.Debug(cfg.Verbose, "%s: %d record(s) accepted", filepath.Base(path), accepted)
	}
	return agg, nil
}

// scanFile streams one file, folding accepted records into agg. The file
// handle is closed before returning; a close failure is joined onto any
// scan error.
func scanFile(path string, criteria render.Criteria, agg *stats.Aggregate) (accepted int, err error) {
	sc, err := OpenScanner(path, criteria)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = multierr.Append(err, sc.Close())
	}()

	for {
		rec, ok, err := sc.Next()
		if err != nil {
			return accepted, err
		}
		if !ok {
			return accepted, nil
		}
		agg.Update(rec)
		accepted++
	}
}
