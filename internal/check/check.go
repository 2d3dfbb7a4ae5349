// Package check provides the --check diagnostics mode: it validates the
// scan path and takes a quick look at the day logs a run would pick up,
// without computing any statistics.
package check

import (
	"path/filepath"

	"github.com/backmassage/rendstat/internal/config"
	"github.com/backmassage/rendstat/internal/display"
	"github.com/backmassage/rendstat/internal/pipeline"
	"github.com/backmassage/rendstat/internal/render"
)

// maxListed caps how many filenames the check prints.
const maxListed = 5

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: validates the path, reports
// how many matching day logs are present, names the first few, and confirms
// the first file opens and its first row decodes. Returns false only when
// the path itself is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Log directory check ===")

	files, err := pipeline.SelectFiles(cfg.Path)
	if err != nil {
		log.Error("%v", err)
		return false
	}

	if len(files) == 0 {
		log.Warn("No files matching renders_YYYY-MM-DD.csv in %s", cfg.Path)
		return true
	}

	log.Success("%s in %s", display.FormatFileCount(len(files)), cfg.Path)
	for i, f := range files {
		if i == maxListed {
			log.Info("  ... and %d more", len(files)-maxListed)
			break
		}
		log.Info("  %s", filepath.Base(f))
	}

	checkSample(files[0], log)
	return true
}

// checkSample opens the first day log and decodes its first row, so an
// obviously broken export surfaces before a real run.
func checkSample(path string, log Logger) {
	base := filepath.Base(path)

	sc, err := pipeline.OpenScanner(path, render.Criteria{IncludeFailed: true})
	if err != nil {
		log.Error("Cannot open %s: %v", base, err)
		return
	}
	defer sc.Close()

	rec, ok, err := sc.Next()
	if err != nil {
		log.Error("%v", err)
		return
	}
	if !ok {
		log.Warn("%s is empty", base)
		return
	}
	log.Success("Sample row: %s (%s/%s, %d frames)", rec.ID, rec.Application, rec.Renderer, rec.FrameCount)
}
