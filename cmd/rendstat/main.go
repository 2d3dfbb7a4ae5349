// Command rendstat is the CLI entrypoint for the render-farm log scanner.
//
// It parses flags (with RENDSTAT_* environment overrides), validates
// configuration, and either runs the --check diagnostics or the
// scan-and-report pipeline. The selected statistic is the only thing
// printed to stdout by default; diagnostics go through the logger.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/rendstat/internal/check"
	"github.com/backmassage/rendstat/internal/config"
	"github.com/backmassage/rendstat/internal/display"
	"github.com/backmassage/rendstat/internal/logging"
	"github.com/backmassage/rendstat/internal/pipeline"
	"github.com/backmassage/rendstat/internal/stats"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, diagnostics go
	// through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rendstat: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "rendstat: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "rendstat: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendstat: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	if cfg.Verbose {
		display.PrintBanner()
		log.Info("=== rendstat v%s ===", version)
		log.Info("Scanning: %s", cfg.Path)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Phase 3: Scan all day logs and fold them into one aggregate.
	agg, err := pipeline.Run(&cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	text, err := stats.Report(agg, cfg.Output)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	fmt.Println(text)
	return 0
}
