// Package config holds runtime configuration: defaults, RENDSTAT_*
// environment overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/backmassage/rendstat/internal/render"
)

// --- Enum types for validated string fields ---

// OutputMode selects which statistic a run prints.
type OutputMode string

const (
	OutputCount   OutputMode = "count"   // Number of accepted renders (default).
	OutputAvgTime OutputMode = "avgtime" // Average render time in seconds.
	OutputAvgCPU  OutputMode = "avgcpu"  // Average peak CPU percentage.
	OutputAvgRAM  OutputMode = "avgram"  // Average peak RAM in MB.
	OutputMaxRAM  OutputMode = "maxram"  // Id of the render with the highest peak RAM.
	OutputMaxCPU  OutputMode = "maxcpu"  // Id of the render with the highest peak CPU.
	OutputSummary OutputMode = "summary" // All five derived values, one per line.
)

// OutputModes lists every valid mode, in help-text order.
var OutputModes = []OutputMode{
	OutputCount, OutputAvgTime, OutputAvgCPU, OutputAvgRAM,
	OutputMaxRAM, OutputMaxCPU, OutputSummary,
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden by [ApplyEnv], and then mutated by [ParseFlags]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Scan target (positional arg; empty means the current working directory).
	Path string

	// Row filters.
	AppFilter      string // Exact application name, "" = no filter.
	RendererFilter string // Exact renderer name, "" = no filter.
	IncludeFailed  bool   // Include failed renders in the output.

	// Output selection.
	Output OutputMode // Default: "count".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the built-in defaults. Used as the
// base before [ApplyEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Output:    OutputCount,
		ColorMode: ColorAuto,
	}
}

// Criteria returns the row filter derived from this config.
func (c *Config) Criteria() render.Criteria {
	return render.Criteria{
		Application:   c.AppFilter,
		Renderer:      c.RendererFilter,
		IncludeFailed: c.IncludeFailed,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that a scan path is
// present. All failures are reported together.
func (c *Config) Validate() error {
	var errs error

	if !validOutputMode(c.Output) {
		errs = multierr.Append(errs, fmt.Errorf("invalid output %q (use %s)", c.Output, outputModeList()))
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		errs = multierr.Append(errs, errors.New("invalid color mode (use 'auto', 'always' or 'never')"))
	}

	if c.Path == "" {
		errs = multierr.Append(errs, errors.New("no scan path resolved"))
	}
	return errs
}

func validOutputMode(m OutputMode) bool {
	for _, v := range OutputModes {
		if m == v {
			return true
		}
	}
	return false
}

func outputModeList() string {
	names := make([]string, len(OutputModes))
	for i, m := range OutputModes {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}
