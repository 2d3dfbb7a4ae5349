package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into filters, output selection, display, and utility.
// Output flags (--avgtime etc.) are mutually exclusive booleans applied
// after Parse, so the Config default holds unless exactly one is set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, conflicting output
// flags, too many positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("rendstat", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	// Output and color flags are captured as bools and applied to cfg after
	// Parse, so defaults (and environment overrides) hold unless set.
	var extra extraFlags

	defineFilterFlags(fs, cfg)
	defineOutputFlags(fs, &extra)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if extra.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "rendstat v"+version)
		os.Exit(0)
	}

	applyColorFlags(cfg, &extra)
	if err := applyOutputFlags(cfg, &extra); err != nil {
		return err
	}
	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds boolean flags that are applied after Parse: the mutually
// exclusive output selectors, color overrides, and the exit flags.
type extraFlags struct {
	avgTime bool
	avgCPU  bool
	avgRAM  bool
	maxRAM  bool
	maxCPU  bool
	summary bool

	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineFilterFlags registers --app, --renderer, --failed.
func defineFilterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.AppFilter, "app", cfg.AppFilter, "Application to filter renders on (exact match)")
	fs.StringVar(&cfg.RendererFilter, "renderer", cfg.RendererFilter, "Renderer to filter renders on (exact match)")
	fs.BoolVar(&cfg.IncludeFailed, "failed", cfg.IncludeFailed, "Include failed renders in the output")
}

// defineOutputFlags registers the mutually exclusive output selectors.
func defineOutputFlags(fs *flag.FlagSet, n *extraFlags) {
	fs.BoolVar(&n.avgTime, "avgtime", false, "Output the average render time in seconds")
	fs.BoolVar(&n.avgCPU, "avgcpu", false, "Output the average peak CPU")
	fs.BoolVar(&n.avgRAM, "avgram", false, "Output the average peak RAM")
	fs.BoolVar(&n.maxRAM, "maxram", false, "Output the id of the render with the highest peak RAM")
	fs.BoolVar(&n.maxCPU, "maxcpu", false, "Output the id of the render with the highest peak CPU")
	fs.BoolVar(&n.summary, "summary", false, "Output all of the above, one per line")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Check the log directory and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *extraFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyColorFlags copies the color override flags into cfg.
func applyColorFlags(cfg *Config, n *extraFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// applyOutputFlags resolves the mutually exclusive output selectors.
// More than one is an error; none keeps the current mode (default "count"
// or an environment override).
func applyOutputFlags(cfg *Config, n *extraFlags) error {
	var chosen []OutputMode
	for _, sel := range []struct {
		set  bool
		mode OutputMode
	}{
		{n.avgTime, OutputAvgTime},
		{n.avgCPU, OutputAvgCPU},
		{n.avgRAM, OutputAvgRAM},
		{n.maxRAM, OutputMaxRAM},
		{n.maxCPU, OutputMaxCPU},
		{n.summary, OutputSummary},
	} {
		if sel.set {
			chosen = append(chosen, sel.mode)
		}
	}

	switch len(chosen) {
	case 0:
		return nil
	case 1:
		cfg.Output = chosen[0]
		return nil
	}
	names := make([]string, len(chosen))
	for i, m := range chosen {
		names[i] = "--" + string(m)
	}
	return fmt.Errorf("output flags are mutually exclusive (got %s)", strings.Join(names, ", "))
}

// parsePositionalArgs sets Path from the optional positional arg. With no
// arg and no environment override, Path falls back to the current working
// directory.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch {
	case len(args) > 1:
		return fmt.Errorf("expected at most one path argument, got %d", len(args))
	case len(args) == 1:
		cfg.Path = NormalizeDirArg(args[0])
	case cfg.Path == "":
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot resolve working directory: %w", err)
		}
		cfg.Path = wd
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "rendstat v" + version + " — render-farm day-log statistics"},
		{"", ""},
		{"  rendstat [OPTIONS] [path]", ""},
		{"", ""},
		{"", "Scans path (default: current directory) for renders_YYYY-MM-DD.csv"},
		{"", "files and prints the requested statistic."},
		{"", ""},
		{"Filters", ""},
		{"  --app <name>", "Only renders from this application"},
		{"  --renderer <name>", "Only renders from this renderer"},
		{"  --failed", "Include failed renders"},
		{"", ""},
		{"Output (mutually exclusive; default: render count)", ""},
		{"  --avgtime", "Average render time in seconds"},
		{"  --avgcpu", "Average peak CPU"},
		{"  --avgram", "Average peak RAM"},
		{"  --maxram", "Id of the render with the highest peak RAM"},
		{"  --maxcpu", "Id of the render with the highest peak CPU"},
		{"  --summary", "All of the above, one per line"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Check the log directory and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Every flag can also be set via RENDSTAT_* environment variables"},
		{"", "(e.g. RENDSTAT_PATH, RENDSTAT_APP, RENDSTAT_OUTPUT); flags win."},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
