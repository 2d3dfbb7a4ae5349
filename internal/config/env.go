package config

import "github.com/kelseyhightower/envconfig"

// envOverrides mirrors the RENDSTAT_* environment variables. Environment
// values sit between built-in defaults and CLI flags: flags always win.
type envOverrides struct {
	Path     string `envconfig:"PATH"`
	App      string `envconfig:"APP"`
	Renderer string `envconfig:"RENDERER"`
	Failed   bool   `envconfig:"FAILED"`
	Output   string `envconfig:"OUTPUT"`
	Color    string `envconfig:"COLOR"`
	Log      string `envconfig:"LOG"`
	Verbose  bool   `envconfig:"VERBOSE"`
}

// ApplyEnv merges RENDSTAT_* environment variables into cfg. Enum values
// taken from the environment are checked later by [Config.Validate], with
// the same errors a bad flag would produce.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("rendstat", &env); err != nil {
		return err
	}

	if env.Path != "" {
		cfg.Path = NormalizeDirArg(env.Path)
	}
	if env.App != "" {
		cfg.AppFilter = env.App
	}
	if env.Renderer != "" {
		cfg.RendererFilter = env.Renderer
	}
	if env.Failed {
		cfg.IncludeFailed = true
	}
	if env.Output != "" {
		cfg.Output = OutputMode(env.Output)
	}
	if env.Color != "" {
		cfg.ColorMode = ColorMode(env.Color)
	}
	if env.Log != "" {
		cfg.LogFile = env.Log
	}
	if env.Verbose {
		cfg.Verbose = true
	}
	return nil
}
