package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

// Config holds the settings of lltab. It is read from a TOML file and serves
// as the global schuko configuration.
type Config struct {
	Trace              string `toml:"trace"`
	TraceDestination   string `toml:"trace-destination"`
	Trim               bool   `toml:"trim"`
	Prompt             string `toml:"prompt"`
	PanicOnSyntaxError bool   `toml:"panic-on-syntax-error"`
}

var _ schuko.Configuration = (*Config)(nil)

func defaultConfig() *Config {
	return &Config{
		Trace:  "Error",
		Trim:   true,
		Prompt: "lltab> ",
	}
}

// loadConfig reads a configuration file. Keys missing from the file keep their
// default values; unknown keys are an error.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown configuration keys in %s: %v", path, undecoded)
	}
	return conf, nil
}

// overrideFrom applies flags which have been set explicitly.
func (c *Config) overrideFrom(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("trace") {
		if c.Trace, err = flags.GetString("trace"); err != nil {
			return err
		}
	}
	if flags.Changed("trim") {
		if c.Trim, err = flags.GetBool("trim"); err != nil {
			return err
		}
	}
	if flags.Changed("panic") {
		if c.PanicOnSyntaxError, err = flags.GetBool("panic"); err != nil {
			return err
		}
	}
	return nil
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Config) InitDefaults() {}

// IsSet is part of interface schuko.Configuration.
func (c *Config) IsSet(key string) bool {
	return c.GetString(key) != ""
}

// GetString is part of interface schuko.Configuration.
func (c *Config) GetString(key string) string {
	switch {
	case key == "tracing" || key == "tracing.adapter":
		return "go"
	case key == "tracing.destination":
		return c.TraceDestination
	case strings.HasPrefix(key, "tracelevel"):
		return c.Trace
	case key == "prompt":
		return c.Prompt
	case key == "trim" || key == "panic-on-syntax-error":
		return fmt.Sprintf("%v", c.GetBool(key))
	}
	return ""
}

// GetInt is part of interface schuko.Configuration.
func (c *Config) GetInt(key string) int {
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Config) GetBool(key string) bool {
	switch key {
	case "trim":
		return c.Trim
	case "panic-on-syntax-error":
		return c.PanicOnSyntaxError
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Config) IsInteractive() bool {
	return false
}

// setup makes conf the global configuration and routes tracing to the Go
// logger, with all tracers at the configured trace level.
func setup(conf *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", conf.Trace)
	return nil
}
