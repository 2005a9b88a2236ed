// Package config provides configuration management.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"webdev-cost/core/report"
	"webdev-cost/internal/errors"
	"webdev-cost/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. WEBDEV_COST_SERVER_ADDR
const EnvPrefix = "WEBDEV_COST"

// FileName is the config file searched for when no path is given
const FileName = "webdev-cost"

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Report contains PDF report configuration
	Report ReportConfig `json:"report" mapstructure:"report"`

	// Server contains API server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// ShowDetails adds quantity and formula columns to the breakdown
	ShowDetails bool `json:"show_details" mapstructure:"show_details"`
}

// ReportConfig contains report branding and destination
type ReportConfig struct {
	report.Options `mapstructure:",squash"`

	// OutputPath is where the PDF is written
	OutputPath string `json:"output_path" mapstructure:"output_path"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   false,
		},
		Report: ReportConfig{
			Options:    report.DefaultOptions(),
			OutputPath: "Website_Estimate.pdf",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can resolve it on Unmarshal.
	v.SetDefault("output.default_format", defaults.Output.DefaultFormat)
	v.SetDefault("output.show_details", defaults.Output.ShowDetails)
	v.SetDefault("report.company", defaults.Report.Company)
	v.SetDefault("report.tagline", defaults.Report.Tagline)
	v.SetDefault("report.validity_days", defaults.Report.ValidityDays)
	v.SetDefault("report.output_path", defaults.Report.OutputPath)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("logging.development", defaults.Logging.Development)
	return v
}

// Load loads configuration. An explicit path must be a yaml or json file;
// a missing file yields the defaults. With no path, webdev-cost.{yaml,json}
// is searched for in the working directory and ~/.webdev-cost.
func Load(path string) (*Config, error) {
	v := newViper(Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".webdev-cost"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Config("read config", err).WithContext("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the rest of the program relies on
func (c *Config) Validate() error {
	if c.Report.ValidityDays < 0 {
		return errors.Config("report.validity_days must not be negative", nil)
	}
	if c.Report.OutputPath == "" {
		return errors.Config("report.output_path is required", nil)
	}
	if c.Server.Addr == "" {
		return errors.Config("server.addr is required", nil)
	}
	return nil
}

// Save writes the configuration to path; the extension picks yaml or json
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create config directory", err)
	}

	v := viper.New()
	for key, value := range c.Settings() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Config("write config", err).WithContext("path", path)
	}
	return nil
}

// Settings flattens the configuration to dotted keys
func (c *Config) Settings() map[string]interface{} {
	return map[string]interface{}{
		"output.default_format": c.Output.DefaultFormat,
		"output.show_details":   c.Output.ShowDetails,
		"report.company":        c.Report.Company,
		"report.tagline":        c.Report.Tagline,
		"report.validity_days":  c.Report.ValidityDays,
		"report.output_path":    c.Report.OutputPath,
		"server.addr":           c.Server.Addr,
		"logging.level":         c.Logging.Level,
		"logging.format":        c.Logging.Format,
		"logging.output":        c.Logging.Output,
		"logging.development":   c.Logging.Development,
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
