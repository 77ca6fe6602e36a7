// Package config provides functions for reading the config.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigName - config file name without extension
const ConfigName = "dnsswitch"

// ConfigType - config file format
const ConfigType = "yml"

// ETC_PATH - system wide config directory
const ETC_PATH = "/etc/dnsswitch/"

// EnvPrefix - prefix of environment overrides, e.g. DNSSWITCH_SUDO=never
const EnvPrefix = "DNSSWITCH"

// sudo modes
const (
	SudoAuto   = "auto"
	SudoAlways = "always"
	SudoNever  = "never"
)

// Version - version of the running binary
var Version = "dev"

// Current - configuration of the running command, set by cmd
var Current = Default()

// Config - dnsswitch settings
type Config struct {
	Verbosity    int    `yaml:"verbosity" mapstructure:"verbosity"`
	Sudo         string `yaml:"sudo" mapstructure:"sudo"`
	NetworkSetup string `yaml:"networksetup" mapstructure:"networksetup"`
	Scutil       string `yaml:"scutil" mapstructure:"scutil"`
	FlushCache   bool   `yaml:"flush_cache" mapstructure:"flush_cache"`
	Strict       bool   `yaml:"strict" mapstructure:"strict"`
	NoColor      bool   `yaml:"no_color" mapstructure:"no_color"`
}

// SetVersion - sets version for use by other packages
func SetVersion(ver string) {
	Version = ver
}

// Default - built in settings used when nothing else is configured
func Default() Config {
	return Config{
		Sudo:         SudoAuto,
		NetworkSetup: "networksetup",
		Scutil:       "scutil",
	}
}

// SetDefaults registers every known key so env overrides take part in Unmarshal
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("sudo", d.Sudo)
	v.SetDefault("networksetup", d.NetworkSetup)
	v.SetDefault("scutil", d.Scutil)
	v.SetDefault("flush_cache", d.FlushCache)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("no_color", d.NoColor)
}

// GetConfigPaths - directories searched for dnsswitch.yml, most specific first
func GetConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", ConfigName))
	}
	return append(paths, ETC_PATH)
}

// Read loads the configuration held by v. A missing config file is not an error,
// a malformed one is.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate - checks settings that would otherwise fail late on the host
func (c *Config) Validate() error {
	switch c.Sudo {
	case SudoAuto, SudoAlways, SudoNever:
	default:
		return fmt.Errorf("invalid sudo mode %q, expected one of %s, %s, %s", c.Sudo, SudoAuto, SudoAlways, SudoNever)
	}
	if c.NetworkSetup == "" {
		return fmt.Errorf("networksetup path must not be empty")
	}
	if c.Scutil == "" {
		return fmt.Errorf("scutil path must not be empty")
	}
	if c.Verbosity < 0 || c.Verbosity > 4 {
		return fmt.Errorf("verbosity %d out of range 0-4", c.Verbosity)
	}
	return nil
}

// UseSudo reports whether privileged commands must be prefixed with sudo
func (c *Config) UseSudo(isRoot bool) bool {
	switch c.Sudo {
	case SudoAlways:
		return true
	case SudoNever:
		return false
	default:
		return !isRoot
	}
}

// YAML - renders the settings the way a config file would hold them
func (c *Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
