// Package config loads the settings of the sss command from defaults, a YAML
// file, SSS_* environment variables and bound command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/share"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SSS_PROFILE.
	EnvPrefix = "SSS"
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "SSS_CONFIG"
	// FileName is the base name searched for in $HOME and the working directory.
	FileName = ".sss"
)

// Config holds the effective settings.
type Config struct {
	Profile   string `mapstructure:"profile" json:"profile"`
	Shares    int    `mapstructure:"shares" json:"shares"`
	Threshold int    `mapstructure:"threshold" json:"threshold"`
	LogLevel  string `mapstructure:"log_level" json:"log_level"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Profile:   field.DefaultProfile,
		Shares:    5,
		Threshold: 3,
		LogLevel:  "info",
	}
}

// NewViper returns a viper instance carrying the defaults and environment
// bindings. Callers bind their flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("profile", d.Profile)
	v.SetDefault("shares", d.Shares)
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the merged configuration.
// path overrides SSS_CONFIG; without either, $HOME/.sss.yaml and ./.sss.yaml
// are searched. A missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings every command depends on: the profile name
// and the log level.
func (c *Config) Validate() error {
	if field.ProfileGet(c.Profile) == nil {
		return fmt.Errorf("unknown profile %q (available: %s)", c.Profile, strings.Join(field.ProfileNames(), ", "))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ValidatePolicy checks the threshold policy used when splitting.
func (c *Config) ValidatePolicy() error {
	if c.Shares < 2 || c.Shares > share.MaxIndex {
		return fmt.Errorf("shares must be in [2, %d], got %d", share.MaxIndex, c.Shares)
	}
	if c.Threshold < 2 || c.Threshold > c.Shares {
		return fmt.Errorf("threshold must be in [2, shares], got %d", c.Threshold)
	}
	return nil
}

// FieldProfile resolves the configured profile. The demonstration profile is
// only returned when insecureDemo is set explicitly.
func (c *Config) FieldProfile(insecureDemo bool) *field.Profile {
	if insecureDemo {
		return field.InsecureDemo()
	}
	return field.ProfileGet(c.Profile)
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
