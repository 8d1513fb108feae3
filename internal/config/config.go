// Package config loads Lumina's settings from defaults, the per-user config
// file, LUMINA_* environment variables and command-line flags, in rising
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DirName is the per-user directory under $HOME holding config and logs.
const DirName = ".lumina"

// Config holds the user's settings.
type Config struct {
	Dir             string `mapstructure:"dir"`
	Theme           string `mapstructure:"theme"`
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
	TreeWidth       int    `mapstructure:"tree_width"`
	LogFile         string `mapstructure:"log_file"`
	Debug           bool   `mapstructure:"debug"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Theme:           "dark",
		ShowLineNumbers: true,
		TreeWidth:       30,
		LogFile:         defaultLogFile(),
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lumina.log")
	}
	return filepath.Join(home, DirName, "lumina.log")
}

// Load reads configuration. configFile, when non-empty, must exist; otherwise
// ~/.lumina/config.{yaml,json,toml} is used if present. flags may be nil;
// only flags the user actually set override file and environment values.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("show_line_numbers", def.ShowLineNumbers)
	v.SetDefault("tree_width", def.TreeWidth)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("debug", false)
	v.SetDefault("dir", "")

	v.SetEnvPrefix("LUMINA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, DirName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps config keys to the command-line flags that can set them.
var flagKeys = map[string]string{
	"dir":               "dir",
	"theme":             "theme",
	"show_line_numbers": "line-numbers",
	"tree_width":        "tree-width",
	"log_file":          "log-file",
	"debug":             "debug",
}

// Validate checks values that would break the layout or logging.
func (c *Config) Validate() error {
	var errs []error
	if c.TreeWidth < 10 {
		errs = append(errs, fmt.Errorf("tree_width must be at least 10, got %d", c.TreeWidth))
	}
	if strings.TrimSpace(c.Theme) == "" {
		errs = append(errs, errors.New("theme cannot be empty"))
	}
	if strings.TrimSpace(c.LogFile) == "" {
		errs = append(errs, errors.New("log_file cannot be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
