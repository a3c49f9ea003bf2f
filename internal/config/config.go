// Package config resolves tyrefit settings from flags, environment, and
// rc files through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved tyrefit configuration. Precedence is
// flag > environment > rc file > default; flag binding happens in cmd.
type Config struct {
	// Profile names a built-in limit profile. ProfileFile, when set, loads a
	// custom profile instead and takes precedence.
	Profile     string `mapstructure:"profile"`
	ProfileFile string `mapstructure:"profile-file"`

	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`

	// MinScore overrides the profile's minimum surfaced score when non-zero.
	MinScore int `mapstructure:"min-score"`

	Vehicle string `mapstructure:"vehicle"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	NoColor bool   `mapstructure:"no-color"`
}

// rcFileNames are the config files searched in the working directory and
// then $HOME; the first one found wins.
var rcFileNames = []string{".tyrefitrc.json", ".tyrefitrc.yaml", ".tyrefitrc.yml"}

// Load resolves and validates the configuration.
func Load() (*Config, error) {
	viper.SetDefault("profile", "standard")
	viper.SetDefault("profile-file", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("min-score", 0)
	viper.SetDefault("vehicle", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("no-color", false)

	if path := findRCFile(); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	viper.SetEnvPrefix("TYREFIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// findRCFile returns the first rc file present in the working directory or
// $HOME, or "" when there is none. Missing rc files are not an error.
func findRCFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		for _, name := range rcFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("min-score must be in 0-100, got %d", config.MinScore)
	}

	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}

	return nil
}
