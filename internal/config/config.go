// Package config loads runtime settings for the quiz front ends. The answer
// key and the passing score are fixed and are deliberately not settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats accepted by the grade command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultEnvFile is loaded from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds all front-end configuration.
type Config struct {
	// AltScreen runs the terminal form in the alternate screen buffer.
	AltScreen bool

	// Output is the default report format of the grade command.
	// Values: "text", "json"
	Output string

	// Color enables styled (ANSI) text reports.
	Color bool

	// LogDir overrides glog's log directory. Empty keeps glog's default.
	LogDir string
}

// DefaultConfig returns a Config with defaults for every setting.
func DefaultConfig() Config {
	return Config{
		AltScreen: true,
		Output:    OutputText,
		Color:     true,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.AltScreen = envBool("PWAQUIZ_ALT_SCREEN", cfg.AltScreen)
	cfg.Color = envBool("PWAQUIZ_COLOR", cfg.Color)
	cfg.LogDir = os.Getenv("PWAQUIZ_LOG_DIR")

	if v := os.Getenv("PWAQUIZ_OUTPUT"); v != "" {
		cfg.Output = strings.ToLower(strings.TrimSpace(v))
	}
	if err := ValidateOutput(cfg.Output); err != nil {
		return Config{}, fmt.Errorf("PWAQUIZ_OUTPUT: %w", err)
	}
	return cfg, nil
}

// Load reads envFile into the process environment when it exists, without
// overriding variables that are already set, then calls FromEnv.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// ValidateOutput reports whether format is a known report format.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %q or %q)", format, OutputText, OutputJSON)
	}
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
