// Package config loads process configuration for the resfix server.
//
// Settings come from an optional resfix.toml in the working directory,
// overridden by RESFIX_* environment variables (RESFIX_LOG_LEVEL,
// RESFIX_DEFAULT_FIT, RESFIX_DEFAULT_METHOD, RESFIX_DEFAULT_MULTIPLE).
// The defaults serve tool calls that omit the corresponding parameter.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pixelfit/resfix-mcp/internal/resfix"
)

// Config holds the validated process configuration.
type Config struct {
	// LogLevel is a zerolog level name: debug, info, warn, or error.
	LogLevel string

	// DefaultFit is the fit mode used when a tool call omits "fit".
	DefaultFit resfix.FitMode

	// DefaultMethod is the kernel used when a tool call omits "method".
	DefaultMethod resfix.Filter

	// DefaultMultiple is used when a tool call omits "round_to_multiple".
	DefaultMultiple int
}

// Load reads configuration from file and environment and validates every
// value against the core's allowed sets.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("resfix")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("resfix")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("default_fit", string(resfix.DefaultFit))
	v.SetDefault("default_method", string(resfix.DefaultFilter))
	v.SetDefault("default_multiple", resfix.DefaultMultiple)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	fit, err := resfix.ParseFitMode(v.GetString("default_fit"))
	if err != nil {
		return nil, fmt.Errorf("default_fit: %w", err)
	}

	method, err := resfix.ParseFilter(v.GetString("default_method"))
	if err != nil {
		return nil, fmt.Errorf("default_method: %w", err)
	}

	multiple := v.GetInt("default_multiple")
	if !resfix.ValidMultiple(multiple) {
		return nil, fmt.Errorf("default_multiple: %w: %d not in %v", resfix.ErrInvalidParameter, multiple, resfix.Multiples)
	}

	level := strings.ToLower(v.GetString("log_level"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("log_level: %w: %q", resfix.ErrInvalidParameter, level)
	}

	return &Config{
		LogLevel:        level,
		DefaultFit:      fit,
		DefaultMethod:   method,
		DefaultMultiple: multiple,
	}, nil
}
