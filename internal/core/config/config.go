package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the viewer binaries.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// LogFile is where the terminal viewer writes its logs. Empty disables them.
	LogFile string `mapstructure:"LOG_FILE"`
	// ServerPort is the port where the web viewer listens.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Worker holds the tracking worker connection details.
	Worker WorkerConfig `mapstructure:",squash"`

	// View holds the per-view presentation settings.
	View ViewConfig `mapstructure:",squash"`

	// RedisURL enables operator notices when set.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// WorkerConfig describes the remote endpoint serving tracking records.
type WorkerConfig struct {
	// URL is the base URL; the viewer reads <URL>/search.
	URL string `mapstructure:"WORKER_URL" required:"true"`
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int `mapstructure:"FETCH_TIMEOUT_SECONDS" default:"10"`
}

// ViewConfig holds view lifetime and display settings.
type ViewConfig struct {
	// TTLSeconds is how long an idle web view is kept before teardown.
	TTLSeconds int `mapstructure:"VIEW_TTL_SECONDS" default:"900"`
	// MaxViews caps the web views kept at once; the least recently seen is evicted.
	MaxViews int `mapstructure:"MAX_VIEWS" default:"1000"`
	// DisplayTimezone is the IANA zone used to format timestamps.
	DisplayTimezone string `mapstructure:"DISPLAY_TIMEZONE" default:"Local"`
}

// FetchTimeout returns the worker timeout as a duration.
func (w WorkerConfig) FetchTimeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// TTL returns the view idle lifetime as a duration.
func (v ViewConfig) TTL() time.Duration {
	return time.Duration(v.TTLSeconds) * time.Second
}

// Location resolves DisplayTimezone.
func (v ViewConfig) Location() (*time.Location, error) {
	if v.DisplayTimezone == "" || v.DisplayTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(v.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", v.DisplayTimezone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	config.Worker.URL = strings.TrimRight(config.Worker.URL, "/")

	if config.Worker.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive, got %d", config.Worker.TimeoutSeconds)
	}
	if config.View.TTLSeconds <= 0 {
		return nil, fmt.Errorf("VIEW_TTL_SECONDS must be positive, got %d", config.View.TTLSeconds)
	}
	if config.View.MaxViews <= 0 {
		return nil, fmt.Errorf("MAX_VIEWS must be positive, got %d", config.View.MaxViews)
	}
	if _, err := config.View.Location(); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
