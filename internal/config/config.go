package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chronoconv/chronoconv/internal/branding"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyZone          = "zone"
	KeyCivilEnabled  = "civil.enabled"
	KeyLogLevel      = "log.level"
	KeySchemaVersion = "schema_version"
)

// CurrentSchemaVersion is written into new config files.
const CurrentSchemaVersion = "1.0.0"

// ErrUnknownKey is returned by Set for keys the config file does not define.
var ErrUnknownKey = errors.New("unknown config key")

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Zone          string `json:"zone" yaml:"zone"`
	CivilEnabled  bool   `json:"civil_enabled" yaml:"civil_enabled"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	SchemaVersion string `json:"schema_version" yaml:"schema_version"`
}

// Dir returns the config directory: $CHRONOCONV_HOME if set, else ~/.chronoconv/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.chronoconv/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with dots replaced, e.g. CHRONOCONV_CIVIL_ENABLED.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyZone, "Local")
	viper.SetDefault(KeyCivilEnabled, true)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeySchemaVersion, CurrentSchemaVersion)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		Zone:          viper.GetString(KeyZone),
		CivilEnabled:  viper.GetBool(KeyCivilEnabled),
		LogLevel:      viper.GetString(KeyLogLevel),
		SchemaVersion: viper.GetString(KeySchemaVersion),
	}
}

// Set writes a config key-value pair and saves the config file. The value is
// checked and stored with the key's type, so civil.enabled is written as a
// YAML boolean. Only keys already in the file, plus key, are written:
// defaults and environment overrides stay out of it.
func Set(key, value string) error {
	typed, err := coerce(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	if !file.IsSet(KeySchemaVersion) {
		file.Set(KeySchemaVersion, CurrentSchemaVersion)
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, typed)
	return nil
}

func coerce(key, value string) (any, error) {
	switch key {
	case KeyZone:
		if _, err := ResolveZone(value); err != nil {
			return nil, err
		}
		return value, nil
	case KeyCivilEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false: %w", key, err)
		}
		return b, nil
	case KeyLogLevel:
		level := strings.ToLower(value)
		if _, err := logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return level, nil
	case KeySchemaVersion:
		if _, err := parseSemver(value); err != nil {
			return nil, fmt.Errorf("%s must be a semantic version: %w", key, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
}

// ResolveZone turns a configured zone name into a location. "" and "Local"
// mean the process zone; anything else is looked up in the zone database.
func ResolveZone(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resolving zone %q: %w", name, err)
	}
	return loc, nil
}
