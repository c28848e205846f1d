package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedSchema is the range of config schema versions this build reads.
const SupportedSchema = "^1.0.0"

// ErrIncompatibleSchema is returned when a config file was written for a
// schema version outside SupportedSchema.
var ErrIncompatibleSchema = errors.New("incompatible config schema version")

// CheckCompatible reports whether version falls inside SupportedSchema.
// A leading "v" is tolerated.
func CheckCompatible(version string) error {
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing schema version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedSchema, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("schema version %s, want %s: %w", version, SupportedSchema, ErrIncompatibleSchema)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
