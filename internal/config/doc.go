// Package config manages user-level settings stored at ~/.chronoconv/config.yaml:
// the default time zone, whether the civil conversions are enabled, the log
// level, and the schema version of the file. It also validates config files
// against an embedded JSON schema and checks their schema version.
package config
