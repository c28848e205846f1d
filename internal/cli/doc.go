// Package cli defines the Cobra command tree for the chronoconv CLI. Each file
// in this package registers one top-level command (convert, converters, config,
// doctor, version) with the root command. Commands delegate conversion work to
// the timeconv and convert packages and only handle flags and output formatting.
package cli
