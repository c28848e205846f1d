// Package convert defines the Converter contract and the Service that holds
// converters keyed by their (source, target) type pair. Conversion inputs
// other than the source value (the time zone and the clock) travel in Env
// rather than being read from process state.
package convert
