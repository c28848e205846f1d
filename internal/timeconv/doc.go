// Package timeconv converts between legacy.Instant and the civil date, time,
// and date-time types. ConvertersToRegister hands the six converters to a
// convert.Service when the civil capability is present, and Kind provides the
// text forms the CLI reads and prints.
package timeconv
