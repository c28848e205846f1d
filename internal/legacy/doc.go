// Package legacy holds the Instant type: a mutable, millisecond-precision
// timestamp that older persistence layers exchange. It is the source and target
// of the civil conversions in package timeconv.
package legacy
