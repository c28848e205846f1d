// Package capability gates optional feature sets. A Probe answers once
// whether a feature is available; the civil date/time conversions are
// gated on a build tag plus the civil.enabled configuration flag.
package capability
