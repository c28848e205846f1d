package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// textLayout is RFC 3339 in UTC with a fixed millisecond fraction.
const textLayout = "2006-01-02T15:04:05.000Z07:00"

// Instant is a mutable timestamp with millisecond precision. It carries no
// zone of its own: the value is always an absolute point on the timeline,
// stored as milliseconds since the Unix epoch.
//
// A nil *Instant is the null value.
type Instant struct {
	ms int64
}

// FromMillis returns an Instant at ms milliseconds since the Unix epoch.
func FromMillis(ms int64) *Instant {
	return &Instant{ms: ms}
}

// FromTime returns an Instant at t, truncated to the millisecond.
func FromTime(t time.Time) *Instant {
	return &Instant{ms: t.UnixMilli()}
}

// Millis returns the milliseconds since the Unix epoch.
func (i *Instant) Millis() int64 {
	return i.ms
}

// SetMillis moves the instant to ms milliseconds since the Unix epoch.
func (i *Instant) SetMillis(ms int64) {
	i.ms = ms
}

// SetTime moves the instant to t, truncated to the millisecond.
func (i *Instant) SetTime(t time.Time) {
	i.ms = t.UnixMilli()
}

// Time returns the instant as a time.Time in UTC.
func (i *Instant) Time() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// In returns the instant as a time.Time in loc. A nil loc means UTC.
func (i *Instant) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(i.ms).In(loc)
}

// Equal reports whether i and o name the same instant. Two nil instants are equal.
func (i *Instant) Equal(o *Instant) bool {
	if i == nil || o == nil {
		return i == nil && o == nil
	}
	return i.ms == o.ms
}

// Clone returns an independent copy, so callers can mutate without aliasing.
func (i *Instant) Clone() *Instant {
	if i == nil {
		return nil
	}
	return &Instant{ms: i.ms}
}

// String returns the RFC 3339 UTC form with millisecond precision.
func (i *Instant) String() string {
	if i == nil {
		return "<nil>"
	}
	return i.Time().Format(textLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (i *Instant) MarshalText() ([]byte, error) {
	return []byte(i.Time().Format(textLayout)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instant) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	i.ms = parsed.ms
	return nil
}

// Parse reads an RFC 3339 timestamp (any offset, optional fraction) or a bare
// integer count of epoch milliseconds. Sub-millisecond digits are truncated.
func Parse(s string) (*Instant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("parsing instant: empty value")
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromMillis(ms), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("parsing instant %q: %w", s, err)
	}
	return FromTime(t), nil
}
