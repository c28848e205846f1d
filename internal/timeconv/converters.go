package timeconv

import (
	"cloud.google.com/go/civil"

	"github.com/chronoconv/chronoconv/internal/convert"
	"github.com/chronoconv/chronoconv/internal/legacy"
)

// InstantToDateTime reads src as a wall-clock date and time in env's zone.
func InstantToDateTime(src *legacy.Instant, env convert.Env) *civil.DateTime {
	if src == nil {
		return nil
	}
	dt := civil.DateTimeOf(src.In(env.Location()))
	return &dt
}

// DateTimeToInstant places src in env's zone. Sub-millisecond digits are
// dropped. A wall time skipped by a DST transition moves forward by the gap; a
// repeated one takes the earlier instant.
func DateTimeToInstant(src *civil.DateTime, env convert.Env) *legacy.Instant {
	if src == nil {
		return nil
	}
	return legacy.FromTime(atZone(*src, env.Location()))
}

// InstantToDate reads the calendar date of src in env's zone.
func InstantToDate(src *legacy.Instant, env convert.Env) *civil.Date {
	if src == nil {
		return nil
	}
	d := civil.DateOf(src.In(env.Location()))
	return &d
}

// DateToInstant returns the start of src in env's zone. That is midnight, or
// the first instant of the day when a DST transition skips midnight.
func DateToInstant(src *civil.Date, env convert.Env) *legacy.Instant {
	if src == nil {
		return nil
	}
	return legacy.FromTime(atZone(civil.DateTime{Date: *src}, env.Location()))
}

// InstantToTime reads the time of day of src in env's zone.
func InstantToTime(src *legacy.Instant, env convert.Env) *civil.Time {
	if src == nil {
		return nil
	}
	t := civil.TimeOf(src.In(env.Location()))
	return &t
}

// TimeToInstant combines src with today's date, as reported by env's clock in
// env's zone. The result depends on when it is called: the same time of day
// converted on two different days gives two different instants.
func TimeToInstant(src *civil.Time, env convert.Env) *legacy.Instant {
	if src == nil {
		return nil
	}
	loc := env.Location()
	today := civil.DateOf(env.Now().In(loc))
	return legacy.FromTime(atZone(civil.DateTime{Date: today, Time: *src}, loc))
}
