package timeconv

import (
	"github.com/chronoconv/chronoconv/internal/capability"
	"github.com/chronoconv/chronoconv/internal/convert"
)

// Stateless converter values, one per direction.
var (
	DateTimeFromInstant = convert.New("InstantToDateTime", InstantToDateTime)
	InstantFromDateTime = convert.New("DateTimeToInstant", DateTimeToInstant)
	DateFromInstant     = convert.New("InstantToDate", InstantToDate)
	InstantFromDate     = convert.New("DateToInstant", DateToInstant)
	TimeFromInstant     = convert.New("InstantToTime", InstantToTime)
	InstantFromTime     = convert.New("TimeToInstant", TimeToInstant)
)

var civilConverters = [...]convert.Converter{
	DateTimeFromInstant,
	InstantFromDateTime,
	DateFromInstant,
	InstantFromDate,
	TimeFromInstant,
	InstantFromTime,
}

// ConvertersToRegister returns the converters usable in this build and
// configuration. When p reports the civil capability absent the result is
// empty; otherwise it holds the six civil converters in a fixed order:
// instant to date-time and back, instant to date and back, instant to time and back.
//
// Each call returns a new slice, so callers may keep or modify it freely.
func ConvertersToRegister(p capability.Prober) []convert.Converter {
	if !p.Present() {
		return []convert.Converter{}
	}
	out := make([]convert.Converter, len(civilConverters))
	copy(out, civilConverters[:])
	return out
}
