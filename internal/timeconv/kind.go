package timeconv

import (
	"fmt"
	"reflect"

	"cloud.google.com/go/civil"
	"github.com/samber/lo"

	"github.com/chronoconv/chronoconv/internal/legacy"
)

// Kind names one of the convertible value types on the command line.
type Kind string

const (
	KindInstant  Kind = "instant"
	KindDateTime Kind = "datetime"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
)

// KindInfo describes how a kind maps onto Go types and text.
type KindInfo struct {
	Type    reflect.Type
	Example string
	parse   func(string) (any, error)
}

// AllKinds returns all supported kinds.
func AllKinds() []Kind {
	return []Kind{KindInstant, KindDateTime, KindDate, KindTime}
}

// kindRegistry maps each kind to its value type and text parser.
var kindRegistry = map[Kind]KindInfo{
	KindInstant: {
		Type:    reflect.TypeFor[legacy.Instant](),
		Example: "2014-03-01T00:00:00Z",
		parse: func(s string) (any, error) {
			return legacy.Parse(s)
		},
	},
	KindDateTime: {
		Type:    reflect.TypeFor[civil.DateTime](),
		Example: "2014-03-01T00:00:00",
		parse: func(s string) (any, error) {
			dt, err := civil.ParseDateTime(s)
			if err != nil {
				return nil, err
			}
			return &dt, nil
		},
	},
	KindDate: {
		Type:    reflect.TypeFor[civil.Date](),
		Example: "2014-03-01",
		parse: func(s string) (any, error) {
			d, err := civil.ParseDate(s)
			if err != nil {
				return nil, err
			}
			return &d, nil
		},
	},
	KindTime: {
		Type:    reflect.TypeFor[civil.Time](),
		Example: "12:30:00",
		parse: func(s string) (any, error) {
			t, err := civil.ParseTime(s)
			if err != nil {
				return nil, err
			}
			return &t, nil
		},
	},
}

// ParseKind converts a string to a Kind, returning false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "instant":
		return KindInstant, true
	case "datetime":
		return KindDateTime, true
	case "date":
		return KindDate, true
	case "time":
		return KindTime, true
	default:
		return "", false
	}
}

// KindOf returns the kind whose value type is t.
func KindOf(t reflect.Type) (Kind, bool) {
	return lo.Find(AllKinds(), func(k Kind) bool {
		return kindRegistry[k].Type == t
	})
}

// Info returns the registry entry for k.
func (k Kind) Info() (KindInfo, bool) {
	info, ok := kindRegistry[k]
	return info, ok
}

// Type returns the Go value type for k, or nil for an unknown kind.
func (k Kind) Type() reflect.Type {
	return kindRegistry[k].Type
}

// Parse reads text as a value of kind k. The result is a pointer to the value type.
func (k Kind) Parse(text string) (any, error) {
	info, ok := kindRegistry[k]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", k)
	}
	v, err := info.parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %q (example %s): %w", k, text, info.Example, err)
	}
	return v, nil
}

// Format renders a converted value as text. Nil values, typed or not, render
// as "null".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case *legacy.Instant:
		if x == nil {
			return "null"
		}
		return x.String()
	case *civil.DateTime:
		if x == nil {
			return "null"
		}
		return x.String()
	case *civil.Date:
		if x == nil {
			return "null"
		}
		return x.String()
	case *civil.Time:
		if x == nil {
			return "null"
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
