package convert

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

var (
	// ErrNoConverter is returned when no converter is registered for a pair.
	ErrNoConverter = errors.New("no converter registered")
	// ErrDuplicatePair is returned when a pair is registered twice.
	ErrDuplicatePair = errors.New("converter already registered")
	// ErrSourceType is returned when a value does not match a converter's source type.
	ErrSourceType = errors.New("unexpected source type")
)

// Pair identifies a converter by its source and target value types.
// Both are non-pointer types, e.g. legacy.Instant and civil.Date.
type Pair struct {
	Source reflect.Type
	Target reflect.Type
}

// PairOf returns the Pair for converting S into T.
func PairOf[S, T any]() Pair {
	return Pair{Source: reflect.TypeFor[S](), Target: reflect.TypeFor[T]()}
}

func (p Pair) String() string {
	return p.Source.String() + " -> " + p.Target.String()
}

// Clock supplies the current time. Conversions that need "today" read it from here.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using time.Now.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always reports the same time.
type FixedClock time.Time

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Env carries the inputs a conversion takes besides its source value.
type Env struct {
	// Zone interprets civil values as instants and back. Nil means UTC.
	Zone *time.Location
	// Clock supplies "today". Nil means SystemClock.
	Clock Clock
}

// Location returns the zone, defaulting to UTC.
func (e Env) Location() *time.Location {
	if e.Zone == nil {
		return time.UTC
	}
	return e.Zone
}

// Now returns the current time from the clock, defaulting to the system clock.
func (e Env) Now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// Converter is a stateless, one-directional conversion between two types.
type Converter interface {
	// Pair reports the source and target types.
	Pair() Pair
	// Convert maps src to the target type. src may be nil, a value of the
	// source type, or a pointer to one; nil in gives nil out.
	Convert(src any, env Env) (any, error)
}

// New wraps the typed conversion fn as a Converter named name. fn is only
// called with a non-nil source.
func New[S, T any](name string, fn func(src *S, env Env) *T) Converter {
	return funcConverter[S, T]{name: name, fn: fn}
}

type funcConverter[S, T any] struct {
	name string
	fn   func(*S, Env) *T
}

func (c funcConverter[S, T]) Pair() Pair {
	return PairOf[S, T]()
}

func (c funcConverter[S, T]) Convert(src any, env Env) (any, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case *S:
		if v == nil {
			return (*T)(nil), nil
		}
		return c.fn(v, env), nil
	case S:
		return c.fn(&v, env), nil
	default:
		return nil, fmt.Errorf("%s: got %T, want %s: %w", c.name, src, reflect.TypeFor[S](), ErrSourceType)
	}
}

func (c funcConverter[S, T]) String() string {
	return c.name
}
