package convert

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service is a conversion table keyed by (source, target) type pair. It is
// the consumer side of a converter registry: callers register a batch of
// converters once at startup and then convert values by target type.
type Service struct {
	env   Env
	log   logrus.FieldLogger
	mu    sync.RWMutex
	table map[Pair]Converter
	order []Pair
}

// NewService returns an empty Service that converts using env.
func NewService(env Env, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{
		env:   env,
		log:   log,
		table: make(map[Pair]Converter),
	}
}

// Add registers c. Registering the same pair twice returns ErrDuplicatePair.
func (s *Service) Add(c Converter) error {
	pair := c.Pair()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.table[pair]; exists {
		return fmt.Errorf("adding %s: %w", pair, ErrDuplicatePair)
	}
	s.table[pair] = c
	s.order = append(s.order, pair)
	s.log.WithField("pair", pair.String()).Debug("converter registered")
	return nil
}

// AddAll registers every converter in cs, stopping at the first error.
func (s *Service) AddAll(cs []Converter) error {
	for _, c := range cs {
		if err := s.Add(c); err != nil {
			return err
		}
	}
	return nil
}

// CanConvert reports whether a converter exists from src to dst.
func (s *Service) CanConvert(src, dst reflect.Type) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.table[Pair{Source: src, Target: dst}]
	return ok
}

// Pairs returns the registered pairs in registration order.
func (s *Service) Pairs() []Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Pair, len(s.order))
	copy(out, s.order)
	return out
}

// Convert converts src to the value type dst. The source type is taken from
// src, with one level of pointer removed. A nil src returns nil.
func (s *Service) Convert(src any, dst reflect.Type) (any, error) {
	if src == nil {
		return nil, nil
	}

	srcType := reflect.TypeOf(src)
	if srcType.Kind() == reflect.Pointer {
		srcType = srcType.Elem()
	}
	pair := Pair{Source: srcType, Target: dst}

	s.mu.RLock()
	c, ok := s.table[pair]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("converting %s: %w", pair, ErrNoConverter)
	}

	out, err := c.Convert(src, s.env)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pair, err)
	}
	return out, nil
}

// ConvertTo converts src to *T through s.
func ConvertTo[T any](s *Service, src any) (*T, error) {
	out, err := s.Convert(src, reflect.TypeFor[T]())
	if err != nil || out == nil {
		return nil, err
	}
	v, ok := out.(*T)
	if !ok {
		return nil, fmt.Errorf("converter returned %T, want *%s", out, reflect.TypeFor[T]())
	}
	return v, nil
}
