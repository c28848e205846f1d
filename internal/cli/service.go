package cli

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"

	"github.com/chronoconv/chronoconv/internal/capability"
	"github.com/chronoconv/chronoconv/internal/config"
	"github.com/chronoconv/chronoconv/internal/convert"
	"github.com/chronoconv/chronoconv/internal/log"
	"github.com/chronoconv/chronoconv/internal/timeconv"
)

// errCivilDisabled is returned when the civil converters are not registered.
var errCivilDisabled = errors.New("civil conversions are disabled (set civil.enabled=true or build without -tags nocivil)")

// resolveEnv builds the conversion environment from the configured zone,
// overridden by zone when non-empty. A non-nil today pins the clock to that date.
func resolveEnv(zone string, today *civil.Date) (convert.Env, error) {
	if zone == "" {
		zone = config.Current().Zone
	}
	loc, err := config.ResolveZone(zone)
	if err != nil {
		return convert.Env{}, err
	}

	env := convert.Env{Zone: loc, Clock: convert.SystemClock{}}
	if today != nil {
		env.Clock = convert.FixedClock(today.In(loc).Add(12 * time.Hour))
	}
	return env, nil
}

// newService returns a conversion service with every converter this build
// and configuration allow.
func newService(env convert.Env) (*convert.Service, error) {
	probe := capability.CivilTime(config.Current().CivilEnabled)
	converters := timeconv.ConvertersToRegister(probe)
	if len(converters) == 0 {
		return nil, errCivilDisabled
	}

	svc := convert.NewService(env, log.WithComponent("convert", logger))
	if err := svc.AddAll(converters); err != nil {
		return nil, err
	}
	return svc, nil
}
