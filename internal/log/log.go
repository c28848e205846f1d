package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = logrus.WarnLevel

// InitLogs returns a text logger writing to out at the named level.
// An empty or unknown level falls back to DefaultLevel.
func InitLogs(out io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(ParseLevel(level))
	return log
}

// ParseLevel parses a logrus level name, falling back to DefaultLevel.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

// WithComponent tags inner with the component that emits the entries.
func WithComponent(component string, inner logrus.FieldLogger) logrus.FieldLogger {
	return inner.WithField("component", component)
}
