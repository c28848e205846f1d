//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chronoconv/chronoconv/internal/capability"
	"github.com/chronoconv/chronoconv/internal/config"
	"github.com/chronoconv/chronoconv/internal/convert"
	"github.com/chronoconv/chronoconv/internal/timeconv"
)

// setupHome points CHRONOCONV_HOME at a temp dir, writes content as the
// config file (skipped when empty), and loads it.
func setupHome(t *testing.T, content string) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("CHRONOCONV_HOME", home)

	if content != "" {
		path := filepath.Join(home, "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
	}

	config.Load()
	return home
}

// newService builds a conversion service the way the CLI does at startup.
func newService(t *testing.T, clock convert.Clock) *convert.Service {
	t.Helper()

	settings := config.Current()
	loc, err := config.ResolveZone(settings.Zone)
	if err != nil {
		t.Fatalf("resolving zone: %v", err)
	}

	svc := convert.NewService(convert.Env{Zone: loc, Clock: clock}, nil)
	converters := timeconv.ConvertersToRegister(capability.CivilTime(settings.CivilEnabled))
	if err := svc.AddAll(converters); err != nil {
		t.Fatalf("registering converters: %v", err)
	}
	return svc
}
