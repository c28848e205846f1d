package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v3"
)

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between test runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CHRONOCONV_HOME", dir)
	return dir
}

func TestConvertCommand(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"instant to datetime", []string{"--to", "datetime", "--zone", "UTC", "2014-03-01T00:00:00Z"}, "2014-03-01T00:00:00"},
		{"instant to date in new york", []string{"--to", "date", "--zone", "America/New_York", "2014-03-01T00:00:00Z"}, "2014-02-28"},
		{"instant to time", []string{"--to", "time", "--zone", "Asia/Tokyo", "1393632000000"}, "09:00:00"},
		{"date to instant", []string{"--from", "date", "--to", "instant", "--zone", "UTC", "2014-03-01"}, "2014-03-01T00:00:00.000Z"},
		{"datetime to instant", []string{"--from", "datetime", "--to", "instant", "--zone", "Asia/Tokyo", "2014-03-01T09:00:00"}, "2014-03-01T00:00:00.000Z"},
		{"time to instant with fixed today", []string{"--from", "time", "--to", "instant", "--zone", "UTC", "--today", "2014-03-01", "12:30:00"}, "2014-03-01T12:30:00.000Z"},
		{"null passes through", []string{"--from", "date", "--to", "instant", "null"}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{"convert"}, tt.args...)...)
			if err != nil {
				t.Fatalf("convert %v: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("convert %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestConvertCommandErrors(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown target kind", []string{"convert", "--to", "week", "2014-03-01T00:00:00Z"}},
		{"unknown source kind", []string{"convert", "--from", "week", "--to", "date", "1"}},
		{"unsupported pair", []string{"convert", "--from", "date", "--to", "time", "2014-03-01"}},
		{"bad value", []string{"convert", "--from", "date", "--to", "instant", "March 1st"}},
		{"bad zone", []string{"convert", "--to", "date", "--zone", "Nowhere/Special", "0"}},
		{"bad today", []string{"convert", "--from", "time", "--to", "instant", "--today", "soon", "12:00:00"}},
		{"bad output", []string{"convert", "--to", "date", "-o", "xml", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Errorf("%v succeeded, want error", tt.args)
			}
		})
	}
}

func TestConvertCommandJSON(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "convert", "--to", "date", "--zone", "UTC", "-o", "json", "2014-03-01T00:00:00Z")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	var got conversionResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("parsing JSON output %q: %v", out, err)
	}
	want := conversionResult{From: "instant", To: "date", Zone: "UTC", Input: "2014-03-01T00:00:00Z", Output: "2014-03-01"}
	if got != want {
		t.Errorf("JSON output = %+v, want %+v", got, want)
	}
}

func TestConvertCommandDisabled(t *testing.T) {
	setupHome(t)
	t.Setenv("CHRONOCONV_CIVIL_ENABLED", "false")

	_, err := runCLI(t, "convert", "--to", "date", "0")
	if !errors.Is(err, errCivilDisabled) {
		t.Fatalf("convert with civil disabled error = %v, want errCivilDisabled", err)
	}
}

func TestConvertersCommand(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "converters")
	if err != nil {
		t.Fatalf("converters: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("converters printed %d lines, want 6:\n%s", len(lines), out)
	}
	wantPrefixes := []string{
		"instant  -> datetime",
		"datetime -> instant",
		"instant  -> date",
		"date     -> instant",
		"instant  -> time",
		"time     -> instant",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestConvertersCommandYAML(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "converters", "-o", "yaml")
	if err != nil {
		t.Fatalf("converters: %v", err)
	}
	var infos []pairInfo
	if err := yaml.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("parsing YAML output: %v", err)
	}
	if len(infos) != 6 {
		t.Fatalf("got %d converters, want 6", len(infos))
	}
	if infos[0].Source != "legacy.Instant" || infos[0].Target != "civil.DateTime" {
		t.Errorf("first converter = %+v", infos[0])
	}
}

func TestConfigSetGet(t *testing.T) {
	dir := setupHome(t)

	if _, err := runCLI(t, "config", "set", "zone", "Europe/Paris"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err := runCLI(t, "config", "get", "zone")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if got := strings.TrimSpace(out); got != "Europe/Paris" {
		t.Errorf("config get zone = %q, want Europe/Paris", got)
	}

	out, err = runCLI(t, "convert", "--to", "time", "2014-03-01T00:00:00Z")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got := strings.TrimSpace(out); got != "01:00:00" {
		t.Errorf("convert with configured zone = %q, want 01:00:00", got)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := setupHome(t)
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("civil:\n  enabled: \"yes\"\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := runCLI(t, "config", "validate", bad); err == nil {
		t.Error("config validate on bad file succeeded, want error")
	}
}

func TestDoctor(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	for _, want := range []string{"not found, using defaults", "satisfies ^1.0.0", "6 converter(s) available"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorReportsIncompatibleSchema(t *testing.T) {
	dir := setupHome(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("schema_version: 2.0.0\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	out, err := runCLI(t, "doctor")
	if err == nil {
		t.Fatalf("doctor succeeded with schema 2.0.0:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Errorf("doctor output missing [FAIL]:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	setupHome(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2014-03-01"

	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := strings.TrimSpace(out); got != "1.2.3" {
		t.Errorf("version --short = %q, want 1.2.3", got)
	}
}
