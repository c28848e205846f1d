package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "chronoconv" {
		t.Errorf("CLIName() = %q, want %q", got, "chronoconv")
	}
	if got := HomeDir(); got != ".chronoconv" {
		t.Errorf("HomeDir() = %q, want %q", got, ".chronoconv")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "CHRONOCONV_HOME" {
		t.Errorf("EnvVar(\"home\") = %q, want %q", got, "CHRONOCONV_HOME")
	}
}
