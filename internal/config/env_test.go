package config

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvOrganization, "env-org")
	t.Setenv(EnvAuthToken, "")

	cfg := FromEnv()
	if deref(cfg.Organization) != "env-org" {
		t.Errorf("Organization = %s, want env-org", deref(cfg.Organization))
	}
	if cfg.AuthToken != nil {
		t.Errorf("empty %s should be unset, got %q", EnvAuthToken, *cfg.AuthToken)
	}
}

func TestFromEnv_OverridesFile(t *testing.T) {
	t.Setenv(EnvOrganization, "")
	t.Setenv(EnvAuthToken, "env-token")

	file := Config{Organization: String("file-org"), AuthToken: String("file-token")}
	got := file.Merge(FromEnv())
	if deref(got.Organization) != "file-org" {
		t.Errorf("Organization = %s, want file-org", deref(got.Organization))
	}
	if deref(got.AuthToken) != "env-token" {
		t.Errorf("AuthToken = %s, want env-token", deref(got.AuthToken))
	}
}
