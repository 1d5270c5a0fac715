package config

import "github.com/spf13/viper"

// Environment variables that override file-based settings.
const (
	EnvOrganization = "SENTRY_ORG"
	EnvAuthToken    = "SENTRY_AUTH_TOKEN"
)

// FromEnv returns the settings present in the environment. Empty variables
// count as unset.
func FromEnv() Config {
	v := viper.New()
	_ = v.BindEnv(keyOrganization, EnvOrganization)
	_ = v.BindEnv(keyAuthToken, EnvAuthToken)

	var cfg Config
	if v.IsSet(keyOrganization) {
		cfg.Organization = String(v.GetString(keyOrganization))
	}
	if v.IsSet(keyAuthToken) {
		cfg.AuthToken = String(v.GetString(keyAuthToken))
	}
	return cfg
}
