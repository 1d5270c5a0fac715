package cmd

import (
	"errors"
	"fmt"

	"github.com/gurisko/sentrycli/internal/apiclient"
	"github.com/gurisko/sentrycli/internal/config"
	"github.com/gurisko/sentrycli/internal/debug"
)

var (
	errNoOrganization = errors.New("organization not configured; run 'sentry config -o <org>' first")
	errNoAuthToken    = errors.New("auth token not configured; run 'sentry config -t <token>' or 'sentry-cli login' first")
)

// Overridden in tests.
var (
	newStore      = config.NewStore
	clientOptions []apiclient.Option
)

// newClient resolves credentials and builds an API client. It fails before
// any request is made when the organization or token is missing.
func newClient() (*apiclient.Client, error) {
	cfg, err := newStore().Load()
	if err != nil {
		return nil, err
	}
	cfg = cfg.Merge(config.FromEnv())

	org := valueOf(cfg.Organization)
	if org == "" {
		return nil, errNoOrganization
	}
	token := valueOf(cfg.AuthToken)
	if token == "" {
		return nil, errNoAuthToken
	}

	debug.Log("resolved credentials", "organization", org)
	return apiclient.New(org, token, clientOptions...)
}

func valueOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// explainAuthError adds a remediation hint when the server rejects the token.
func explainAuthError(err error) error {
	if apiclient.IsUnauthorized(err) {
		return fmt.Errorf("auth token rejected; run 'sentry config -t <token>' with a valid token: %w", err)
	}
	return err
}
