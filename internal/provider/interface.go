package provider

import (
	"context"

	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

// Authorization is the provider-facing half of a device-code session:
// the state that will come back on the redirect, the PKCE verifier for
// the exchange, and the URL the human's browser is sent to.
type Authorization struct {
	State        string
	CodeVerifier string
	URL          string
}

type Interface interface {
	NewAuthorization() (*Authorization, error)
	Exchange(ctx context.Context, code, codeVerifier string) (*store.Token, error)
}
