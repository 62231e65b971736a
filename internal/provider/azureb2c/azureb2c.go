// Package azureb2c implements the provider interface for Azure AD B2C
// user flows. The tenant and policy names select the b2clogin.com
// endpoints; the client secret is only ever used here, in the
// server-side authorization-code exchange.
package azureb2c

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/oauth2"

	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/constants"
	"github.com/matheuscscp/oauth2-device-bridge/internal/logging"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider"
	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

const (
	// exchangeTimeout bounds the outbound token-endpoint call so a slow
	// provider cannot stall a callback-handling worker.
	exchangeTimeout = 10 * time.Second
)

type Provider struct {
	conf        *config.ProviderConfig
	callbackURL string

	endpoint *oauth2.Endpoint
}

func New(conf *config.ProviderConfig, callbackURL string) *Provider {
	return &Provider{conf: conf, callbackURL: callbackURL}
}

func Endpoint(tenant, policy string) oauth2.Endpoint {
	base := fmt.Sprintf("https://%s.b2clogin.com/%s.onmicrosoft.com/%s/oauth2/v2.0",
		tenant, tenant, policy)
	return oauth2.Endpoint{
		AuthURL:  base + "/authorize",
		TokenURL: base + "/token",

		// B2C wants client credentials in the request body.
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func (p *Provider) oauth2Config() *oauth2.Config {
	ep := Endpoint(p.conf.Tenant, p.conf.Policy)
	if p.endpoint != nil {
		ep = *p.endpoint
	}
	return &oauth2.Config{
		ClientID:    p.conf.ClientID,
		RedirectURL: p.callbackURL,
		Endpoint:    ep,
		Scopes:      p.conf.Scopes,
	}
}

// NewAuthorization implements provider.Interface.
func (p *Provider) NewAuthorization() (*provider.Authorization, error) {
	codeVerifier, err := provider.PKCEVerifier()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code verifier: %w", err)
	}

	state := uuid.NewString()
	authCodeURL := p.oauth2Config().AuthCodeURL(state,
		oauth2.SetAuthURLParam(constants.QueryParamCodeChallenge, provider.PKCES256Challenge(codeVerifier)),
		oauth2.SetAuthURLParam(constants.QueryParamCodeChallengeMethod, constants.CodeChallengeMethodS256))

	return &provider.Authorization{
		State:        state,
		CodeVerifier: codeVerifier,
		URL:          authCodeURL,
	}, nil
}

// Exchange implements provider.Interface. It performs a single attempt;
// on failure the session stays pending and the human restarts the flow.
func (p *Provider) Exchange(ctx context.Context, code, codeVerifier string) (*store.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	conf := p.oauth2Config()
	conf.ClientSecret = p.conf.ClientSecret
	oauth2Token, err := conf.Exchange(ctx, code,
		oauth2.SetAuthURLParam(constants.QueryParamCodeVerifier, codeVerifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code for tokens: %w", err)
	}

	logSubject(ctx, oauth2Token)

	scope, _ := oauth2Token.Extra(constants.QueryParamScopes).(string)
	expiresIn := oauth2Token.ExpiresIn
	if expiresIn == 0 && !oauth2Token.Expiry.IsZero() {
		expiresIn = int64(time.Until(oauth2Token.Expiry).Seconds())
	}
	return &store.Token{
		AccessToken: oauth2Token.AccessToken,
		TokenType:   oauth2Token.TokenType,
		ExpiresIn:   expiresIn,
		Scope:       scope,
	}, nil
}

// logSubject records who signed in by peeking at the id_token claims.
// The token arrived over TLS straight from the token endpoint, so this
// skips signature verification; it is observability, not authorization.
func logSubject(ctx context.Context, oauth2Token *oauth2.Token) {
	l := logging.FromContext(ctx)

	raw, ok := oauth2Token.Extra("id_token").(string)
	if !ok || raw == "" {
		return
	}
	tok, err := jwt.ParseInsecure([]byte(raw))
	if err != nil {
		l.WithError(err).Debug("failed to parse id_token claims")
		return
	}
	if sub, ok := tok.Subject(); ok {
		l.WithField("subject", sub).Info("authorization code exchanged")
	}
}
