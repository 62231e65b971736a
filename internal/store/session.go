package store

import "time"

type Status int

const (
	StatusPending Status = iota
	StatusAuthorized
)

// Token is the payload captured from the identity provider's token
// endpoint and returned verbatim to the polling device.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// Session is the unit of state tracked per device code. CorrelationID is
// the OAuth state round-tripped through the provider's redirect; it maps
// an incoming browser callback back to the originating device code.
type Session struct {
	DeviceCode    string
	CorrelationID string
	CodeVerifier  string
	AuthorizeURL  string
	Status        Status
	Token         *Token

	createdAt time.Time
}

type OutcomeStatus int

const (
	// OutcomeUnknown covers both never-issued and expired codes so that
	// past codes cannot be enumerated.
	OutcomeUnknown OutcomeStatus = iota
	OutcomePending
	OutcomeReady
)

// Outcome is the three-way result a polling device observes.
type Outcome struct {
	Status OutcomeStatus
	Token  *Token
}
