package constants

const (
	OAuth2DeviceBridge = "oauth2-device-bridge"

	QueryParamAuthorizationCode   = "code"
	QueryParamCodeChallenge       = "code_challenge"
	QueryParamCodeChallengeMethod = "code_challenge_method"
	QueryParamCodeVerifier        = "code_verifier"
	QueryParamDeviceCode          = "code"
	QueryParamScopes              = "scope"
	QueryParamState               = "state"

	FormParamDeviceCode = "device-code"

	CodeChallengeMethodS256    = "S256"
	GrantTypeAuthorizationCode = "authorization_code"

	CallbackPath     = "/auth/callback"
	DevicePagePath   = "/device.html"
	CompletePagePath = "/complete.html"
)
