package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthAPIKey sends a raw API key in a header.
	AuthAPIKey
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Key is the API key value.
	Key string
	// Name is the header name. Defaults to "X-API-Key".
	Name string
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: headerName}
}

// apply sets the auth header, replacing any value already present.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil || a.Type != AuthAPIKey {
		return
	}
	name := a.Name
	if name == "" {
		name = "X-API-Key"
	}
	req.Header.Set(name, a.Key)
}
