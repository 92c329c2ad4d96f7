package domain

import "time"

// Credentials stores the tokens for a connected Google account, keyed by
// the OAuth client ID they were granted to. The access token is never
// persisted; only the refresh token survives a restart, serving as the
// native analogue of the provider's browser session for silent sign-in.
type Credentials struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// ClientID is the OAuth client ID the grant belongs to.
	ClientID string `json:"client_id"`
	// AccountEmail is the connected account's address, when known.
	AccountEmail string `json:"account_email,omitempty"`
	// RefreshToken is used to mint access tokens without a prompt.
	RefreshToken string `json:"refresh_token,omitempty"`
	// CreatedAt is when the credentials were created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the credentials were last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// CanSignInSilently reports whether a silent sign-in attempt is possible.
func (c *Credentials) CanSignInSilently() bool {
	return c != nil && c.RefreshToken != ""
}

// OAuthToken is an access token granted by the identity provider.
// It lives in the in-memory token holder only.
type OAuthToken struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken accompanies interactive grants; empty on silent refresh.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the token has expired.
func (t *OAuthToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// IsUsable reports whether the token can authenticate a request.
func (t *OAuthToken) IsUsable() bool {
	return t != nil && t.AccessToken != "" && !t.IsExpired()
}
