package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectionHint_Matches(t *testing.T) {
	tests := []struct {
		name     string
		hint     ConnectionHint
		clientID string
		want     bool
	}{
		{"matching connected hint", ConnectionHint{Connected: true, ClientID: "abc"}, "abc", true},
		{"different client ID", ConnectionHint{Connected: true, ClientID: "abc"}, "xyz", false},
		{"not connected", ConnectionHint{Connected: false, ClientID: "abc"}, "abc", false},
		{"empty client ID", ConnectionHint{Connected: true, ClientID: ""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hint.Matches(tt.clientID))
		})
	}
}

func TestPromptMode_String(t *testing.T) {
	assert.Equal(t, "consent", PromptConsent.String())
	assert.Equal(t, "none", PromptNone.String())
}

func TestSessionStatus_String(t *testing.T) {
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
}

func TestOAuthToken_IsUsable(t *testing.T) {
	var nilToken *OAuthToken
	assert.False(t, nilToken.IsUsable())

	empty := &OAuthToken{}
	assert.False(t, empty.IsUsable())

	valid := &OAuthToken{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)}
	assert.True(t, valid.IsUsable())

	expired := &OAuthToken{AccessToken: "tok", Expiry: time.Now().Add(-time.Minute)}
	assert.False(t, expired.IsUsable())

	noExpiry := &OAuthToken{AccessToken: "tok"}
	assert.True(t, noExpiry.IsUsable())
}

func TestCredentials_CanSignInSilently(t *testing.T) {
	var nilCreds *Credentials
	assert.False(t, nilCreds.CanSignInSilently())

	assert.False(t, (&Credentials{}).CanSignInSilently())
	assert.True(t, (&Credentials{RefreshToken: "rt"}).CanSignInSilently())
}
