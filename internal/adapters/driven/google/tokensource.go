package google

import (
	"golang.org/x/oauth2"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// TokenSourceAdapter adapts the in-process token holder to oauth2.TokenSource.
// This lets Google API clients use the session's access token without the
// client library managing refresh itself.
type TokenSourceAdapter struct {
	holder driven.TokenHolder
}

// NewTokenSource creates an oauth2.TokenSource over a token holder.
// The returned TokenSource can be used with option.WithTokenSource() when
// creating Google API services.
func NewTokenSource(holder driven.TokenHolder) oauth2.TokenSource {
	return &TokenSourceAdapter{holder: holder}
}

// Token implements oauth2.TokenSource.
// Called by Google API clients when they need an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	token := t.holder.Token()
	if !token.IsUsable() {
		return nil, domain.ErrNotAuthenticated
	}

	return &oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		Expiry:      token.Expiry,
	}, nil
}
