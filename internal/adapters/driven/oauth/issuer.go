// Package oauth implements token issuance against Google's OAuth endpoints.
package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	driving "github.com/cadence-labs/cadence-cli/internal/adapters/driving/oauth"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// Google OAuth endpoints for installed applications.
const (
	googleAuthURL   = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL  = "https://oauth2.googleapis.com/token"
	googleRevokeURL = "https://oauth2.googleapis.com/revoke"
)

// defaultScopes grants read-only calendar access plus the account email.
var defaultScopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
}

// defaultConsentTimeout bounds how long the interactive flow waits for the
// user to complete consent in the browser.
const defaultConsentTimeout = 3 * time.Minute

// Ensure Issuer implements the driven port.
var _ driven.TokenIssuer = (*Issuer)(nil)

// Issuer obtains access tokens from Google. Consent mode runs the full
// browser flow with PKCE and a loopback callback; silent mode redeems the
// stored refresh grant without any user interaction.
type Issuer struct {
	clientID     string
	clientSecret string
	creds        driven.CredentialsStore

	endpoint       oauth2.Endpoint
	revokeURL      string
	scopes         []string
	openBrowser    func(url string) error
	consentTimeout time.Duration
	httpClient     *http.Client
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithClientSecret sets the OAuth client secret. Installed-app clients
// created without a secret work with PKCE alone.
func WithClientSecret(secret string) IssuerOption {
	return func(i *Issuer) { i.clientSecret = secret }
}

// WithEndpoint overrides the OAuth endpoints.
func WithEndpoint(endpoint oauth2.Endpoint, revokeURL string) IssuerOption {
	return func(i *Issuer) {
		i.endpoint = endpoint
		i.revokeURL = revokeURL
	}
}

// WithBrowserOpener overrides how the consent URL is opened.
func WithBrowserOpener(open func(url string) error) IssuerOption {
	return func(i *Issuer) { i.openBrowser = open }
}

// WithConsentTimeout overrides the interactive flow deadline.
func WithConsentTimeout(d time.Duration) IssuerOption {
	return func(i *Issuer) { i.consentTimeout = d }
}

// NewIssuer creates a token issuer for a client ID.
func NewIssuer(clientID string, creds driven.CredentialsStore, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		clientID: clientID,
		creds:    creds,
		endpoint: oauth2.Endpoint{
			AuthURL:  googleAuthURL,
			TokenURL: googleTokenURL,
		},
		revokeURL:      googleRevokeURL,
		scopes:         defaultScopes,
		openBrowser:    driving.OpenBrowser,
		consentTimeout: defaultConsentTimeout,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue implements driven.TokenIssuer.
func (i *Issuer) Issue(ctx context.Context, mode domain.PromptMode) (*domain.OAuthToken, error) {
	switch mode {
	case domain.PromptConsent:
		return i.issueInteractive(ctx)
	case domain.PromptNone:
		return i.issueSilent(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown prompt mode %q", domain.ErrInvalidInput, mode)
	}
}

// issueInteractive runs the browser consent flow. Consent is always
// re-prompted so a previously declined user gets a fresh decision.
func (i *Issuer) issueInteractive(ctx context.Context) (*domain.OAuthToken, error) {
	state := driving.GenerateState()
	verifier := driving.GenerateCodeVerifier()
	challenge := driving.GenerateCodeChallenge(verifier)

	server := driving.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("%w: callback server: %v", domain.ErrProviderInit, err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			logger.Debug("stopping callback server: %v", err)
		}
	}()

	cfg := i.config(server.RedirectURI())
	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	logger.Info("waiting for consent at %s", server.RedirectURI())
	if err := i.openBrowser(authURL); err != nil {
		return nil, fmt.Errorf("%w: %v (visit %s)", domain.ErrBrowserLaunch, err, authURL)
	}

	code, err := server.WaitForCode(ctx, i.consentTimeout)
	if err != nil {
		if strings.Contains(err.Error(), "access_denied") {
			return nil, domain.ErrConsentDenied
		}
		return nil, fmt.Errorf("authorisation callback: %w", err)
	}

	token, err := cfg.Exchange(i.clientContext(ctx), code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	return fromOAuth2Token(token), nil
}

// issueSilent redeems the stored refresh grant. It fails fast when no
// grant exists; it never opens a browser or prompts.
func (i *Issuer) issueSilent(ctx context.Context) (*domain.OAuthToken, error) {
	record, err := i.creds.GetByClientID(ctx, i.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: no stored grant", domain.ErrSilentSignIn)
	}
	if !record.CanSignInSilently() {
		return nil, fmt.Errorf("%w: stored grant unusable", domain.ErrSilentSignIn)
	}

	cfg := i.config("")
	source := cfg.TokenSource(i.clientContext(ctx), &oauth2.Token{RefreshToken: record.RefreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSilentSignIn, err)
	}

	out := fromOAuth2Token(token)
	if out.RefreshToken == "" {
		// Google omits the refresh token on refresh responses.
		out.RefreshToken = record.RefreshToken
	}
	return out, nil
}

// Revoke implements driven.TokenIssuer. Revocation is best effort; Google
// returns 200 even for already-revoked tokens.
func (i *Issuer) Revoke(ctx context.Context, accessToken string) error {
	data := url.Values{}
	data.Set("token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.revokeURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("create revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke request failed with status %d", resp.StatusCode)
	}
	return nil
}

// config builds the oauth2 configuration for a redirect URI.
func (i *Issuer) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     i.clientID,
		ClientSecret: i.clientSecret,
		Endpoint:     i.endpoint,
		RedirectURL:  redirectURI,
		Scopes:       i.scopes,
	}
}

// clientContext installs the issuer's HTTP client for oauth2 calls.
func (i *Issuer) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, i.httpClient)
}

// fromOAuth2Token converts an oauth2 token to the domain representation.
func fromOAuth2Token(token *oauth2.Token) *domain.OAuthToken {
	return &domain.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
}
