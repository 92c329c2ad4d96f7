package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// AuthController exposes explicit sign-in and sign-out over the provider
// handle. It is the only writer of the token holder.
type AuthController struct {
	clientID string
	issuer   driven.TokenIssuer
	holder   driven.TokenHolder
	hints    driven.ConnectionHintStore
	creds    driven.CredentialsStore
	now      func() time.Time
}

// NewAuthController creates an auth controller for a client ID.
func NewAuthController(
	clientID string,
	issuer driven.TokenIssuer,
	holder driven.TokenHolder,
	hints driven.ConnectionHintStore,
	creds driven.CredentialsStore,
) *AuthController {
	return &AuthController{
		clientID: clientID,
		issuer:   issuer,
		holder:   holder,
		hints:    hints,
		creds:    creds,
		now:      time.Now,
	}
}

// SignIn requests an access token in the given prompt mode. On success the
// token is installed into the holder, the durability hint persisted and,
// when the grant carries a refresh token, the credentials stored for
// future silent sign-ins. On failure nothing is persisted.
func (c *AuthController) SignIn(ctx context.Context, mode domain.PromptMode) error {
	token, err := c.issuer.Issue(ctx, mode)
	if err != nil {
		return fmt.Errorf("sign in (%s): %w", mode, err)
	}

	c.holder.SetToken(token)

	if err := c.hints.Save(domain.ConnectionHint{Connected: true, ClientID: c.clientID}); err != nil {
		// The session still works for this process; only restore suffers.
		logger.Warn("could not persist connection hint: %v", err)
	}

	if token.RefreshToken != "" {
		if err := c.saveRefreshToken(ctx, token.RefreshToken); err != nil {
			logger.Warn("could not persist refresh token: %v", err)
		}
	}

	logger.Info("signed in (%s)", mode)
	return nil
}

// SignOut revokes the held token with the provider (best effort), then
// unconditionally clears the token holder, the durability hint and the
// stored credentials. It never fails: the caller always treats sign-out
// as having succeeded locally.
func (c *AuthController) SignOut(ctx context.Context) {
	if token := c.holder.Token(); token != nil && token.AccessToken != "" {
		if err := c.issuer.Revoke(ctx, token.AccessToken); err != nil {
			// Revocation is advisory.
			logger.Debug("token revocation failed: %v", err)
		}
	}

	c.holder.Clear()

	if err := c.hints.Clear(); err != nil {
		logger.Debug("clearing connection hint: %v", err)
	}
	if err := c.creds.DeleteByClientID(ctx, c.clientID); err != nil {
		logger.Debug("clearing credentials: %v", err)
	}

	logger.Info("signed out")
}

// saveRefreshToken upserts the credentials record for this client ID.
func (c *AuthController) saveRefreshToken(ctx context.Context, refreshToken string) error {
	now := c.now()

	record := domain.Credentials{
		ID:           uuid.New().String(),
		ClientID:     c.clientID,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if existing, err := c.creds.GetByClientID(ctx, c.clientID); err == nil {
		record.ID = existing.ID
		record.AccountEmail = existing.AccountEmail
		record.CreatedAt = existing.CreatedAt
	}

	return c.creds.Save(ctx, record)
}
