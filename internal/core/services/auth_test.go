package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authadapter "github.com/cadence-labs/cadence-cli/internal/adapters/driven/auth"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/storage/memory"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

func newAuthFixture(issuer *fakeIssuer) (*AuthController, *authadapter.TokenHolder, *memory.HintStore, *memory.CredentialsStore) {
	holder := authadapter.NewTokenHolder()
	hints := memory.NewHintStore()
	creds := memory.NewCredentialsStore()
	return NewAuthController("client-1", issuer, holder, hints, creds), holder, hints, creds
}

func TestAuthController_SignIn_InstallsTokenAndHint(t *testing.T) {
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, _ domain.PromptMode) (*domain.OAuthToken, error) {
			return &domain.OAuthToken{AccessToken: "at", RefreshToken: "rt"}, nil
		},
	}
	ctrl, holder, hints, creds := newAuthFixture(issuer)

	require.NoError(t, ctrl.SignIn(context.Background(), domain.PromptConsent))

	token := holder.Token()
	require.NotNil(t, token)
	assert.Equal(t, "at", token.AccessToken)

	hint, err := hints.Load()
	require.NoError(t, err)
	assert.True(t, hint.Matches("client-1"))

	record, err := creds.GetByClientID(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, "rt", record.RefreshToken)
	assert.NotEmpty(t, record.ID)
}

func TestAuthController_SignIn_FailurePersistsNothing(t *testing.T) {
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, _ domain.PromptMode) (*domain.OAuthToken, error) {
			return nil, domain.ErrConsentDenied
		},
	}
	ctrl, holder, hints, creds := newAuthFixture(issuer)

	err := ctrl.SignIn(context.Background(), domain.PromptConsent)
	assert.ErrorIs(t, err, domain.ErrConsentDenied)

	assert.Nil(t, holder.Token())
	hint, loadErr := hints.Load()
	require.NoError(t, loadErr)
	assert.False(t, hint.Connected)
	_, getErr := creds.GetByClientID(context.Background(), "client-1")
	assert.ErrorIs(t, getErr, domain.ErrNotFound)
}

func TestAuthController_SignIn_UpsertPreservesIdentity(t *testing.T) {
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, _ domain.PromptMode) (*domain.OAuthToken, error) {
			return &domain.OAuthToken{AccessToken: "at", RefreshToken: "rt-2"}, nil
		},
	}
	ctrl, _, _, creds := newAuthFixture(issuer)

	existing := domain.Credentials{
		ID:           "existing-id",
		ClientID:     "client-1",
		AccountEmail: "user@example.com",
		RefreshToken: "rt-1",
	}
	require.NoError(t, creds.Save(context.Background(), existing))

	require.NoError(t, ctrl.SignIn(context.Background(), domain.PromptConsent))

	record, err := creds.GetByClientID(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, "existing-id", record.ID)
	assert.Equal(t, "user@example.com", record.AccountEmail)
	assert.Equal(t, "rt-2", record.RefreshToken)
}

func TestAuthController_SignOut_AlwaysClearsLocally(t *testing.T) {
	issuer := &fakeIssuer{revokeErr: errors.New("revocation endpoint down")}
	ctrl, holder, hints, creds := newAuthFixture(issuer)

	holder.SetToken(&domain.OAuthToken{AccessToken: "at"})
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))
	require.NoError(t, creds.Save(context.Background(), domain.Credentials{ID: "1", ClientID: "client-1", RefreshToken: "rt"}))

	ctrl.SignOut(context.Background())

	assert.Equal(t, []string{"at"}, issuer.revoked)
	assert.Nil(t, holder.Token())
	hint, err := hints.Load()
	require.NoError(t, err)
	assert.False(t, hint.Connected)
	_, err = creds.GetByClientID(context.Background(), "client-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthController_SignOut_NoTokenSkipsRevocation(t *testing.T) {
	issuer := &fakeIssuer{}
	ctrl, _, _, _ := newAuthFixture(issuer)

	ctrl.SignOut(context.Background())

	assert.Empty(t, issuer.revoked)
}
