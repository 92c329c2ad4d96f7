package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

func TestTokenHolder_Empty(t *testing.T) {
	h := NewTokenHolder()
	assert.Nil(t, h.Token())
}

func TestTokenHolder_SetAndClear(t *testing.T) {
	h := NewTokenHolder()
	h.SetToken(&domain.OAuthToken{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)})

	token := h.Token()
	require.NotNil(t, token)
	assert.Equal(t, "tok", token.AccessToken)

	h.Clear()
	assert.Nil(t, h.Token())
}

func TestTokenHolder_ReturnsCopy(t *testing.T) {
	h := NewTokenHolder()
	h.SetToken(&domain.OAuthToken{AccessToken: "tok"})

	first := h.Token()
	first.AccessToken = "mutated"

	second := h.Token()
	assert.Equal(t, "tok", second.AccessToken)
}

func TestTokenHolder_SetNilClears(t *testing.T) {
	h := NewTokenHolder()
	h.SetToken(&domain.OAuthToken{AccessToken: "tok"})
	h.SetToken(nil)
	assert.Nil(t, h.Token())
}
