package oauth

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodeVerifier_Unique(t *testing.T) {
	a := GenerateCodeVerifier()
	b := GenerateCodeVerifier()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	// RFC 7636: verifiers must be 43-128 characters.
	assert.GreaterOrEqual(t, len(a), 43)
	assert.LessOrEqual(t, len(a), 128)
}

func TestGenerateCodeChallenge_IsS256OfVerifier(t *testing.T) {
	verifier := "test-verifier"
	hash := sha256.Sum256([]byte(verifier))
	expected := base64.RawURLEncoding.EncodeToString(hash[:])

	assert.Equal(t, expected, GenerateCodeChallenge(verifier))
}

func TestGenerateState_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateState(), GenerateState())
}
