package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenService("secret", "test-issuer", time.Hour).WithClock(func() time.Time { return now })

	token, expiresAt, err := tokens.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenService("secret", "", 7*24*time.Hour).WithClock(func() time.Time { return now })

	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	later := issuer.WithClock(func() time.Time { return now.Add(8 * 24 * time.Hour) })
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Invalid(t *testing.T) {
	tokens := NewTokenService("secret", "issuer-a", time.Hour)
	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *TokenService
		token    string
	}{
		{"garbage", tokens, "not-a-token"},
		{"tampered", tokens, token + "x"},
		{"other secret", NewTokenService("other", "issuer-a", time.Hour), token},
		{"other issuer", NewTokenService("secret", "issuer-b", time.Hour), token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_IssueRequiresUser(t *testing.T) {
	_, _, err := NewTokenService("secret", "", time.Hour).Issue("")
	assert.Error(t, err)
}
