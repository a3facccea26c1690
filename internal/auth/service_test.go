package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewService(nil, "test-secret")

	token, err := s.issueToken("user_123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", userID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewService(nil, "secret-a")
	verifier := NewService(nil, "secret-b")

	token, err := issuer.issueToken("user_123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := NewService(nil, "test-secret")
	_, err := s.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignIssuer(t *testing.T) {
	s := NewService(nil, "test-secret")

	claims := jwt.MapClaims{
		"sub": "user_123",
		"iss": "someone-else",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BearerToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", BearerToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", BearerToken(req), "scheme match is case-insensitive")
}
