package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.Claims, key []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestFromSessionToken(t *testing.T) {
	token := signToken(t, sessionClaims{
		FirstName: "Alice",
		ImageURL:  "https://img.example/a.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, secret)

	ident, err := FromSessionToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, "Alice", ident.FirstName)
	assert.Equal(t, "https://img.example/a.png", ident.ImageURL)
}

func TestFromSessionTokenRejectsBadSignature(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{Subject: "u1"}, []byte("wrong-secret"))

	_, err := FromSessionToken(token, secret)
	assert.Error(t, err)
}

func TestFromSessionTokenRejectsExpired(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}, secret)

	_, err := FromSessionToken(token, secret)
	assert.Error(t, err)
}

func TestFromSessionTokenRequiresSubject(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{}, secret)

	_, err := FromSessionToken(token, secret)
	assert.Error(t, err)
}
