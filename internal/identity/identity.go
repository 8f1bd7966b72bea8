// Package identity carries the externally supplied user identity through the
// request context. The hosted identity provider issues the session token; this
// service only verifies it and never mints tokens of its own.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CurrentIdentity is the stable provider-issued identity scoping a profile
// and its projects. FirstName and ImageURL are render-time fallbacks for an
// empty profile name and avatar.
type CurrentIdentity struct {
	UserID    string
	FirstName string
	ImageURL  string
}

type sessionClaims struct {
	FirstName string `json:"first_name"`
	ImageURL  string `json:"image_url"`
	jwt.RegisteredClaims
}

// FromSessionToken verifies an HS256 session token and maps its claims to a
// CurrentIdentity. The subject claim is the identity key.
func FromSessionToken(tokenString string, secret []byte) (CurrentIdentity, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return CurrentIdentity{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return CurrentIdentity{}, fmt.Errorf("invalid session token")
	}

	return CurrentIdentity{
		UserID:    claims.Subject,
		FirstName: claims.FirstName,
		ImageURL:  claims.ImageURL,
	}, nil
}
