// Package identity resolves the caller behind an API token. The dashboard
// only needs the login and the superuser flag to compute capabilities; both
// are carried in the access token's claims, so the token is decoded locally
// without signature verification (the API verifies it on every request).
package identity

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// User identifies the caller for capability computation.
type User struct {
	Login string
	Admin bool
}

// Claims is the token payload emitted by the platform's auth service.
type Claims struct {
	Login string `json:"login"`
	Admin bool   `json:"admin"`
	jwtlib.RegisteredClaims
}

// FromToken decodes the caller identity from a bearer token.
func FromToken(token string) (User, error) {
	parser := jwtlib.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return User{}, fmt.Errorf("decode token: %w", err)
	}
	login := claims.Login
	if login == "" {
		login = claims.Subject
	}
	return User{Login: login, Admin: claims.Admin}, nil
}
