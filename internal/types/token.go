package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. Tokens come from the
// identity provider, which puts the user id in "sub" and sometimes also in
// "user_id".
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
}

// Identity returns the user id carried by the token.
func (c *TokenClaims) Identity() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
