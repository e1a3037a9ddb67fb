package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the verified token payload attached to authenticated requests.
type AuthClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
