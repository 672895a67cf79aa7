package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpired inspects a bearer token's exp claim without verifying the
// signature. Verification belongs to the upstream API; the console only
// needs to know whether a restored session is worth presenting.
func TokenExpired(tokenString string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return true
	}
	if _, ok := claims["exp"]; !ok {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), true)
}
