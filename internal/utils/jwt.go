package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
//
// Session tokens are issued and verified by the host platform; the relay only
// needs to know whether a token is still worth handing to the embedded
// application.
//
// Returns:
//
//	time.Time - expiration time of the token
//	bool      - false if the token is not a JWT or carries no exp claim
func TokenExpiry(tokenString string) (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsTokenExpired reports whether the token's exp claim is at or before now.
// Opaque tokens and tokens without exp are never considered expired.
//
// Example usage:
//
//	if utils.IsTokenExpired(token, time.Now()) {
//	    // ask the host page for a fresh token
//	}
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiry(tokenString)
	if !ok {
		return false
	}
	return !now.Before(exp)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
