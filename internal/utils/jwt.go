package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateHookToken creates a signed HMAC-SHA256 JWT the CMS presents on
// webhook and sync-trigger requests.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the CMS deployment that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateHookToken(issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating hook token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing hook token: %w", err)
	}

	return tokenString, nil
}

// ValidateHookToken verifies the signature, signing method, issuer and
// expiry of a hook token. Returns nil only for a currently valid token
// signed with signKey and carrying the expected issuer.
func ValidateHookToken(tokenString, signKey, issuer string) error {
	_, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("error occurred validating hook token: %w", err)
	}
	return nil
}

// ParseBearerToken extracts the token string from an "Authorization: Bearer
// <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
