package http

import (
	"net/http"
	"strings"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/utils"
)

// auth enforces the shared hook token on CMS-facing routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, and validates its signature, issuer and expiry against the
// configured hook token settings via [utils.ValidateHookToken] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, carries the wrong issuer, or fails signature
//     verification.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err = utils.ValidateHookToken(tokenString, h.app.HookTokenKey, h.app.HookTokenIssuer); err != nil {
			log.Err(err).Msg("hook token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts, and [ErrEmptyToken] if the second part
// exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
