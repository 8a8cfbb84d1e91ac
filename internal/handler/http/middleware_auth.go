// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/utils"
	"github.com/MKhiriev/stock-keeper/models"
)

// bearerPrefix is the conventional scheme prefix of the "Authorization"
// header. A header without the prefix is treated as a bare token, matching
// what existing clients send.
const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and the fixed
// error payload {"erro": "Token inválido ou expirado"} in the following cases:
//   - The "Authorization" header is absent or carries no token.
//   - The token signature or issuer is invalid, or the token is malformed.
//   - The token has expired. Expired tokens require a new login; there is no
//     refresh mechanism and no revocation list.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, bearerPrefix) {
			var parseErr error
			tokenString, parseErr = utils.ParseBearerToken(authHeader)
			if parseErr != nil {
				log.Err(ErrEmptyToken).Send()
				writeUnauthorized(w)
				return
			}
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeUnauthorized(w)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenInvalid}, http.StatusUnauthorized)
}
