package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

// auth verifies the "Authorization: Bearer <token>" header through
// AuthService.VerifyToken and stores the resulting claims in the request
// context under utils.ClaimsCtxKey.
//
// A missing or malformed header and a rejected token answer 401. A server
// without a signing key answers 500 and never lets the request through.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "*Handler.auth")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader, "*Handler.auth")
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through only when the verified claims carry
// one of the given roles. It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoClaimsInContext, "requireRole")
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, r, ErrForbidden, "requireRole")
		})
	}
}
