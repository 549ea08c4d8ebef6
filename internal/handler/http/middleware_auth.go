package http

import (
	"context"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it as an access token via [service.AuthService.ParseAccessToken],
// and on success stores the authenticated user's ID and type in the request
// context under [utils.UserIDCtxKey] and [utils.UserTypeCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent,
// cannot be parsed as a bearer token, or carries an expired, malformed or
// wrong-kind token. Rejections are logged with the request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("access token rejected")
			utils.WriteJSONError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Stash identity so downstream handlers never re-parse the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserTypeCtxKey, token.UserType)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePermission guards a route with the seeded role grants: the
// authenticated user's role must allow action on resource. Runs after auth;
// a request without identity in its context is rejected with 401.
func (h *Handler) requirePermission(action, resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			userType, found := utils.GetUserTypeFromContext(ctx)
			if !found {
				log.Error().Err(ErrMissingUserContext).Str("resource", resource).Send()
				utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
				return
			}

			allowed, err := h.services.AuthService.HasPermission(ctx, userType, action, resource)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			if !allowed {
				log.Warn().
					Str("user_type", string(userType)).
					Str("action", action).
					Str("resource", resource).
					Msg("permission denied")
				utils.WriteJSONError(w, service.ErrPermissionDenied.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireUserType guards a route by role identity rather than the permission
// catalog. Used for the scoped operational surfaces (attendance, payroll,
// owner administration) that the catalog deliberately leaves to the master
// admin.
func (h *Handler) requireUserType(types ...models.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			userType, found := utils.GetUserTypeFromContext(r.Context())
			if !found {
				log.Error().Err(ErrMissingUserContext).Send()
				utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
				return
			}

			for _, t := range types {
				if userType == t {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Warn().Str("user_type", string(userType)).Msg("role not allowed on this route")
			utils.WriteJSONError(w, service.ErrPermissionDenied.Error(), http.StatusForbidden)
		})
	}
}
