package http

import (
	"net/http"

	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context with [utils.WithUserID]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token has expired or is otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
