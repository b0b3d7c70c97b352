package middleware

import (
	"errors"
	"net/http"

	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

// AuthCookie verifies the token cookie and puts the email it carries into
// the request context. Requests without a valid token get 401.
func AuthCookie(sessions usecase.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.TokenCookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "unauthorized access")
				return
			}

			claims, err := sessions.Authenticate(r.Context(), cookie.Value)
			if errors.Is(err, usecase.ErrUnauthorized) {
				logger.Warn("Rejected token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID(r)),
				)
				utils.ResponseUnauthorized(w, "unauthorized access")
				return
			}
			if err != nil {
				logger.Error("Failed to authenticate token",
					zap.Error(err),
					zap.String("request_id", requestID(r)),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), claims.Email, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
