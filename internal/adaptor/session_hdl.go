package adaptor

import (
	"net/http"
	"time"

	"sea-haven/internal/dto/request"
	"sea-haven/internal/dto/response"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	secure  bool
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, app utils.AppConfig, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		secure:  app.IsProduction(),
		log:     log.With(zap.String("handler", "session")),
	}
}

// tokenCookie builds the auth cookie. The frontend is served from another
// site in production, which needs SameSite=None and therefore Secure.
func (h *SessionHandler) tokenCookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     utils.TokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	}
	if h.secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// IssueToken handles POST /jwt
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req request.IssueTokenRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeBodyError(w, err)
		return
	}

	token, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "issue token")
		return
	}

	cookie := h.tokenCookie(token)
	cookie.MaxAge = int(h.service.TokenTTL() / time.Second)
	http.SetCookie(w, cookie)

	utils.ResponseSuccess(w, response.SessionResponse{Success: true})
}

// Logout handles POST /logout. It clears the cookie even when the token is
// missing or already invalid.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if existing, err := r.Cookie(utils.TokenCookieName); err == nil && existing.Value != "" {
		if err := h.service.Revoke(r.Context(), existing.Value); err != nil {
			h.log.Error("Failed to revoke token on logout", zap.Error(err))
		}
	}

	cookie := h.tokenCookie("")
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	utils.ResponseSuccess(w, response.SessionResponse{Success: true})
}
