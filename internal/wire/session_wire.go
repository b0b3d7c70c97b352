package wire

import (
	"sea-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/jwt", sessionHandler.IssueToken)
	r.Post("/logout", sessionHandler.Logout)
}
