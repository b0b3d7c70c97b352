package wire

import (
	"net/http"

	"sea-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/review-room", reviewHandler.CreateReview)

	// ==================== PUBLIC ROUTES ====================
	r.Get("/reviews", reviewHandler.GetRecentReviews)
	r.Get("/reviews/{room_id}", reviewHandler.GetRoomReviews)
	r.Get("/count-reviews/{id}", reviewHandler.CountRoomReviews)
}
