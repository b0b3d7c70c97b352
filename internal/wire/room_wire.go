package wire

import (
	"net/http"

	"sea-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	auth func(http.Handler) http.Handler,
	strict bool,
) {
	r.Route("/rooms", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", roomHandler.GetRooms)
		r.Get("/{id}", roomHandler.GetRoomByID)

		// Gated only in strict mode
		r.With(gatedIf(strict, auth)).Patch("/{id}", roomHandler.UpdateRoomBooked)
	})
}
