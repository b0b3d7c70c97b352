package wire

import (
	"sea-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler) {
	r.Get("/top-rooms", statsHandler.GetTopRooms)
	r.Get("/count-up", statsHandler.GetCountUp)
}
