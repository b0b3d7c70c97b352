package adaptor

import (
	"net/http"

	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetTopRooms handles GET /top-rooms
func (h *StatsHandler) GetTopRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetTopRooms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get top rooms")
		return
	}

	utils.ResponseSuccess(w, rooms)
}

// GetCountUp handles GET /count-up
func (h *StatsHandler) GetCountUp(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.GetCountUp(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get count-up")
		return
	}

	utils.ResponseSuccess(w, counts)
}
