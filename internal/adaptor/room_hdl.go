package adaptor

import (
	"net/http"

	"sea-haven/internal/dto/request"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /rooms?minPrice=&maxPrice=
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minPrice, err := utils.ParseFloat(query.Get("minPrice"), usecase.DefaultMinPrice)
	if err != nil {
		utils.ResponseBadRequest(w, "minPrice must be a number", nil)
		return
	}
	maxPrice, err := utils.ParseFloat(query.Get("maxPrice"), usecase.DefaultMaxPrice)
	if err != nil {
		utils.ResponseBadRequest(w, "maxPrice must be a number", nil)
		return
	}

	rooms, err := h.service.GetRooms(r.Context(), &request.RoomFilterRequest{
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		handleServiceError(h.log, w, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, rooms)
}

// GetRoomByID handles GET /rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoomByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, room)
}

// UpdateRoomBooked handles PATCH /rooms/{id}
func (h *RoomHandler) UpdateRoomBooked(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRoomBookedRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.UpdateRoomBooked(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room booked flag")
		return
	}

	utils.ResponseSuccess(w, result)
}
