package adaptor

import (
	"net/http"

	"sea-haven/internal/dto/request"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /booked-room
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, result)
}

// GetUserBookings handles GET /booked-room?email= (gated)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	query := &request.BookingsByEmailQuery{Email: r.URL.Query().Get("email")}

	bookings, err := h.service.GetUserBookings(r.Context(), query)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingByRoomID handles GET /booked-room/{id}, where id is the room id
func (h *BookingHandler) GetBookingByRoomID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBookingByRoomID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get booking by room")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// FindBooking handles GET /single-room-get?roomId=&email= (gated). The body
// is null when the user has not booked the room.
func (h *BookingHandler) FindBooking(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := &request.BookingLookupQuery{
		RoomID: params.Get("roomId"),
		Email:  params.Get("email"),
	}

	booking, err := h.service.FindBooking(r.Context(), query)
	if err != nil {
		handleServiceError(h.log, w, err, "find booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// CancelBooking handles PATCH /booked-room/{id}, where id is the booking id
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CancelBookingRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, result)
}

// RescheduleBooking handles PATCH /booked-room-release/{booked_id} (gated)
func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	var req request.RescheduleBookingRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.RescheduleBooking(r.Context(), chi.URLParam(r, "booked_id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "reschedule booking")
		return
	}

	utils.ResponseSuccess(w, result)
}
