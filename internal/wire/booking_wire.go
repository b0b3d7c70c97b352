package wire

import (
	"net/http"

	"sea-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	auth func(http.Handler) http.Handler,
	strict bool,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		// GET /booked-room?email= - bookings and rooms of the caller
		r.Get("/booked-room", bookingHandler.GetUserBookings)

		// GET /single-room-get?roomId=&email= - has the caller booked this room
		r.Get("/single-room-get", bookingHandler.FindBooking)

		// PATCH /booked-room-release/{booked_id} - new dates for the caller's booking
		r.Patch("/booked-room-release/{booked_id}", bookingHandler.RescheduleBooking)
	})

	// ==================== PUBLIC ROUTES (gated in strict mode) ====================
	r.Group(func(r chi.Router) {
		r.Use(gatedIf(strict, auth))

		r.Post("/booked-room", bookingHandler.CreateBooking)
		r.Patch("/booked-room/{id}", bookingHandler.CancelBooking)
	})

	r.Get("/booked-room/{id}", bookingHandler.GetBookingByRoomID)
}
