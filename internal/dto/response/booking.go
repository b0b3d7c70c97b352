package response

import (
	"sea-haven/internal/data/entity"
)

// UserBookingsResponse is the manual join of a user's bookings and rooms.
type UserBookingsResponse struct {
	Bookings []*entity.Booking `json:"bookings"`
	Rooms    []*entity.Room    `json:"rooms"`
}
