package request

// CreateBookingRequest matches the frontend body: {"newBooking": {...}}.
type CreateBookingRequest struct {
	NewBooking *NewBooking `json:"newBooking" validate:"required"`
}

type NewBooking struct {
	RoomID      string `json:"roomId" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	BookingDate string `json:"bookingDate"`
	CheckInDate string `json:"checkInDate"`
	IsCanceled  bool   `json:"isCanceled"`
}

func (b *NewBooking) OwnerEmail() string {
	return b.Email
}

// BookingsByEmailQuery is GET /booked-room?email=
type BookingsByEmailQuery struct {
	Email string `validate:"required,email"`
}

func (q *BookingsByEmailQuery) OwnerEmail() string {
	return q.Email
}

// BookingLookupQuery is GET /single-room-get?roomId=&email=
type BookingLookupQuery struct {
	RoomID string `validate:"required"`
	Email  string `validate:"required,email"`
}

func (q *BookingLookupQuery) OwnerEmail() string {
	return q.Email
}

type CancelBookingRequest struct {
	IsCanceled *bool `json:"isCanceled"`
}

// Canceled defaults to true when the body omits the flag.
func (r CancelBookingRequest) Canceled() bool {
	if r.IsCanceled == nil {
		return true
	}
	return *r.IsCanceled
}

type RescheduleBookingRequest struct {
	Email       string `json:"email" validate:"required,email"`
	BookingDate string `json:"bookingDate" validate:"required"`
	CheckInDate string `json:"checkInDate" validate:"required"`
	IsCanceled  bool   `json:"isCanceled"`
}

func (r *RescheduleBookingRequest) OwnerEmail() string {
	return r.Email
}
