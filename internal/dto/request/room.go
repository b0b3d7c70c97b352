package request

type RoomFilterRequest struct {
	MinPrice float64 `validate:"min=0"`
	MaxPrice float64 `validate:"gtefield=MinPrice"`
}

type UpdateRoomBookedRequest struct {
	IsBooked *bool `json:"is_booked" validate:"required"`
}
