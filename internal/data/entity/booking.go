package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links a user email to a room. RoomID is the hex string of the
// room's _id and is not checked against the rooms collection.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID      string             `bson:"roomId" json:"roomId"`
	Email       string             `bson:"email" json:"email"`
	BookingDate string             `bson:"bookingDate" json:"bookingDate"`
	CheckInDate string             `bson:"checkInDate" json:"checkInDate"`
	IsCanceled  bool               `bson:"isCanceled" json:"isCanceled"`
}

func (b *Booking) OwnerEmail() string {
	return b.Email
}
