package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID     string             `bson:"roomId" json:"roomId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Rating     Rating             `bson:"rating" json:"rating"`
	ReviewDate time.Time          `bson:"reviewDate" json:"reviewDate"`
}

func (r *Review) OwnerEmail() string {
	return r.Email
}
