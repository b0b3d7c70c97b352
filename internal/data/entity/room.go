package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Price       float64            `bson:"price" json:"price"`
	IsBooked    bool               `bson:"is_booked" json:"is_booked"`
}

// TopRoom is one row of the top-rooms aggregation.
type TopRoom struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"`
	Price         float64            `bson:"price" json:"price"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	TotalReviews  int64              `bson:"totalReviews" json:"totalReviews"`
}
