package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsertResult mirrors the driver's insert acknowledgement.
type InsertResult struct {
	InsertedID primitive.ObjectID
}

// UpdateResult mirrors the driver's update acknowledgement.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// ParseObjectID accepts the 24-char hex form used in URLs and loose refs.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}
