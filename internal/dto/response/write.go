package response

import (
	"sea-haven/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsertResponse keeps the shape the frontend reads from insertOne.
type InsertResponse struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateResponse keeps the shape the frontend reads from updateOne.
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func InsertToResponse(res *entity.InsertResult) *InsertResponse {
	return &InsertResponse{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateToResponse(res *entity.UpdateResult) *UpdateResponse {
	return &UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
