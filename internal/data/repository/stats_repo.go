package repository

import (
	"context"
	"fmt"

	"sea-haven/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StatsRepository runs the read-only aggregations behind the homepage.
type StatsRepository interface {
	TopRooms(ctx context.Context, limit int64) ([]*entity.TopRoom, error)
	RatingSum(ctx context.Context) (int64, error)
}

type statsRepository struct {
	rooms   *mongo.Collection
	reviews *mongo.Collection
	log     *zap.Logger
}

func NewStatsRepository(rooms, reviews *mongo.Collection, log *zap.Logger) StatsRepository {
	return &statsRepository{
		rooms:   rooms,
		reviews: reviews,
		log:     log.With(zap.String("repository", "stats")),
	}
}

func (r *statsRepository) TopRooms(ctx context.Context, limit int64) ([]*entity.TopRoom, error) {
	cursor, err := r.rooms.Aggregate(ctx, topRoomsPipeline(r.reviews.Name(), limit))
	if err != nil {
		r.log.Error("Failed to aggregate top rooms",
			zap.Error(err),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("aggregate top rooms: %w", err)
	}

	rooms := []*entity.TopRoom{}
	if err := cursor.All(ctx, &rooms); err != nil {
		r.log.Error("Failed to decode top rooms", zap.Error(err))
		return nil, fmt.Errorf("decode top rooms: %w", err)
	}

	return rooms, nil
}

func (r *statsRepository) RatingSum(ctx context.Context) (int64, error) {
	cursor, err := r.reviews.Aggregate(ctx, ratingSumPipeline())
	if err != nil {
		r.log.Error("Failed to aggregate rating sum", zap.Error(err))
		return 0, fmt.Errorf("aggregate rating sum: %w", err)
	}

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		r.log.Error("Failed to decode rating sum", zap.Error(err))
		return 0, fmt.Errorf("decode rating sum: %w", err)
	}

	// No reviews means no group row.
	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}

// ratingAsDouble coerces a stored rating (number or numeric string) to a
// double, with 0 for null or unparseable values.
func ratingAsDouble(field string) bson.M {
	return bson.M{"$convert": bson.M{
		"input":   field,
		"to":      "double",
		"onError": 0,
		"onNull":  0,
	}}
}

// topRoomsPipeline joins each room to reviews whose roomId equals the
// room's _id as a string, then ranks by review count and average rating.
// _id breaks ties so equal rooms keep insertion order.
func topRoomsPipeline(reviewsColl string, limit int64) bson.A {
	return bson.A{
		bson.M{"$lookup": bson.M{
			"from": reviewsColl,
			"let":  bson.M{"roomId": bson.M{"$toString": "$_id"}},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$roomId", "$$roomId"}}}},
			},
			"as": "reviews",
		}},
		bson.M{"$addFields": bson.M{
			"averageRating": bson.M{"$ifNull": bson.A{
				bson.M{"$avg": bson.M{"$map": bson.M{
					"input": "$reviews",
					"as":    "review",
					"in":    ratingAsDouble("$$review.rating"),
				}}},
				0,
			}},
			"totalReviews": bson.M{"$size": "$reviews"},
		}},
		bson.M{"$sort": bson.D{
			{Key: "totalReviews", Value: -1},
			{Key: "averageRating", Value: -1},
			{Key: "_id", Value: 1},
		}},
		bson.M{"$limit": limit},
		bson.M{"$project": bson.M{
			"_id":           1,
			"name":          1,
			"description":   1,
			"image":         1,
			"price":         1,
			"averageRating": 1,
			"totalReviews":  1,
		}},
	}
}

// ratingSumPipeline sums every rating truncated to an integer.
func ratingSumPipeline() bson.A {
	return bson.A{
		bson.M{"$group": bson.M{
			"_id": nil,
			"total": bson.M{"$sum": bson.M{
				"$toLong": bson.M{"$trunc": ratingAsDouble("$rating")},
			}},
		}},
	}
}
