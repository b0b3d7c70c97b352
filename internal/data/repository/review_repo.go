package repository

import (
	"context"
	"fmt"

	"sea-haven/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) (*entity.InsertResult, error)
	FindByRoomID(ctx context.Context, roomID string) ([]*entity.Review, error)
	CountByRoomID(ctx context.Context, roomID string) (int64, error)
	FindRecent(ctx context.Context, limit int64) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewReviewRepository(coll *mongo.Collection, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("room_id", review.RoomID),
			zap.String("email", review.Email),
		)
		return nil, fmt.Errorf("create review for room %s by %s: %w", review.RoomID, review.Email, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("create review: unexpected inserted id %T", result.InsertedID)
	}
	review.ID = id

	return &entity.InsertResult{InsertedID: id}, nil
}

func (r *reviewRepository) FindByRoomID(ctx context.Context, roomID string) ([]*entity.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"roomId": roomID})
	if err != nil {
		r.log.Error("Failed to find reviews by room ID",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return nil, fmt.Errorf("find reviews by room ID %s: %w", roomID, err)
	}

	return r.decode(ctx, cursor)
}

func (r *reviewRepository) CountByRoomID(ctx context.Context, roomID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"roomId": roomID})
	if err != nil {
		r.log.Error("Failed to count reviews by room ID",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return 0, fmt.Errorf("count reviews by room ID %s: %w", roomID, err)
	}

	return count, nil
}

func (r *reviewRepository) FindRecent(ctx context.Context, limit int64) ([]*entity.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "reviewDate", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find recent reviews",
			zap.Error(err),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("find recent reviews: %w", err)
	}

	return r.decode(ctx, cursor)
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) decode(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Review, error) {
	reviews := []*entity.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		r.log.Error("Failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
