package repository

import (
	"context"
	"fmt"

	"sea-haven/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type RoomRepository interface {
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Room, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Room, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Room, error)
	UpdateBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*entity.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type roomRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRoomRepository(coll *mongo.Collection, log *zap.Logger) RoomRepository {
	return &roomRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Room, error) {
	filter := bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to find rooms",
			zap.Error(err),
			zap.Float64("min_price", minPrice),
			zap.Float64("max_price", maxPrice),
		)
		return nil, fmt.Errorf("find rooms in [%v, %v]: %w", minPrice, maxPrice, err)
	}

	rooms := []*entity.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		r.log.Error("Failed to decode rooms", zap.Error(err))
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Room, error) {
	var room entity.Room
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.Hex()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.Hex(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Room, error) {
	rooms := []*entity.Room{}
	if len(ids) == 0 {
		return rooms, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Error("Failed to find rooms by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find %d rooms by ID: %w", len(ids), err)
	}

	if err := cursor.All(ctx, &rooms); err != nil {
		r.log.Error("Failed to decode rooms", zap.Error(err))
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) UpdateBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*entity.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"is_booked": booked}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.log.Error("Failed to update room booked flag",
			zap.Error(err),
			zap.String("room_id", id.Hex()),
			zap.Bool("is_booked", booked),
		)
		return nil, fmt.Errorf("update room %s: %w", id.Hex(), err)
	}

	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("room %s: %w", id.Hex(), ErrNotFound)
	}

	return &entity.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}
