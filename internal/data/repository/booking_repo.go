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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.InsertResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindByRoomID(ctx context.Context, roomID string) (*entity.Booking, error)
	FindByRoomAndEmail(ctx context.Context, roomID, email string) (*entity.Booking, error)
	SetCanceled(ctx context.Context, id primitive.ObjectID, canceled bool) (*entity.UpdateResult, error)
	Reschedule(ctx context.Context, id primitive.ObjectID, bookingDate, checkInDate string, canceled bool) (*entity.UpdateResult, error)
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(coll *mongo.Collection, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("room_id", booking.RoomID),
			zap.String("email", booking.Email),
		)
		return nil, fmt.Errorf("create booking for room %s by %s: %w", booking.RoomID, booking.Email, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("create booking: unexpected inserted id %T", result.InsertedID)
	}
	booking.ID = id

	return &entity.InsertResult{InsertedID: id}, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id}, zap.String("booking_id", id.Hex()))
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByRoomID(ctx context.Context, roomID string) (*entity.Booking, error) {
	return r.findOne(ctx, bson.M{"roomId": roomID}, zap.String("room_id", roomID))
}

func (r *bookingRepository) FindByRoomAndEmail(ctx context.Context, roomID, email string) (*entity.Booking, error) {
	return r.findOne(ctx, bson.M{"roomId": roomID, "email": email},
		zap.String("room_id", roomID),
		zap.String("email", email),
	)
}

func (r *bookingRepository) findOne(ctx context.Context, filter bson.M, fields ...zap.Field) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) SetCanceled(ctx context.Context, id primitive.ObjectID, canceled bool) (*entity.UpdateResult, error) {
	return r.update(ctx, id, bson.M{"isCanceled": canceled})
}

func (r *bookingRepository) Reschedule(ctx context.Context, id primitive.ObjectID, bookingDate, checkInDate string, canceled bool) (*entity.UpdateResult, error) {
	return r.update(ctx, id, bson.M{
		"bookingDate": bookingDate,
		"checkInDate": checkInDate,
		"isCanceled":  canceled,
	})
}

func (r *bookingRepository) update(ctx context.Context, id primitive.ObjectID, set bson.M) (*entity.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), err)
	}

	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
	}

	return &entity.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
