package repository

import (
	"errors"

	"sea-haven/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no document. Finds
// return nil, nil on a miss instead.
var ErrNotFound = errors.New("document not found")

type Repository struct {
	Room       RoomRepository
	Booking    BookingRepository
	Review     ReviewRepository
	Stats      StatsRepository
	Revocation RevocationRepository
}

// NewRepository builds the mongo-backed repositories. rdb may be nil, in
// which case logout does not revoke tokens.
func NewRepository(db *database.DB, rdb *redis.Client, log *zap.Logger) *Repository {
	var revocation RevocationRepository = NewNoopRevocationRepository()
	if rdb != nil {
		revocation = NewRedisRevocationRepository(rdb, log)
	}

	return &Repository{
		Room:       NewRoomRepository(db.Collection(database.RoomsCollection), log),
		Booking:    NewBookingRepository(db.Collection(database.BookingsCollection), log),
		Review:     NewReviewRepository(db.Collection(database.ReviewsCollection), log),
		Stats:      NewStatsRepository(db.Collection(database.RoomsCollection), db.Collection(database.ReviewsCollection), log),
		Revocation: revocation,
	}
}
