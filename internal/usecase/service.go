package usecase

import (
	"sea-haven/internal/data/repository"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Room    RoomService
	Booking BookingService
	Review  ReviewService
	Stats   StatsService
	Session SessionService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	policy := NewOwnerPolicy()
	tokens := utils.NewTokenManager(config.JWT)

	return &Service{
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, policy, config.Auth.StrictOwnership, log),
		Review:  NewReviewService(repo, policy, log),
		Stats:   NewStatsService(repo, config.Stats.TopRoomsLimit, log),
		Session: NewSessionService(repo, tokens, log),
	}
}
