package usecase

import (
	"context"
	"fmt"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	GetTopRooms(ctx context.Context) ([]*entity.TopRoom, error)
	GetCountUp(ctx context.Context) (*response.CountUpResponse, error)
}

type statsService struct {
	repo          *repository.Repository
	topRoomsLimit int64
	log           *zap.Logger
}

func NewStatsService(repo *repository.Repository, topRoomsLimit int64, log *zap.Logger) StatsService {
	if topRoomsLimit <= 0 {
		topRoomsLimit = 6
	}

	return &statsService{
		repo:          repo,
		topRoomsLimit: topRoomsLimit,
		log:           log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) GetTopRooms(ctx context.Context) ([]*entity.TopRoom, error) {
	rooms, err := s.repo.Stats.TopRooms(ctx, s.topRoomsLimit)
	if err != nil {
		return nil, fmt.Errorf("get top rooms: %w", err)
	}

	return rooms, nil
}

// GetCountUp runs three independent reads; they are not a snapshot.
func (s *statsService) GetCountUp(ctx context.Context) (*response.CountUpResponse, error) {
	roomsCount, err := s.repo.Room.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	reviewsCount, err := s.repo.Review.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	totalRating, err := s.repo.Stats.RatingSum(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum ratings: %w", err)
	}

	s.log.Debug("Count-up computed",
		zap.Int64("rooms", roomsCount),
		zap.Int64("reviews", reviewsCount),
		zap.Int64("total_rating", totalRating),
	)

	return &response.CountUpResponse{
		RoomsCount:   roomsCount,
		ReviewsCount: reviewsCount,
		TotalRating:  totalRating,
	}, nil
}
