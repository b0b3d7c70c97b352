package usecase

import (
	"context"
	"errors"
	"fmt"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/dto/request"
	"sea-haven/internal/dto/response"

	"go.uber.org/zap"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
)

type RoomService interface {
	GetRooms(ctx context.Context, req *request.RoomFilterRequest) ([]*entity.Room, error)
	GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error)
	UpdateRoomBooked(ctx context.Context, roomID string, req *request.UpdateRoomBookedRequest) (*response.UpdateResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context, req *request.RoomFilterRequest) ([]*entity.Room, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByPriceRange(ctx, req.MinPrice, req.MaxPrice)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	s.log.Debug("Rooms retrieved",
		zap.Float64("min_price", req.MinPrice),
		zap.Float64("max_price", req.MaxPrice),
		zap.Int("count", len(rooms)),
	)

	return rooms, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s %w", roomID, ErrNotFound)
	}

	return room, nil
}

// UpdateRoomBooked overwrites the flag; booking a booked room is allowed.
func (s *roomService) UpdateRoomBooked(ctx context.Context, roomID string, req *request.UpdateRoomBookedRequest) (*response.UpdateResponse, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	result, err := s.repo.Room.UpdateBooked(ctx, id, *req.IsBooked)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("room %s %w", roomID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update room %s: %w", roomID, err)
	}

	s.log.Info("Room booked flag updated",
		zap.String("room_id", roomID),
		zap.Bool("is_booked", *req.IsBooked),
		zap.Int64("modified", result.ModifiedCount),
	)

	return response.UpdateToResponse(result), nil
}
