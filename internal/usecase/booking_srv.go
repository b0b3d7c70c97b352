package usecase

import (
	"context"
	"errors"
	"fmt"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/dto/request"
	"sea-haven/internal/dto/response"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error)
	GetUserBookings(ctx context.Context, query *request.BookingsByEmailQuery) (*response.UserBookingsResponse, error)
	GetBookingByRoomID(ctx context.Context, roomID string) (*entity.Booking, error)
	// FindBooking returns nil, nil when the pairing does not exist.
	FindBooking(ctx context.Context, query *request.BookingLookupQuery) (*entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.UpdateResponse, error)
	RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.UpdateResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	policy OwnerPolicy
	// strict applies the owner policy to create and cancel too.
	strict bool
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, policy OwnerPolicy, strict bool, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		policy: policy,
		strict: strict,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking stores the booking as given. It does not check for an
// existing booking of the same room; the frontend calls FindBooking first.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error) {
	// Validates the nested newBooking fields too.
	if err := validate(req); err != nil {
		return nil, err
	}

	if s.strict {
		if err := s.policy.Authorize(ctx, req.NewBooking); err != nil {
			return nil, err
		}
	}

	booking := &entity.Booking{
		RoomID:      req.NewBooking.RoomID,
		Email:       req.NewBooking.Email,
		BookingDate: req.NewBooking.BookingDate,
		CheckInDate: req.NewBooking.CheckInDate,
		IsCanceled:  req.NewBooking.IsCanceled,
	}

	result, err := s.repo.Booking.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", result.InsertedID.Hex()),
		zap.String("room_id", booking.RoomID),
		zap.String("email", booking.Email),
	)

	return response.InsertToResponse(result), nil
}

// GetUserBookings reads the bookings for an email, then the rooms they
// reference. Room ids that are not valid object ids are skipped.
func (s *bookingService) GetUserBookings(ctx context.Context, query *request.BookingsByEmailQuery) (*response.UserBookingsResponse, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, query); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByEmail(ctx, query.Email)
	if err != nil {
		return nil, fmt.Errorf("get bookings for %s: %w", query.Email, err)
	}

	seen := make(map[primitive.ObjectID]bool, len(bookings))
	roomIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		id, err := entity.ParseObjectID(b.RoomID)
		if err != nil {
			s.log.Warn("Booking references malformed room id",
				zap.String("booking_id", b.ID.Hex()),
				zap.String("room_id", b.RoomID),
			)
			continue
		}
		if !seen[id] {
			seen[id] = true
			roomIDs = append(roomIDs, id)
		}
	}

	rooms, err := s.repo.Room.FindByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("get booked rooms for %s: %w", query.Email, err)
	}

	return &response.UserBookingsResponse{Bookings: bookings, Rooms: rooms}, nil
}

func (s *bookingService) GetBookingByRoomID(ctx context.Context, roomID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get booking for room %s: %w", roomID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking for room %s %w", roomID, ErrNotFound)
	}

	return booking, nil
}

func (s *bookingService) FindBooking(ctx context.Context, query *request.BookingLookupQuery) (*entity.Booking, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, query); err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByRoomAndEmail(ctx, query.RoomID, query.Email)
	if err != nil {
		return nil, fmt.Errorf("find booking for room %s: %w", query.RoomID, err)
	}

	return booking, nil
}

// CancelBooking sets the cancel flag only; the room's is_booked flag is
// released by a separate call.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.UpdateResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	if s.strict {
		if _, err := s.ownedBooking(ctx, id); err != nil {
			return nil, err
		}
	}

	result, err := s.repo.Booking.SetCanceled(ctx, id, req.Canceled())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("booking %s %w", bookingID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancel flag updated",
		zap.String("booking_id", bookingID),
		zap.Bool("is_canceled", req.Canceled()),
	)

	return response.UpdateToResponse(result), nil
}

// RescheduleBooking overwrites both dates and the cancel flag together.
// Date order is not checked.
func (s *bookingService) RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.UpdateResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, req); err != nil {
		return nil, err
	}
	if _, err := s.ownedBooking(ctx, id); err != nil {
		return nil, err
	}

	result, err := s.repo.Booking.Reschedule(ctx, id, req.BookingDate, req.CheckInDate, req.IsCanceled)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("booking %s %w", bookingID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reschedule booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking rescheduled",
		zap.String("booking_id", bookingID),
		zap.String("booking_date", req.BookingDate),
		zap.String("check_in_date", req.CheckInDate),
		zap.Bool("is_canceled", req.IsCanceled),
	)

	return response.UpdateToResponse(result), nil
}

// ownedBooking loads a booking and applies the owner policy to it.
func (s *bookingService) ownedBooking(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id.Hex(), err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s %w", id.Hex(), ErrNotFound)
	}

	if err := s.policy.Authorize(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}
