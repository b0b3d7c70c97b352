package usecase

import (
	"context"
	"fmt"
	"time"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/dto/request"
	"sea-haven/internal/dto/response"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

// RecentReviewsLimit caps the homepage review strip.
const RecentReviewsLimit = 6

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.InsertResponse, error)
	GetRoomReviews(ctx context.Context, roomID string) ([]*entity.Review, error)
	CountRoomReviews(ctx context.Context, roomID string) (*response.CountResponse, error)
	GetRecentReviews(ctx context.Context) ([]*entity.Review, error)
}

type reviewService struct {
	repo   *repository.Repository
	policy OwnerPolicy
	now    func() time.Time
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, policy OwnerPolicy, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		policy: policy,
		now:    time.Now,
		log:    log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.InsertResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	if err := s.policy.Authorize(ctx, req); err != nil {
		tokenID, _ := utils.GetTokenIDFromContext(ctx)
		s.log.Warn("Create review rejected by owner policy",
			zap.Error(err),
			zap.String("email", req.Email),
			zap.String("token_id", tokenID),
		)
		return nil, err
	}

	reviewDate := s.now().UTC()
	if req.ReviewDate != nil && !req.ReviewDate.IsZero() {
		reviewDate = req.ReviewDate.UTC()
	}

	review := &entity.Review{
		RoomID:     req.RoomID,
		Email:      req.Email,
		Name:       req.Name,
		Photo:      req.Photo,
		Comment:    req.Comment,
		Rating:     req.Rating,
		ReviewDate: reviewDate,
	}

	result, err := s.repo.Review.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", result.InsertedID.Hex()),
		zap.String("room_id", req.RoomID),
		zap.String("email", req.Email),
		zap.Int("rating", req.Rating.Int()),
	)

	return response.InsertToResponse(result), nil
}

func (s *reviewService) GetRoomReviews(ctx context.Context, roomID string) ([]*entity.Review, error) {
	reviews, err := s.repo.Review.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for room %s: %w", roomID, err)
	}

	return reviews, nil
}

func (s *reviewService) CountRoomReviews(ctx context.Context, roomID string) (*response.CountResponse, error) {
	count, err := s.repo.Review.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count reviews for room %s: %w", roomID, err)
	}

	return &response.CountResponse{Count: count}, nil
}

func (s *reviewService) GetRecentReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.repo.Review.FindRecent(ctx, RecentReviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent reviews: %w", err)
	}

	return reviews, nil
}
