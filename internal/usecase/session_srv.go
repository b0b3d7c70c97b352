package usecase

import (
	"context"
	"fmt"
	"time"

	"sea-haven/internal/data/repository"
	"sea-haven/internal/dto/request"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

type SessionService interface {
	// IssueToken signs a token for the requested email.
	IssueToken(ctx context.Context, req *request.IssueTokenRequest) (string, error)
	// Authenticate verifies a token and rejects revoked ones.
	Authenticate(ctx context.Context, token string) (*utils.Claims, error)
	// Revoke invalidates token until it expires. Invalid tokens are ignored.
	Revoke(ctx context.Context, token string) error
	TokenTTL() time.Duration
}

type sessionService struct {
	repo   *repository.Repository
	tokens *utils.TokenManager
	now    func() time.Time
	log    *zap.Logger
}

func NewSessionService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		log:    log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *sessionService) IssueToken(ctx context.Context, req *request.IssueTokenRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	token, claims, err := s.tokens.Sign(req.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Token issued",
		zap.String("email", req.Email),
		zap.String("token_id", claims.ID),
	)

	return token, nil
}

func (s *sessionService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if claims.ID != "" {
		revoked, err := s.repo.Revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token revoked", ErrUnauthorized)
		}
	}

	return claims, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil || claims.ID == "" {
		return nil
	}

	ttl := s.tokens.TTL()
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}

	if err := s.repo.Revocation.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.Info("Token revoked",
		zap.String("email", claims.Email),
		zap.String("token_id", claims.ID),
	)

	return nil
}
