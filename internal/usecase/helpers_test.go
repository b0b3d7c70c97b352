package usecase

import (
	"context"
	"testing"

	"sea-haven/internal/data/repository"
	"sea-haven/internal/data/repository/repotest"
	"sea-haven/pkg/utils"

	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*repotest.Store, *repository.Repository) {
	t.Helper()
	store := repotest.NewStore()
	return store, repotest.NewRepository(store)
}

func asUser(email string) context.Context {
	return utils.SetIdentityContext(context.Background(), email, "test-jti")
}

var nopLog = zap.NewNop()

func boolPtr(b bool) *bool { return &b }
