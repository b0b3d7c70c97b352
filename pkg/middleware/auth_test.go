package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sea-haven/internal/dto/request"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessions struct {
	claims *utils.Claims
	err    error
}

func (f *fakeSessions) IssueToken(context.Context, *request.IssueTokenRequest) (string, error) {
	return "", nil
}

func (f *fakeSessions) Authenticate(context.Context, string) (*utils.Claims, error) {
	return f.claims, f.err
}

func (f *fakeSessions) Revoke(context.Context, string) error { return nil }

func (f *fakeSessions) TokenTTL() time.Duration { return time.Hour }

func echoEmail(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetEmailFromContext(r.Context())
	w.Write([]byte(email))
}

func TestAuthCookie(t *testing.T) {
	ok := &fakeSessions{claims: &utils.Claims{Email: "a@x.com"}}

	tests := []struct {
		name     string
		sessions *fakeSessions
		cookie   *http.Cookie
		wantCode int
		wantBody string
	}{
		{
			name:     "valid cookie",
			sessions: ok,
			cookie:   &http.Cookie{Name: utils.TokenCookieName, Value: "t"},
			wantCode: http.StatusOK,
			wantBody: "a@x.com",
		},
		{
			name:     "no cookie",
			sessions: ok,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "empty cookie",
			sessions: ok,
			cookie:   &http.Cookie{Name: utils.TokenCookieName, Value: ""},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "rejected token",
			sessions: &fakeSessions{err: fmt.Errorf("%w: expired", usecase.ErrUnauthorized)},
			cookie:   &http.Cookie{Name: utils.TokenCookieName, Value: "t"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "revocation store down",
			sessions: &fakeSessions{err: errors.New("redis: connection refused")},
			cookie:   &http.Cookie{Name: utils.TokenCookieName, Value: "t"},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthCookie(tt.sessions, zap.NewNop())(http.HandlerFunc(echoEmail))

			req := httptest.NewRequest(http.MethodGet, "/booked-room", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
