package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/data/repository/repotest"
	"sea-haven/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var pingOK = pingFunc(func(context.Context) error { return nil })

func testConfig(strict bool) *utils.Config {
	return &utils.Config{
		App:   utils.AppConfig{Name: "sea-haven", Env: "development"},
		JWT:   utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 60},
		Auth:  utils.AuthConfig{StrictOwnership: strict},
		CORS:  utils.CORSConfig{Origins: []string{"http://localhost:5173"}},
		Stats: utils.StatsConfig{TopRoomsLimit: 6},
	}
}

type testApp struct {
	store  *repotest.Store
	repo   *repository.Repository
	router http.Handler
}

func newTestApp(t *testing.T, strict bool) *testApp {
	t.Helper()
	store := repotest.NewStore()
	repo := repotest.NewRepository(store)
	app := Wiring(repo, pingOK, testConfig(strict), zap.NewNop())
	return &testApp{store: store, repo: repo, router: app.Router}
}

func (a *testApp) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/jwt", `{"email":"`+email+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.TokenCookieName {
			return c
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestLiveness(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sea Server is running...", rec.Body.String())
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, false)
	rec := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := Wiring(app.repo, pingFunc(func(context.Context) error {
		return errors.New("server selection timeout")
	}), testConfig(false), zap.NewNop())
	rec = httptest.NewRecorder()
	down.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIssueTokenCookie(t *testing.T) {
	app := newTestApp(t, false)
	cookie := app.login(t, "a@x.com")

	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure)

	rec := app.do(t, http.MethodPost, "/jwt", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssueTokenCookieProduction(t *testing.T) {
	config := testConfig(false)
	config.App.Env = "production"
	app := Wiring(repotest.NewRepository(repotest.NewStore()), pingOK, config, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestRooms(t *testing.T) {
	app := newTestApp(t, false)
	cheap := app.store.AddRoom("Cheap", 100)
	app.store.AddRoom("Mid", 450)
	app.store.AddRoom("Suite", 9000)

	t.Run("PriceFilter", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/rooms?minPrice=100&maxPrice=500", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rooms := decode[[]entity.Room](t, rec)
		require.Len(t, rooms, 2)
		for _, room := range rooms {
			assert.GreaterOrEqual(t, room.Price, 100.0)
			assert.LessOrEqual(t, room.Price, 500.0)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/rooms", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]entity.Room](t, rec), 3)
	})

	t.Run("BadBound", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/rooms?minPrice=cheap", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = app.do(t, http.MethodGet, "/rooms?minPrice=500&maxPrice=100", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ByID", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/rooms/"+cheap.ID.Hex(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cheap", decode[entity.Room](t, rec).Name)

		rec = app.do(t, http.MethodGet, "/rooms/"+primitive.NewObjectID().Hex(), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = app.do(t, http.MethodGet, "/rooms/not-an-id", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PatchBooked", func(t *testing.T) {
		path := "/rooms/" + cheap.ID.Hex()
		rec := app.do(t, http.MethodPatch, path, `{"is_booked":true}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())

		// Booking an already booked room is not rejected.
		rec = app.do(t, http.MethodPatch, path, `{"is_booked":true}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":0}`, rec.Body.String())

		rec = app.do(t, http.MethodPatch, path, `{}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t, false)
	room := app.store.AddRoom("Ocean", 300)
	cookie := app.login(t, "a@x.com")

	body := `{"newBooking":{"roomId":"` + room.ID.Hex() + `","email":"a@x.com","bookingDate":"2026-10-14","checkInDate":"2026-10-20","isCanceled":false}}`
	rec := app.do(t, http.MethodPost, "/booked-room", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[struct {
		Acknowledged bool               `json:"acknowledged"`
		InsertedID   primitive.ObjectID `json:"insertedId"`
	}](t, rec)
	require.True(t, created.Acknowledged)
	require.NotNil(t, app.store.FindBooking(created.InsertedID))

	t.Run("ListOwn", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/booked-room?email=a@x.com", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[struct {
			Bookings []entity.Booking `json:"bookings"`
			Rooms    []entity.Room    `json:"rooms"`
		}](t, rec)
		require.Len(t, got.Bookings, 1)
		require.Len(t, got.Rooms, 1)
		assert.Equal(t, room.ID, got.Rooms[0].ID)
	})

	t.Run("ListOtherForbidden", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/booked-room?email=b@x.com", "", cookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ListWithoutCookie", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/booked-room?email=a@x.com", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ListWithForgedCookie", func(t *testing.T) {
		forged := &http.Cookie{Name: utils.TokenCookieName, Value: cookie.Value + "x"}
		rec := app.do(t, http.MethodGet, "/booked-room?email=a@x.com", "", forged)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("DuplicateCheck", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/single-room-get?roomId="+room.ID.Hex()+"&email=a@x.com", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.InsertedID, decode[entity.Booking](t, rec).ID)

		rec = app.do(t, http.MethodGet, "/single-room-get?roomId=other&email=a@x.com", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("ByRoomID", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/booked-room/"+room.ID.Hex(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@x.com", decode[entity.Booking](t, rec).Email)

		rec = app.do(t, http.MethodGet, "/booked-room/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Reschedule", func(t *testing.T) {
		path := "/booked-room-release/" + created.InsertedID.Hex()
		body := `{"email":"a@x.com","bookingDate":"2026-11-01","checkInDate":"2026-11-05","isCanceled":false}`

		rec := app.do(t, http.MethodPatch, path, body, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		stored := app.store.FindBooking(created.InsertedID)
		assert.Equal(t, "2026-11-01", stored.BookingDate)
		assert.Equal(t, "2026-11-05", stored.CheckInDate)

		other := app.login(t, "b@x.com")
		rec = app.do(t, http.MethodPatch, path, strings.ReplaceAll(body, "a@x.com", "b@x.com"), other)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("CancelDefaultsToTrue", func(t *testing.T) {
		rec := app.do(t, http.MethodPatch, "/booked-room/"+created.InsertedID.Hex(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, app.store.FindBooking(created.InsertedID).IsCanceled)

		rec = app.do(t, http.MethodPatch, "/booked-room/"+primitive.NewObjectID().Hex(), `{"isCanceled":true}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStrictOwnership(t *testing.T) {
	app := newTestApp(t, true)
	room := app.store.AddRoom("Ocean", 300)
	body := `{"newBooking":{"roomId":"` + room.ID.Hex() + `","email":"a@x.com"}}`

	rec := app.do(t, http.MethodPost, "/booked-room", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPatch, "/rooms/"+room.ID.Hex(), `{"is_booked":true}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/booked-room", body, app.login(t, "b@x.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, app.store.BookingCount())

	rec = app.do(t, http.MethodPost, "/booked-room", body, app.login(t, "a@x.com"))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReviews(t *testing.T) {
	app := newTestApp(t, false)
	room := app.store.AddRoom("Ocean", 300)
	cookie := app.login(t, "a@x.com")

	review := `{"roomId":"` + room.ID.Hex() + `","email":"a@x.com","name":"A","rating":"5","comment":"great"}`

	t.Run("MismatchedEmailInsertsNothing", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/review-room", review, app.login(t, "b@x.com"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, app.store.ReviewCount())
	})

	t.Run("NoCookie", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/review-room", review, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, app.store.ReviewCount())
	})

	t.Run("Create", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/review-room", review, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, app.store.ReviewCount())
	})

	t.Run("Read", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/reviews/"+room.ID.Hex(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		reviews := decode[[]entity.Review](t, rec)
		require.Len(t, reviews, 1)
		assert.Equal(t, entity.Rating(5), reviews[0].Rating)

		rec = app.do(t, http.MethodGet, "/count-reviews/"+room.ID.Hex(), "", nil)
		assert.JSONEq(t, `{"count":1}`, rec.Body.String())

		rec = app.do(t, http.MethodGet, "/reviews", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]entity.Review](t, rec), 1)
	})
}

func TestStats(t *testing.T) {
	app := newTestApp(t, false)
	now := time.Now()
	a := app.store.AddRoom("A", 100)
	b := app.store.AddRoom("B", 200)
	app.store.AddRoom("C", 300)
	app.store.AddReview(a.ID.Hex(), "x@x.com", 2, now)
	app.store.AddReview(b.ID.Hex(), "x@x.com", 5, now)
	app.store.AddReview(b.ID.Hex(), "y@x.com", 4, now)

	rec := app.do(t, http.MethodGet, "/top-rooms", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	top := decode[[]entity.TopRoom](t, rec)
	require.Len(t, top, 3)
	assert.Equal(t, "B", top[0].Name)
	assert.Equal(t, int64(2), top[0].TotalReviews)
	assert.Equal(t, "A", top[1].Name)

	rec = app.do(t, http.MethodGet, "/count-up", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"roomsCount":3,"reviewsCount":3,"totalRating":11}`, rec.Body.String())
}

func TestLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := repotest.NewStore()
	repo := repotest.NewRepository(store)
	repo.Revocation = repository.NewRedisRevocationRepository(rdb, zap.NewNop())

	app := &testApp{store: store, repo: repo, router: Wiring(repo, pingOK, testConfig(false), zap.NewNop()).Router}
	cookie := app.login(t, "a@x.com")

	rec := app.do(t, http.MethodGet, "/booked-room?email=a@x.com", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPost, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, utils.TokenCookieName, cleared[0].Name)
	assert.Equal(t, -1, cleared[0].MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cleared[0].SameSite)

	rec = app.do(t, http.MethodGet, "/booked-room?email=a@x.com", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutWithoutCookie(t *testing.T) {
	app := newTestApp(t, false)
	rec := app.do(t, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t, false)
	req := httptest.NewRequest(http.MethodOptions, "/review-room", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestOversizedBodyRejected(t *testing.T) {
	app := newTestApp(t, false)

	body := `{"email":"` + strings.Repeat("a", 2<<20) + `@x.com"}`
	rec := app.do(t, http.MethodPost, "/jwt", body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = app.do(t, http.MethodPost, "/jwt", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       []int
	}{
		{"SocketPeer", false, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}},
		{"TrustedProxy", true, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(false)
			config.App.TrustProxy = tt.trustProxy
			config.RateLimit = utils.RateLimitConfig{RPS: 0.001, Burst: 1}
			router := Wiring(repotest.NewRepository(repotest.NewStore()), pingOK, config, zap.NewNop()).Router

			forwarded := []string{"203.0.113.1", "203.0.113.2", "203.0.113.2"}
			for i, fwd := range forwarded {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.RemoteAddr = "10.0.0.1:4321"
				req.Header.Set("X-Forwarded-For", fwd)
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)
				assert.Equal(t, tt.want[i], rec.Code, "request %d", i)
			}
		})
	}
}
