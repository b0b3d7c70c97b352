// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"sea-haven/internal/adaptor"
	"sea-haven/internal/data/repository"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/middleware"
	"sea-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, service, db, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	if config.App.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origins))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(config.RateLimit, logger))

	auth := middleware.AuthCookie(service.Session, logger)
	strict := config.Auth.StrictOwnership

	// Apply routes
	wireSession(r, handler.Session)
	wireRoom(r, handler.Room, auth, strict)
	wireBooking(r, handler.Booking, auth, strict)
	wireReview(r, handler.Review, auth)
	wireStats(r, handler.Stats)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseText(w, http.StatusOK, "Sea Server is running...")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseText(w, http.StatusServiceUnavailable, "UNAVAILABLE")
			return
		}
		utils.ResponseText(w, http.StatusOK, "OK")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "route not found")
	})

	return r
}

// gatedIf applies mw only when on is set
func gatedIf(on bool, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if on {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
