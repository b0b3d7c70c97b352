package adaptor

import (
	"net/http"

	"sea-haven/internal/dto/request"
	"sea-haven/internal/usecase"
	"sea-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /review-room (gated)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, result)
}

// GetRoomReviews handles GET /reviews/{room_id}
func (h *ReviewHandler) GetRoomReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetRoomReviews(r.Context(), chi.URLParam(r, "room_id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get room reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// CountRoomReviews handles GET /count-reviews/{id}
func (h *ReviewHandler) CountRoomReviews(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountRoomReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "count room reviews")
		return
	}

	utils.ResponseSuccess(w, count)
}

// GetRecentReviews handles GET /reviews
func (h *ReviewHandler) GetRecentReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetRecentReviews(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get recent reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}
