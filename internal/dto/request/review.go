package request

import (
	"time"

	"sea-haven/internal/data/entity"
)

type CreateReviewRequest struct {
	RoomID     string        `json:"roomId" validate:"required"`
	Email      string        `json:"email" validate:"required,email"`
	Name       string        `json:"name" validate:"omitempty,max=100"`
	Photo      string        `json:"photo" validate:"omitempty,max=2048"`
	Comment    string        `json:"comment" validate:"omitempty,max=2000"`
	Rating     entity.Rating `json:"rating" validate:"min=1,max=5"`
	ReviewDate *time.Time    `json:"reviewDate,omitempty"`
}

func (r *CreateReviewRequest) OwnerEmail() string {
	return r.Email
}
