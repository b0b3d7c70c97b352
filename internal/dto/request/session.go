package request

type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}
