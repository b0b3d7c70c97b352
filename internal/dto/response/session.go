package response

type SessionResponse struct {
	Success bool `json:"success"`
}
